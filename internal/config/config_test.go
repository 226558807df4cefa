package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/megapayer/site/internal/escrow"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":4002", cfg.Addr)
	assert.Equal(t, "public/whitepapers", cfg.WhitepaperDir)
	assert.Equal(t, 2, cfg.PDF.PoolSize)
	assert.Equal(t, 10*time.Second, cfg.PDF.AcquireTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.SubmitDelay)
	assert.Equal(t, 2027, cfg.LaunchDate.Year())
	assert.False(t, cfg.TrustProxy)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SITE_ADDR", ":9000")
	t.Setenv("PDF_POOL_SIZE", "4")
	t.Setenv("PDF_ACQUIRE_TIMEOUT", "3s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 4, cfg.PDF.PoolSize)
	assert.Equal(t, 3*time.Second, cfg.PDF.AcquireTimeout)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WHITEPAPER_DIR=/srv/papers\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("WHITEPAPER_DIR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/papers", cfg.WhitepaperDir)
}

func TestRejectsEmptyPool(t *testing.T) {
	t.Setenv("PDF_POOL_SIZE", "0")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	cfg := &Config{}
	p, err := cfg.Presets()
	require.NoError(t, err)
	assert.Nil(t, p)

	path := filepath.Join(t.TempDir(), "scenes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blockchain:\n  count: 10\n"), 0644))
	cfg.ScenePresets = path

	p, err = cfg.Presets()
	require.NoError(t, err)
	assert.Equal(t, 10, p["blockchain"].Count)
}

func TestEscrowPolicy(t *testing.T) {
	t.Setenv("ESCROW_POLICY", "one-shot")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, escrow.OneShot, cfg.EscrowPolicy())

	cfg.Escrow = "repeat"
	assert.Equal(t, escrow.Repeat, cfg.EscrowPolicy())
}
