package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/megapayer/site/internal/escrow"
	"github.com/megapayer/site/internal/scene"
)

type Config struct {
	Addr     string `env:"SITE_ADDR" envDefault:":4002"`
	BaseURL  string `env:"SITE_BASE_URL" envDefault:"http://localhost:4002"`
	Dev      bool   `env:"SITE_DEV" envDefault:"false"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `env:"SITE_TRUST_PROXY" envDefault:"false"`

	WhitepaperDir string `env:"WHITEPAPER_DIR" envDefault:"public/whitepapers"`
	ScenePresets  string `env:"SCENE_PRESETS"`

	LaunchDate  time.Time     `env:"LAUNCH_DATE" envDefault:"2027-01-01T00:00:00Z"`
	SubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"1500ms"`
	Escrow      string        `env:"ESCROW_POLICY" envDefault:"repeat"`

	PDF PDFConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// PDFConfig sizes the headless browser pool behind the PDF export route.
type PDFConfig struct {
	BrowserBin     string        `env:"PDF_BROWSER_BIN"`
	PoolSize       int           `env:"PDF_POOL_SIZE" envDefault:"2"`
	AcquireTimeout time.Duration `env:"PDF_ACQUIRE_TIMEOUT" envDefault:"10s"`
	RenderTimeout  time.Duration `env:"PDF_RENDER_TIMEOUT" envDefault:"45s"`
	IdleTTL        time.Duration `env:"PDF_IDLE_TTL" envDefault:"5m"`
	MinFreeMemMB   uint64        `env:"PDF_MIN_FREE_MEM_MB" envDefault:"256"`
	RatePerSecond  float64       `env:"PDF_RATE_PER_SECOND" envDefault:"0.5"`
	RateBurst      int           `env:"PDF_RATE_BURST" envDefault:"3"`
	Workers        int           `env:"PDF_EXPORT_WORKERS" envDefault:"2"`
}

// Load reads an optional .env file, then the environment.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.PDF.PoolSize < 1 {
		return nil, fmt.Errorf("PDF_POOL_SIZE must be >= 1, got %d", cfg.PDF.PoolSize)
	}
	return cfg, nil
}

// Presets loads scene parameter overrides. No configured file means no overrides.
func (c *Config) Presets() (scene.Presets, error) {
	if c.ScenePresets == "" {
		return nil, nil
	}
	if _, err := os.Stat(c.ScenePresets); err != nil {
		return nil, fmt.Errorf("scene presets: %w", err)
	}
	return scene.LoadPresets(c.ScenePresets)
}

// EscrowPolicy maps ESCROW_POLICY ("repeat" or "one-shot") to the sequencer policy.
func (c *Config) EscrowPolicy() escrow.Policy {
	return escrow.ParsePolicy(c.Escrow)
}
