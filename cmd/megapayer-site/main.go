package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/megapayer/site/internal/config"
	"github.com/megapayer/site/internal/pdf"
	"github.com/megapayer/site/internal/system"
	"github.com/megapayer/site/internal/whitepaper"
)

var rootFlags struct {
	envFile string
}

var rootCmd = &cobra.Command{
	Use:   "megapayer-site",
	Short: "Megapayer marketing site, whitepaper exporter and scene tools",
	Long: `Serves the Megapayer website and its API, exports whitepaper excerpts
to PDF in bulk, and dumps procedural scene descriptors for inspection.

Configuration comes from the environment, optionally seeded from a .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.AddCommand(serveCmd, exportCmd, sceneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(rootFlags.envFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := config.NewLogger(cfg.Dev, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// newExporter wires the browser pool. Callers own the returned pool.
func newExporter(cfg *config.Config, log *zap.Logger, m *pdf.Metrics) (*pdf.Exporter, *pdf.Pool, error) {
	system.RaiseFileLimit(log, 2048)

	pool := pdf.NewPool(pdf.PoolConfig{
		Size:           cfg.PDF.PoolSize,
		AcquireTimeout: cfg.PDF.AcquireTimeout,
		IdleTTL:        cfg.PDF.IdleTTL,
		MinFreeMemMB:   cfg.PDF.MinFreeMemMB,
	}, pdf.RodLauncher(cfg.PDF.BrowserBin), system.FreeMemoryMB, log, m)
	if err := pool.StartReaper(); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("start pool: %w", err)
	}

	return &pdf.Exporter{
		Excerpts:      whitepaper.NewStore(cfg.WhitepaperDir),
		Pool:          pool,
		BaseURL:       cfg.BaseURL,
		Options:       pdf.DefaultOptions(),
		RenderTimeout: cfg.PDF.RenderTimeout,
		Metrics:       m,
		Log:           log,
	}, pool, nil
}
