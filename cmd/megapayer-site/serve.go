package main

import (
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/megapayer/site/internal/contact"
	"github.com/megapayer/site/internal/escrow"
	"github.com/megapayer/site/internal/pdf"
	"github.com/megapayer/site/internal/preview"
	"github.com/megapayer/site/internal/server"
	"github.com/megapayer/site/internal/whitepaper"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website and API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "listen address (overrides SITE_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()
	if serveFlags.addr != "" {
		cfg.Addr = serveFlags.addr
	}

	presets, err := cfg.Presets()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	exporter, pool, err := newExporter(cfg, log, pdf.NewMetrics(reg))
	if err != nil {
		return err
	}
	defer pool.Close()

	esc := escrow.DefaultConfig()
	esc.Policy = cfg.EscrowPolicy()

	srv := server.New(server.Deps{
		Config:   cfg,
		Log:      log,
		Store:    whitepaper.NewStore(cfg.WhitepaperDir),
		Exporter: exporter,
		Contact:  contact.NewService(cfg.SubmitDelay, log.Named("contact")),
		Presets:  presets,
		Previews: preview.NewRenderer(preview.DefaultWidth),
		Escrow:   esc,
		Registry: reg,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
