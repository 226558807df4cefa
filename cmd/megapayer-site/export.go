package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/megapayer/site/internal/whitepaper"
)

var exportFlags struct {
	all     bool
	out     string
	workers int
	title   string
}

var exportCmd = &cobra.Command{
	Use:   "export [id...]",
	Short: "Render whitepaper excerpts to PDF files",
	Long: `Render one or more whitepaper excerpts through the headless browser pool
and write <id>-whitepaper.pdf files to the output directory.

Examples:
  megapayer-site export blockchain dex
  megapayer-site export --all --out dist --workers 4`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportFlags.all, "all", false, "export every excerpt found in WHITEPAPER_DIR")
	exportCmd.Flags().StringVarP(&exportFlags.out, "out", "o", "output", "output directory")
	exportCmd.Flags().IntVarP(&exportFlags.workers, "workers", "w", 0, "parallel renders (default PDF_EXPORT_WORKERS)")
	exportCmd.Flags().StringVar(&exportFlags.title, "title", "", "title override for every exported document")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	ids := args
	if exportFlags.all {
		list, err := whitepaper.NewStore(cfg.WhitepaperDir).Available()
		if err != nil {
			return fmt.Errorf("scan %s: %w", cfg.WhitepaperDir, err)
		}
		for _, l := range list {
			ids = append(ids, l.ID)
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("no whitepapers to export: pass ids or --all")
	}

	workers := exportFlags.workers
	if workers <= 0 {
		workers = cfg.PDF.Workers
	}
	// More workers than browsers would only queue on the pool.
	if workers > cfg.PDF.PoolSize {
		cfg.PDF.PoolSize = workers
	}

	if err := os.MkdirAll(exportFlags.out, 0755); err != nil {
		return err
	}

	exporter, pool, err := newExporter(cfg, log, nil)
	if err != nil {
		return err
	}
	defer pool.Close()

	fmt.Printf("[*] Exporting %d whitepaper(s) with %d worker(s) to %s\n", len(ids), workers, exportFlags.out)
	start := time.Now()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for _, id := range ids {
		g.Go(func() error {
			return exportOne(ctx, exporter, id)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("[+] Done in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

type pdfExporter interface {
	Export(ctx context.Context, id, title string) ([]byte, error)
}

func exportOne(ctx context.Context, e pdfExporter, id string) error {
	t := time.Now()
	data, err := e.Export(ctx, id, exportFlags.title)
	if err != nil {
		return fmt.Errorf("export %s: %w", id, err)
	}

	path := filepath.Join(exportFlags.out, id+"-whitepaper.pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Printf("[>] %s (%d KB, %s)\n", path, len(data)/1024, time.Since(t).Round(time.Millisecond))
	return nil
}
