package pdf

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/megapayer/site/internal/whitepaper"
)

// Excerpts provides markdown excerpts by id.
type Excerpts interface {
	Excerpt(id, title string) (whitepaper.Document, error)
}

// Exporter turns whitepaper excerpts into PDF bytes.
type Exporter struct {
	Excerpts      Excerpts
	Pool          *Pool
	BaseURL       string
	Options       Options
	RenderTimeout time.Duration
	Metrics       *Metrics
	Log           *zap.Logger
}

// Filename is the download name for id.
func Filename(id string) string {
	return id + "-whitepaper.pdf"
}

// Export renders the excerpt for id. A missing excerpt yields whitepaper.ErrNotFound.
func (e *Exporter) Export(ctx context.Context, id, title string) ([]byte, error) {
	started := time.Now()
	out, err := e.export(ctx, id, title)

	outcome := "ok"
	switch {
	case errors.Is(err, whitepaper.ErrNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrAcquireTimeout), errors.Is(err, ErrLowMemory):
		outcome = "busy"
	case err != nil:
		outcome = "error"
	}
	e.Metrics.observe(outcome, time.Since(started))

	if err != nil && outcome != "not_found" && e.Log != nil {
		e.Log.Error("pdf export failed", zap.String("id", id), zap.Error(err))
	}
	return out, err
}

func (e *Exporter) export(ctx context.Context, id, title string) ([]byte, error) {
	doc, err := e.Excerpts.Excerpt(id, title)
	if err != nil {
		return nil, err
	}
	html, err := whitepaper.RenderHTML(doc, e.BaseURL)
	if err != nil {
		return nil, err
	}

	if e.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.RenderTimeout)
		defer cancel()
	}

	var out []byte
	err = e.Pool.Do(ctx, func(b Browser) error {
		var perr error
		out, perr = b.PrintPDF(ctx, html, e.Options)
		return perr
	})
	return out, err
}
