package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Options control page geometry of the printed document. Sizes are in inches.
type Options struct {
	PaperWidth      float64
	PaperHeight     float64
	Margin          float64
	PrintBackground bool
}

// A4 with the stylesheet's own @page margins.
func DefaultOptions() Options {
	return Options{
		PaperWidth:      8.27,
		PaperHeight:     11.69,
		Margin:          0,
		PrintBackground: true,
	}
}

// Browser prints HTML documents to PDF.
type Browser interface {
	PrintPDF(ctx context.Context, html []byte, opts Options) ([]byte, error)
	Close() error
}

// Launcher starts a new Browser.
type Launcher func(ctx context.Context) (Browser, error)

// RodLauncher starts headless Chromium through go-rod. An empty bin lets
// rod locate or download a browser.
func RodLauncher(bin string) Launcher {
	return func(ctx context.Context) (Browser, error) {
		l := launcher.New().
			Context(ctx).
			NoSandbox(true).
			Headless(true).
			Set("disable-gpu").
			Set("disable-dev-shm-usage")
		if bin != "" {
			l = l.Bin(bin)
		}

		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}

		b := rod.New().ControlURL(u)
		if err := b.Connect(); err != nil {
			l.Kill()
			return nil, fmt.Errorf("connect browser: %w", err)
		}
		return &rodBrowser{browser: b, launcher: l}, nil
	}
}

type rodBrowser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func (r *rodBrowser) PrintPDF(ctx context.Context, html []byte, opts Options) ([]byte, error) {
	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}
	// Fonts and images settle after load.
	_ = page.WaitIdle(2 * time.Second)

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   opts.PrintBackground,
		PaperWidth:        num(opts.PaperWidth),
		PaperHeight:       num(opts.PaperHeight),
		MarginTop:         num(opts.Margin),
		MarginBottom:      num(opts.Margin),
		MarginLeft:        num(opts.Margin),
		MarginRight:       num(opts.Margin),
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return io.ReadAll(stream)
}

func (r *rodBrowser) Close() error {
	err := r.browser.Close()
	r.launcher.Kill()
	return err
}

func num(v float64) *float64 { return &v }
