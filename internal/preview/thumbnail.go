package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/megapayer/site/internal/system"
)

const (
	DefaultWidth = 480
	renderDPI    = 96
)

// Thumbnail is a rendered first page.
type Thumbnail struct {
	PNG   []byte
	Pages int
	Size  image.Point
}

// Renderer turns documents into PNG thumbnails no wider than Width.
// A non-nil Trim crops blank page margins first. Pages are composited onto
// white, so transparent PDF backgrounds come out as paper.
type Renderer struct {
	Width int
	Trim  *Edge
	pool  *system.CanvasPool
}

func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	edge := DefaultEdge()
	return &Renderer{Width: width, Trim: &edge, pool: system.NewCanvasPool(system.DefaultCanvasSizes, color.White)}
}

// Render rasterizes page 1 of src.
func (r *Renderer) Render(src Source) (*Thumbnail, error) {
	pages := src.PageCount()
	if pages == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	img, err := src.RenderPage(0, renderDPI)
	if err != nil {
		return nil, fmt.Errorf("render page 1: %w", err)
	}

	box := img.Bounds()
	if r.Trim != nil {
		box = r.Trim.ContentBounds(img)
	}

	dst := r.fit(box)
	defer r.pool.Put(dst)
	draw.CatmullRom.Scale(dst, dst.Rect, img, box, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return &Thumbnail{PNG: buf.Bytes(), Pages: pages, Size: dst.Rect.Size()}, nil
}

// RenderPDF is Render for raw PDF bytes.
func (r *Renderer) RenderPDF(data []byte) (*Thumbnail, error) {
	src, err := OpenPDF(data)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return r.Render(src)
}

func (r *Renderer) fit(b image.Rectangle) *image.RGBA {
	w, h := b.Dx(), b.Dy()
	if w > r.Width {
		h = h * r.Width / w
		w = r.Width
	}
	if h < 1 {
		h = 1
	}
	return r.pool.Get(image.Pt(w, h))
}
