package system

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
)

// DefaultCanvasSizes caps how many distinct canvas sizes are pooled.
// Trimmed thumbnails vary in height, so the set of sizes is open ended.
const DefaultCanvasSizes = 32

// CanvasPool hands out RGBA canvases filled with a background colour.
// Only the first maxSizes distinct sizes are recycled; any other size is
// allocated fresh and dropped on Put.
type CanvasPool struct {
	bg       *image.Uniform
	maxSizes int

	mu    sync.RWMutex
	pools map[image.Point]*sync.Pool
}

func NewCanvasPool(maxSizes int, bg color.Color) *CanvasPool {
	if maxSizes <= 0 {
		maxSizes = DefaultCanvasSizes
	}
	if bg == nil {
		bg = color.Transparent
	}
	return &CanvasPool{
		bg:       image.NewUniform(bg),
		maxSizes: maxSizes,
		pools:    make(map[image.Point]*sync.Pool),
	}
}

// Get returns a canvas of the given size anchored at the origin, with every
// pixel reset to the background.
func (p *CanvasPool) Get(size image.Point) *image.RGBA {
	var img *image.RGBA
	if pool := p.pool(size, true); pool != nil {
		img = pool.Get().(*image.RGBA)
	} else {
		img = image.NewRGBA(image.Rectangle{Max: size})
	}
	draw.Draw(img, img.Rect, p.bg, image.Point{}, draw.Src)
	return img
}

// Put recycles img if its size is pooled.
func (p *CanvasPool) Put(img *image.RGBA) {
	if img == nil || img.Rect.Min != (image.Point{}) {
		return
	}
	if pool := p.pool(img.Rect.Max, false); pool != nil {
		pool.Put(img)
	}
}

// Sizes reports how many distinct sizes are pooled.
func (p *CanvasPool) Sizes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pools)
}

func (p *CanvasPool) pool(size image.Point, create bool) *sync.Pool {
	p.mu.RLock()
	pool, ok := p.pools[size]
	p.mu.RUnlock()
	if ok || !create {
		return pool
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok = p.pools[size]; ok {
		return pool
	}
	if len(p.pools) >= p.maxSizes {
		return nil
	}
	pool = &sync.Pool{New: func() any { return image.NewRGBA(image.Rectangle{Max: size}) }}
	p.pools[size] = pool
	return pool
}
