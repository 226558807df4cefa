package preview

import (
	"image"
	"image/color"
	"math"
)

// Edge is a page-content detector: pixels whose Sobel gradient exceeds
// Threshold count as content.
type Edge struct {
	Threshold float64
	Pad       int
}

func DefaultEdge() Edge {
	return Edge{Threshold: 30, Pad: 12}
}

// ContentBounds returns the padded bounding box of every edge pixel in img.
// Blank pages yield img.Bounds().
func (e Edge) ContentBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	if b.Dx() < 3 || b.Dy() < 3 {
		return b
	}
	gray := luminance(img)
	w := b.Dx()
	at := func(x, y int) float64 { return gray[y*w+x] }

	minX, minY, maxX, maxY := w, b.Dy(), -1, -1
	for y := 1; y < b.Dy()-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			if math.Hypot(gx, gy) <= e.Threshold {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return b
	}

	r := image.Rect(minX-e.Pad, minY-e.Pad, maxX+1+e.Pad, maxY+1+e.Pad).Add(b.Min)
	return r.Intersect(b)
}

func luminance(img image.Image) []float64 {
	b := img.Bounds()
	out := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, float64(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y))
		}
	}
	return out
}
