package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	pages  int
	img    image.Image
	err    error
	closed bool
}

func (f *fakeSource) PageCount() int { return f.pages }

func (f *fakeSource) RenderPage(index int, dpi float64) (image.Image, error) {
	return f.img, f.err
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 108, G: 60, B: 225, A: 255})
		}
	}
	return img
}

func TestRenderScalesDown(t *testing.T) {
	r := NewRenderer(100)
	thumb, err := r.Render(&fakeSource{pages: 12, img: solid(400, 600)})
	require.NoError(t, err)

	assert.Equal(t, 12, thumb.Pages)
	assert.Equal(t, image.Pt(100, 150), thumb.Size)

	decoded, err := png.Decode(bytes.NewReader(thumb.PNG))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	r8, _, _, _ := decoded.At(50, 75).RGBA()
	assert.InDelta(t, 108, r8>>8, 2)
}

func TestRenderKeepsSmallPages(t *testing.T) {
	thumb, err := NewRenderer(0).Render(&fakeSource{pages: 1, img: solid(200, 100)})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 100), thumb.Size)
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(100)

	_, err := r.Render(&fakeSource{pages: 0})
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = r.Render(&fakeSource{pages: 1, err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestRenderPDFRejectsGarbage(t *testing.T) {
	_, err := NewRenderer(100).RenderPDF([]byte("not a pdf"))
	assert.Error(t, err)
}

func page(w, h int, ink image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if image.Pt(x, y).In(ink) {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestContentBounds(t *testing.T) {
	img := page(200, 300, image.Rect(50, 60, 150, 120))
	e := Edge{Threshold: 30, Pad: 5}

	got := e.ContentBounds(img)
	assert.Equal(t, image.Rect(44, 54, 156, 126), got)
}

func TestContentBoundsBlankPage(t *testing.T) {
	img := page(100, 100, image.Rectangle{})
	assert.Equal(t, img.Bounds(), DefaultEdge().ContentBounds(img))
}

func TestContentBoundsClamped(t *testing.T) {
	img := page(100, 100, image.Rect(0, 0, 100, 10))
	got := Edge{Threshold: 30, Pad: 50}.ContentBounds(img)
	assert.Equal(t, img.Bounds(), got.Union(img.Bounds()))
	assert.True(t, got.In(img.Bounds()))
}

func TestRenderTrimsMargins(t *testing.T) {
	r := NewRenderer(400)
	r.Trim = &Edge{Threshold: 30, Pad: 0}
	thumb, err := r.Render(&fakeSource{pages: 1, img: page(400, 400, image.Rect(100, 100, 300, 200))})
	require.NoError(t, err)
	// Edges sit one pixel either side of the ink boundary.
	assert.InDelta(t, 202, thumb.Size.X, 2)
	assert.InDelta(t, 102, thumb.Size.Y, 2)
}

func TestRenderFillsTransparentWithWhite(t *testing.T) {
	r := NewRenderer(50)
	r.Trim = nil

	for i := 0; i < 2; i++ {
		thumb, err := r.Render(&fakeSource{pages: 1, img: image.NewRGBA(image.Rect(0, 0, 100, 40))})
		require.NoError(t, err)
		assert.Equal(t, image.Pt(50, 20), thumb.Size)

		decoded, err := png.Decode(bytes.NewReader(thumb.PNG))
		require.NoError(t, err)
		cr, cg, cb, ca := decoded.At(10, 10).RGBA()
		assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{cr, cg, cb, ca}, "render %d", i)
	}
}
