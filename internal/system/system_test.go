package system

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCanvasPoolResetsBackground(t *testing.T) {
	p := NewCanvasPool(4, color.White)
	size := image.Pt(40, 30)

	img := p.Get(size)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Rect)
	img.Set(5, 5, color.Black)
	p.Put(img)

	again := p.Get(size)
	assert.Equal(t, color.RGBAModel.Convert(color.White), again.At(5, 5))
	assert.Equal(t, 1, p.Sizes())
}

func TestCanvasPoolBoundsSizes(t *testing.T) {
	p := NewCanvasPool(2, nil)
	for h := 1; h <= 5; h++ {
		img := p.Get(image.Pt(10, h))
		assert.Equal(t, h, img.Rect.Dy())
		p.Put(img)
	}
	assert.Equal(t, 2, p.Sizes())

	// Transparent by default.
	_, _, _, a := p.Get(image.Pt(10, 1)).At(0, 0).RGBA()
	assert.Zero(t, a)
}

func TestCanvasPoolDropsForeign(t *testing.T) {
	p := NewCanvasPool(0, nil)
	p.Put(nil)
	p.Put(image.NewRGBA(image.Rect(0, 0, 3, 3)))
	p.Put(image.NewRGBA(image.Rect(2, 2, 5, 5)))
	assert.Zero(t, p.Sizes())
}

func TestCollect(t *testing.T) {
	s, err := Collect(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.MemUsedPct, 0.0)
	assert.LessOrEqual(t, s.MemUsedPct, 100.0)

	free, err := FreeMemoryMB(context.Background())
	require.NoError(t, err)
	assert.Greater(t, free, uint64(0))
}

func TestRaiseFileLimitNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() { RaiseFileLimit(zap.NewNop(), 1024) })
}
