package preview

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Source is a paged document that can be rasterized.
type Source interface {
	PageCount() int
	RenderPage(index int, dpi float64) (image.Image, error)
	Close() error
}

// FitzSource rasterizes PDF bytes with MuPDF.
type FitzSource struct {
	doc *fitz.Document
}

func OpenPDF(data []byte) (*FitzSource, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &FitzSource{doc: doc}, nil
}

func (f *FitzSource) PageCount() int {
	return f.doc.NumPage()
}

func (f *FitzSource) RenderPage(index int, dpi float64) (image.Image, error) {
	if index < 0 || index >= f.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range [0,%d)", index, f.doc.NumPage())
	}
	return f.doc.ImageDPI(index, dpi)
}

func (f *FitzSource) Close() error {
	return f.doc.Close()
}
