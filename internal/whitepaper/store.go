package whitepaper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

var ErrNotFound = errors.New("whitepaper not found")

const (
	excerptSuffix = "-whitepaper-excerpt.md"
	pdfSuffix     = "-whitepaper.pdf"
)

var safeID = regexp.MustCompile(`^[a-z0-9-]+$`)

// Document is an excerpt ready for rendering.
type Document struct {
	ID       string
	Title    string
	Markdown []byte
}

// Store reads whitepaper files from a single directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(id, suffix string) (string, error) {
	if !safeID.MatchString(id) {
		return "", ErrNotFound
	}
	return filepath.Join(s.Dir, id+suffix), nil
}

func (s *Store) read(id, suffix string) ([]byte, error) {
	p, err := s.path(id, suffix)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

// Excerpt loads the markdown excerpt for id. The title falls back to the
// catalog title, then to the id.
func (s *Store) Excerpt(id, title string) (Document, error) {
	md, err := s.read(id, excerptSuffix)
	if err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(title) == "" {
		if e, ok := Lookup(id); ok {
			title = e.Title
		} else {
			title = id
		}
	}
	return Document{ID: id, Title: title, Markdown: md}, nil
}

// HasExcerpt reports whether an excerpt exists for id without reading it.
func (s *Store) HasExcerpt(id string) bool {
	p, err := s.path(id, excerptSuffix)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// FullPDF loads a pre-placed full whitepaper PDF.
func (s *Store) FullPDF(id string) ([]byte, error) {
	return s.read(id, pdfSuffix)
}

// Listing is one excerpt found on disk.
type Listing struct {
	ID       string
	Modified time.Time
	HasPDF   bool
}

// Available scans the directory for excerpts, newest first.
func (s *Store) Available() ([]Listing, error) {
	files, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	var out []Listing
	pdfs := make(map[string]bool)
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		if id, ok := strings.CutSuffix(name, pdfSuffix); ok {
			pdfs[id] = true
			continue
		}
		id, ok := strings.CutSuffix(name, excerptSuffix)
		if !ok || !safeID.MatchString(id) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		out = append(out, Listing{ID: id, Modified: info.ModTime()})
	}

	for i := range out {
		out[i].HasPDF = pdfs[out[i].ID]
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Modified.Equal(out[j].Modified) {
			return out[i].ID < out[j].ID
		}
		return out[i].Modified.After(out[j].Modified)
	})
	return out, nil
}
