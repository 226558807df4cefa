package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/megapayer/site/internal/animate"
	"github.com/megapayer/site/internal/contact"
	"github.com/megapayer/site/internal/countdown"
	"github.com/megapayer/site/internal/escrow"
	"github.com/megapayer/site/internal/pdf"
	"github.com/megapayer/site/internal/preview"
	"github.com/megapayer/site/internal/scene"
	"github.com/megapayer/site/internal/system"
	"github.com/megapayer/site/internal/whitepaper"
)

// maxReplay bounds how far a frame request may replay the update loop.
const maxReplay = 600.0

func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Message: "Method not allowed"})
		return
	}

	id := chi.URLParam(r, "id")
	if !s.Store.HasExcerpt(id) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Whitepaper not found"})
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := decodeBody(r, &req, func(get func(string) string) { req.Title = get("title") }); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body", Error: err.Error()})
		return
	}

	data, err := s.Exporter.Export(r.Context(), id, req.Title)
	switch {
	case errors.Is(err, whitepaper.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Whitepaper not found"})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Error generating PDF", Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdf.Filename(id)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	var f contact.Form
	if err := decodeBody(r, &f, formFromValues(&f)); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body", Error: err.Error()})
		return
	}

	receipt, err := s.Contact.Submit(r.Context(), f)
	if err != nil {
		s.writeContactError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var su contact.Signup
	err := decodeBody(r, &su, func(get func(string) string) {
		su.Email = get("email")
		su.Product = get("product")
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body", Error: err.Error()})
		return
	}

	receipt, err := s.Contact.Subscribe(r.Context(), su)
	if err != nil {
		s.writeContactError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func formFromValues(f *contact.Form) func(get func(string) string) {
	return func(get func(string) string) {
		f.Name = get("name")
		f.Email = get("email")
		f.Company = get("company")
		f.Subject = get("subject")
		f.Message = get("message")
	}
}

func (s *Server) writeContactError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contact.ErrRequiredFields), errors.Is(err, contact.ErrInvalidEmail):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Message: "Request cancelled"})
	default:
		s.Log.Error("contact submission failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Something went wrong", Error: err.Error()})
	}
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"kinds": scene.Kinds()})
}

// buildScene reads the kind path parameter and the optional seed query.
func (s *Server) buildScene(w http.ResponseWriter, r *http.Request) (*scene.Scene, bool) {
	var seed int64
	if v := r.URL.Query().Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid seed", Error: err.Error()})
			return nil, false
		}
		seed = n
	}

	sc, err := scene.Build(chi.URLParam(r, "kind"), seed, s.Presets)
	if errors.Is(err, scene.ErrUnknownKind) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Unknown scene kind"})
		return nil, false
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Scene generation failed", Error: err.Error()})
		return nil, false
	}
	return sc, true
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.buildScene(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.buildScene(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	elapsed, err := queryFloat(q.Get("t"), 0)
	if err != nil || elapsed < 0 || elapsed > maxReplay {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: fmt.Sprintf("t must be between 0 and %.0f seconds", maxReplay)})
		return
	}
	fps := animate.DefaultFPS
	if v := q.Get("fps"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 240 {
			writeJSON(w, http.StatusBadRequest, errorBody{Message: "fps must be between 1 and 240"})
			return
		}
		fps = n
	}

	a := animate.New(sc, scene.NewRand(sc.Seed))
	writeJSON(w, http.StatusOK, a.Replay(elapsed, fps))
}

func queryFloat(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

type countdownResponse struct {
	countdown.Parts
	Target time.Time `json:"target"`
}

func (s *Server) handleCountdown(w http.ResponseWriter, r *http.Request) {
	target := s.Config.LaunchDate
	writeJSON(w, http.StatusOK, countdownResponse{
		Parts:  countdown.Remaining(s.Now(), target),
		Target: target,
	})
}

type escrowResponse struct {
	escrow.State
	StepName string     `json:"step_name"`
	Token    scene.Vec3 `json:"token"`
}

// Parties match the p2p illustration: buyer left, escrow center, seller right.
var escrowParties = escrow.Parties{
	Buyer:  scene.V(-3, 0, 0),
	Escrow: scene.V(0, 1.5, 0),
	Seller: scene.V(3, 0, 0),
}

func (s *Server) handleEscrow(w http.ResponseWriter, r *http.Request) {
	cfg := s.Escrow
	q := r.URL.Query()
	if v := q.Get("policy"); v != "" {
		cfg.Policy = escrow.ParsePolicy(v)
	}
	secs, err := queryFloat(q.Get("t"), 0)
	if err != nil || secs < 0 || secs > maxReplay {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: fmt.Sprintf("t must be between 0 and %.0f seconds", maxReplay)})
		return
	}

	st := escrow.Simulate(cfg, time.Duration(secs*float64(time.Second)))
	writeJSON(w, http.StatusOK, escrowResponse{
		State:    st,
		StepName: st.Step.String(),
		Token:    escrowParties.TokenPosition(st),
	})
}

func (s *Server) handleStatusAPI(w http.ResponseWriter, r *http.Request) {
	stats, err := system.Collect(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Stats unavailable", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	thumb, err := s.thumbnail(id)
	if errors.Is(err, whitepaper.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Whitepaper not found"})
		return
	}
	if err != nil {
		s.Log.Error("preview failed", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Preview failed", Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Page-Count", strconv.Itoa(thumb.Pages))
	_, _ = w.Write(thumb.PNG)
}

// thumbnail renders each whitepaper's first page once. Concurrent requests
// for the same id share one render.
func (s *Server) thumbnail(id string) (*preview.Thumbnail, error) {
	s.thumbsMu.RLock()
	t, ok := s.thumbCache[id]
	s.thumbsMu.RUnlock()
	if ok {
		return t, nil
	}

	v, err, _ := s.thumbs.Do(id, func() (any, error) {
		data, err := s.Store.FullPDF(id)
		if err != nil {
			return nil, err
		}
		t, err := s.Previews.RenderPDF(data)
		if err != nil {
			return nil, err
		}
		s.thumbsMu.Lock()
		s.thumbCache[id] = t
		s.thumbsMu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*preview.Thumbnail), nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
