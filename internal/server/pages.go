package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/megapayer/site/internal/components"
	"github.com/megapayer/site/internal/contact"
	"github.com/megapayer/site/internal/content"
	"github.com/megapayer/site/internal/countdown"
	"github.com/megapayer/site/internal/system"
	"github.com/megapayer/site/internal/whitepaper"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.HomePage())
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.AboutPage())
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.TeamPage())
}

func (s *Server) handleTerms(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.LegalPage("Terms of Service", "/legal/terms", content.Terms))
}

func (s *Server) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.LegalPage("Privacy Policy", "/legal/privacy", content.Privacy))
}

func (s *Server) handleSupport(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.SupportPage())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var host *system.Stats
	if st, err := system.Collect(r.Context()); err == nil {
		host = &st
	} else {
		s.Log.Debug("host stats unavailable", zap.Error(err))
	}
	writePage(w, http.StatusOK, components.StatusPage(content.Services, host))
}

func (s *Server) handleAirdrop(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.AirdropPage(content.Leaderboard()))
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, components.ContactPage(contact.Form{}, "", nil))
}

func (s *Server) handleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writePage(w, http.StatusBadRequest, components.ContactPage(contact.Form{}, "Invalid form submission", nil))
		return
	}
	var f contact.Form
	formFromValues(&f)(r.PostForm.Get)

	receipt, err := s.Contact.Submit(r.Context(), f)
	switch {
	case errors.Is(err, contact.ErrRequiredFields), errors.Is(err, contact.ErrInvalidEmail):
		writePage(w, http.StatusBadRequest, components.ContactPage(f, err.Error(), nil))
	case err != nil:
		s.Log.Error("contact submission failed", zap.Error(err))
		writePage(w, http.StatusInternalServerError, components.ContactPage(f, "Something went wrong. Please try again.", nil))
	default:
		writePage(w, http.StatusOK, components.ContactPage(f, "", &receipt))
	}
}

func (s *Server) handleComingSoon(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	target := s.Config.LaunchDate
	writePage(w, http.StatusOK, components.ComingSoonPage(product, countdown.Remaining(s.Now(), target), target))
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := content.ProductByKind(chi.URLParam(r, "kind"))
	if !ok {
		writePage(w, http.StatusNotFound, components.NotFoundPage("We don't have a product by that name."))
		return
	}
	writePage(w, http.StatusOK, components.ProductPage(p))
}

func (s *Server) handleWhitepapers(w http.ResponseWriter, r *http.Request) {
	onDisk := make(map[string]bool)
	list, err := s.Store.Available()
	if err != nil {
		s.Log.Warn("whitepaper scan failed", zap.String("dir", s.Store.Dir), zap.Error(err))
	}
	for _, l := range list {
		onDisk[l.ID] = true
	}
	writePage(w, http.StatusOK, components.WhitepapersPage(whitepaper.Catalog(), onDisk))
}

func (s *Server) handleWhitepaper(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, ok := whitepaper.Lookup(id)
	if !ok {
		writePage(w, http.StatusNotFound, components.NotFoundPage("Whitepaper not found"))
		return
	}

	doc, err := s.Store.Excerpt(id, entry.Title)
	if errors.Is(err, whitepaper.ErrNotFound) {
		writePage(w, http.StatusNotFound, components.NotFoundPage("Whitepaper not found"))
		return
	}
	if err != nil {
		s.Log.Error("read excerpt", zap.String("id", id), zap.Error(err))
		writePage(w, http.StatusInternalServerError, components.NotFoundPage("Could not load this whitepaper."))
		return
	}

	body, err := whitepaper.Markdown(doc.Markdown)
	if err != nil {
		s.Log.Error("render excerpt", zap.String("id", id), zap.Error(err))
		writePage(w, http.StatusInternalServerError, components.NotFoundPage("Could not load this whitepaper."))
		return
	}

	_, pdfErr := s.Store.FullPDF(id)
	writePage(w, http.StatusOK, components.WhitepaperPage(entry, body, pdfErr == nil))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusNotFound, components.NotFoundPage("The page you are looking for does not exist."))
}
