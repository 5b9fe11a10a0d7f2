package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/overrides"
)

// maxImportBody caps an override import request.
const maxImportBody = 5 << 20

type reloadResponse struct {
	Version string `json:"version"`
	Stored  int    `json:"stored,omitempty"`
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Reload(r.Context()); err != nil {
		internalError(w, r, s.log, "manual reload failed", err)
		return
	}
	writeJSON(w, r, http.StatusOK, reloadResponse{Version: s.svc.Version()})
}

func (s *Server) handleListOverrides(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		internalError(w, r, s.log, "failed to list overrides", err)
		return
	}
	if list == nil {
		list = []overrides.Override{}
	}
	writeJSON(w, r, http.StatusOK, list)
}

// handleImportOverrides stores a nested translation tree for one locale.
func (s *Server) handleImportOverrides(w http.ResponseWriter, r *http.Request) {
	var tree map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBody)).Decode(&tree); err != nil {
		writeError(w, r, http.StatusBadRequest, "body must be a JSON object")
		return
	}

	n, err := s.store.Import(r.Context(), chi.URLParam(r, "locale"), tree)
	if err != nil {
		s.overrideError(w, r, err)
		return
	}
	s.reloadAfterWrite(w, r, n)
}

type upsertRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleUpsertOverride(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBody)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, `body must be {"value": "..."}`)
		return
	}

	err := s.store.Upsert(r.Context(), overrides.Override{
		Locale: chi.URLParam(r, "locale"),
		Key:    chi.URLParam(r, "key"),
		Value:  req.Value,
	})
	if err != nil {
		s.overrideError(w, r, err)
		return
	}
	s.reloadAfterWrite(w, r, 1)
}

func (s *Server) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "locale"), chi.URLParam(r, "key")); err != nil {
		s.overrideError(w, r, err)
		return
	}
	s.reloadAfterWrite(w, r, 0)
}

func (s *Server) reloadAfterWrite(w http.ResponseWriter, r *http.Request, stored int) {
	if err := s.svc.Reload(r.Context()); err != nil {
		// The write succeeded; the next scheduled reload picks it up.
		s.log.WarnContext(r.Context(), "reload after override write failed", logger.Error(err))
	}
	writeJSON(w, r, http.StatusOK, reloadResponse{Version: s.svc.Version(), Stored: stored})
}

func (s *Server) overrideError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, overrides.ErrEmptyLocale), errors.Is(err, overrides.ErrInvalidKey):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, overrides.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	default:
		internalError(w, r, s.log, "override write failed", err)
	}
}
