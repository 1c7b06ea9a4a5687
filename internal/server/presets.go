package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
	"github.com/thangdevalone/meeting-layout-grid/pkg/preset"
)

// presetRequest is the body accepted by PUT /v1/presets/{name}.
type presetRequest struct {
	Description string         `json:"description,omitempty"`
	Options     layout.Options `json:"options"`
}

func (s *Server) registerPresetRoutes(r chi.Router) {
	r.Route("/presets", func(r chi.Router) {
		r.Get("/", s.handleListPresets)
		r.Get("/{name}", s.handleGetPreset)
		r.Put("/{name}", s.handlePutPreset)
		r.Delete("/{name}", s.handleDeletePreset)
	})
}

// handleListPresets returns all stored presets sorted by name.
// GET /v1/presets
func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.presets.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, ErrCodeStoreFailed, err.Error())
		return
	}
	if presets == nil {
		presets = []preset.Preset{}
	}
	writeJSON(w, http.StatusOK, presets)
}

// handleGetPreset returns one preset by name.
// GET /v1/presets/{name}
func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	p, err := s.presets.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, preset.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, ErrCodePresetNotFound, "preset not found: "+name)
			return
		}
		writeError(w, r, http.StatusInternalServerError, ErrCodeStoreFailed, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handlePutPreset creates or replaces a preset.
// PUT /v1/presets/{name}
func (s *Server) handlePutPreset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))

	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body: "+err.Error())
		return
	}

	p := preset.Preset{
		Name:        name,
		Description: req.Description,
		Options:     req.Options,
	}
	if err := s.presets.Put(r.Context(), &p); err != nil {
		if errors.Is(err, preset.ErrInvalidName) {
			writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, ErrCodeStoreFailed, err.Error())
		return
	}

	stored, err := s.presets.Get(r.Context(), name)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, ErrCodeStoreFailed, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// handleDeletePreset removes a preset.
// DELETE /v1/presets/{name}
func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.presets.Delete(r.Context(), name); err != nil {
		if errors.Is(err, preset.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, ErrCodePresetNotFound, "preset not found: "+name)
			return
		}
		writeError(w, r, http.StatusInternalServerError, ErrCodeStoreFailed, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
