package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/krau/SiteLens/core"
	"github.com/krau/SiteLens/pkg/display"
	"github.com/krau/SiteLens/pkg/manifest"
	"github.com/krau/SiteLens/pkg/widget"
)

const maxRequestBody = 64 << 10

const (
	kindInput      = "input"
	kindRequest    = "request"
	kindSuperseded = "superseded"
	kindNotFound   = "not_found"
	kindAuth       = "auth"
	kindRateLimit  = "rate_limit"
)

type SubmitRequest struct {
	URL string `json:"url"`
}

type ModelResponse struct {
	RequestID   string         `json:"request_id,omitempty"`
	Seq         uint64         `json:"seq,omitempty"`
	ManifestURL string         `json:"manifest_url,omitempty"`
	Model       *display.Model `json:"model"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOverview is the stateless path: normalize, fetch and map without
// touching the server-owned widget. Identical concurrent requests share one
// fetch.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	manifestURL, err := manifest.Normalize(r.URL.Query().Get("url"))
	if err != nil {
		s.respondSubmitError(w, r, err)
		return
	}
	// The shared fetch must not be cut short by whichever caller started it.
	ctx := context.WithoutCancel(r.Context())
	v, err, shared := s.group.Do(manifestURL, func() (any, error) {
		raw, err := s.fetcher.Fetch(ctx, manifestURL)
		if err != nil {
			return nil, err
		}
		return s.mapper.Map(raw, manifest.BaseURL(manifestURL)), nil
	})
	if err != nil {
		s.respondSubmitError(w, r, err)
		return
	}
	log.FromContext(r.Context()).Debug("Overview built", "url", manifestURL, "shared", shared)
	respondJSON(w, http.StatusOK, ModelResponse{
		ManifestURL: manifestURL,
		Model:       v.(*display.Model),
	})
}

func (s *Server) handleSubmitWidget(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: kindRequest})
		return
	}
	res, err := s.widget.Submit(r.Context(), req.URL)
	if err != nil {
		s.respondSubmitError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ModelResponse{
		RequestID:   res.ID,
		Seq:         res.Seq,
		ManifestURL: res.ManifestURL,
		Model:       res.Model,
	})
}

func (s *Server) handleGetWidget(w http.ResponseWriter, r *http.Request) {
	seq, model := s.widget.Snapshot()
	if model == nil {
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: "no site analyzed yet", Kind: kindNotFound})
		return
	}
	respondJSON(w, http.StatusOK, ModelResponse{Seq: seq, Model: model})
}

func (s *Server) respondSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var langs []string
	if al := r.Header.Get("Accept-Language"); al != "" {
		langs = []string{al}
	}
	var fe *manifest.FetchError
	switch {
	case errors.Is(err, manifest.ErrEmptyInput):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: core.UserMessage(err, langs...), Kind: kindInput})
	case errors.Is(err, widget.ErrSuperseded):
		respondJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Kind: kindSuperseded})
	case errors.As(err, &fe):
		respondJSON(w, http.StatusBadGateway, ErrorResponse{Error: core.UserMessage(err, langs...), Kind: fe.KindName()})
	default:
		log.FromContext(r.Context()).Error("Unexpected submission error", "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: core.UserMessage(err, langs...), Kind: "internal"})
	}
}

func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
