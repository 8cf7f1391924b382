// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/discovery"
)

type Handlers struct{ D *discovery.Service }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/properties", h.catalog)
	s.mux.Get("/v1/properties/nearby", h.nearby)
}

func writeProblem(w http.ResponseWriter, status int, title, code, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Code: code, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) catalog(w http.ResponseWriter, r *http.Request) {
	req, err := discovery.ParseCatalog(r.URL.Query())
	if err != nil {
		writeValidation(w, err)
		return
	}
	h.serve(w, r, req, "catalog")
}

func (h *Handlers) nearby(w http.ResponseWriter, r *http.Request) {
	req, err := discovery.ParseNearby(r.URL.Query())
	if err != nil {
		writeValidation(w, err)
		return
	}
	h.serve(w, r, req, "geo")
}

func (h *Handlers) serve(w http.ResponseWriter, r *http.Request, req discovery.Request, mode string) {
	items, err := h.D.Discover(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("discovery failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "", "could not complete discovery")
		return
	}
	observability.ObserveDiscovery(mode, len(items))

	if items == nil {
		items = []discovery.Item{} // empty array, not null
	}
	etag, body := calcETagAndBody(items)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write discovery body")
	}
}

// writeValidation maps the discovery validation taxonomy onto 400 problems
// carrying the machine-readable code.
func writeValidation(w http.ResponseWriter, err error) {
	var ve *discovery.ValidationError
	if errors.As(err, &ve) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", ve.Code, ve.Message)
		return
	}
	writeProblem(w, http.StatusBadRequest, "Bad Request", "", err.Error())
}
