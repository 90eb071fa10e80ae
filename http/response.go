package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/service"
)

const maxBodyBytes = 1 << 20

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger arbor.ILogger, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Error decoding request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps input problems to 400 and anything else to 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger arbor.ILogger, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		logger.Debug().Err(err).Str("path", r.URL.Path).Msg("Rejected deal input")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// writeJSON encodes into a buffer before anything is written to w.
func writeJSON(w http.ResponseWriter, logger arbor.ILogger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn().Err(err).Msg("Error writing response")
	}
}
