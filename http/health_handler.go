package http

import (
	"net/http"

	"github.com/ternarybob/arbor"
)

type healthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
	AI     bool   `json:"ai"`
}

type HealthHandler struct {
	cacheBackend string
	aiEnabled    bool
	logger       arbor.ILogger
}

func NewHealthHandler(cacheBackend string, aiEnabled bool, logger arbor.ILogger) *HealthHandler {
	return &HealthHandler{cacheBackend: cacheBackend, aiEnabled: aiEnabled, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.logger, healthResponse{Status: "ok", Cache: h.cacheBackend, AI: h.aiEnabled})
}
