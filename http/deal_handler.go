package http

import (
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
	"github.com/tony-42069/biz-acquisition/report"
	"github.com/tony-42069/biz-acquisition/service"
)

type DealHandler struct {
	service *service.DealService
	logger  arbor.ILogger
}

func NewDealHandler(service *service.DealService, logger arbor.ILogger) *DealHandler {
	return &DealHandler{service: service, logger: logger}
}

// Evaluate returns the evaluation as JSON, or as a report when ?format is
// markdown, html or pdf.
func (h *DealHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	switch format {
	case "", "json", "markdown", "md", "html", "pdf":
	default:
		http.Error(w, "unknown format "+format, http.StatusBadRequest)
		return
	}

	var input domain.DealInput
	if !decodeBody(w, r, h.logger, &input) {
		return
	}

	evaluation, err := h.service.Evaluate(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	switch format {
	case "markdown", "md":
		h.writeDocument(w, "text/markdown; charset=utf-8", []byte(report.Markdown(evaluation)), nil)
	case "html":
		body, err := report.HTML(evaluation)
		h.writeDocument(w, "text/html; charset=utf-8", body, err)
	case "pdf":
		body, err := report.PDF(evaluation)
		w.Header().Set("Content-Disposition", `attachment; filename="acquisition-analysis.pdf"`)
		h.writeDocument(w, "application/pdf", body, err)
	default:
		writeJSON(w, h.logger, evaluation)
	}
}

func (h *DealHandler) writeDocument(w http.ResponseWriter, contentType string, body []byte, err error) {
	if err != nil {
		h.logger.Error().Err(err).Str("content_type", contentType).Msg("Error rendering report")
		w.Header().Del("Content-Disposition")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn().Err(err).Msg("Error writing report")
	}
}
