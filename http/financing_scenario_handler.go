package http

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
	"github.com/tony-42069/biz-acquisition/service"
)

type FinancingScenarioHandler struct {
	service *service.FinancingScenarioService
	logger  arbor.ILogger
}

func NewFinancingScenarioHandler(service *service.FinancingScenarioService, logger arbor.ILogger) *FinancingScenarioHandler {
	return &FinancingScenarioHandler{service: service, logger: logger}
}

func (h *FinancingScenarioHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var input domain.FinancingScenarioInput
	if !decodeBody(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.CompareTerms(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, result)
}
