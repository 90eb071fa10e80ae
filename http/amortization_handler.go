package http

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/tony-42069/biz-acquisition/domain"
	"github.com/tony-42069/biz-acquisition/service"
)

type AmortizationHandler struct {
	service *service.AmortizationService
	logger  arbor.ILogger
}

func NewAmortizationHandler(service *service.AmortizationService, logger arbor.ILogger) *AmortizationHandler {
	return &AmortizationHandler{service: service, logger: logger}
}

func (h *AmortizationHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var input domain.DealInput
	if !decodeBody(w, r, h.logger, &input) {
		return
	}

	schedule, err := h.service.Schedule(input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, schedule)
}
