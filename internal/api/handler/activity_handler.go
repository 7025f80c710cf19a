package handler

import (
	"net/http"

	"github.com/blaisecz/fitbit-sleep/internal/service"
)

type ActivityHandler struct {
	reports service.ReportService
}

func NewActivityHandler(reports service.ReportService) *ActivityHandler {
	return &ActivityHandler{reports: reports}
}

// Get handles GET /v1/activity/{date}
// @Summary Get activity report
// @Description Steps, calories, active minutes and goal progress for the date.
// @Tags activity
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.ActivityReport "Activity report"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 401 {object} problem.Problem "Fitbit token rejected"
// @Failure 429 {object} problem.Problem "Fitbit rate limit reached"
// @Failure 502 {object} problem.Problem "Fitbit API error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /activity/{date} [get]
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	report, err := h.reports.Activity(r.Context(), date)
	if err != nil {
		writeError(w, err, "Failed to build activity report")
		return
	}

	writeJSON(w, report)
}
