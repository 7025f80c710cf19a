package handler

import (
	"net/http"

	"github.com/blaisecz/fitbit-sleep/internal/api/validation"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
)

type SleepHandler struct {
	reports service.ReportService
}

func NewSleepHandler(reports service.ReportService) *SleepHandler {
	return &SleepHandler{reports: reports}
}

// GetTimeline handles GET /v1/sleep/{date}
// @Summary Get sleep timeline
// @Description Every sleep record logged for the date with its stage intervals and the day summary. Cached per date after the first fetch.
// @Tags sleep
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.SleepTimeline "Sleep timeline"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 401 {object} problem.Problem "Fitbit token rejected"
// @Failure 429 {object} problem.Problem "Fitbit rate limit reached"
// @Failure 502 {object} problem.Problem "Fitbit API error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep/{date} [get]
func (h *SleepHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	timeline, err := h.reports.Sleep(r.Context(), date)
	if err != nil {
		writeError(w, err, "Failed to load sleep")
		return
	}

	writeJSON(w, timeline)
}

// GetReport handles GET /v1/sleep/{date}/report
// @Summary Get night report
// @Description Derived metrics for the date's main sleep: efficiency, fell asleep and woke up times, stage minutes. Main sleep fields are omitted when no record is flagged as main sleep.
// @Tags sleep
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.NightReport "Night report"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 401 {object} problem.Problem "Fitbit token rejected"
// @Failure 429 {object} problem.Problem "Fitbit rate limit reached"
// @Failure 502 {object} problem.Problem "Fitbit API error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep/{date}/report [get]
func (h *SleepHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	report, err := h.reports.Night(r.Context(), date)
	if err != nil {
		writeError(w, err, "Failed to build night report")
		return
	}

	writeJSON(w, report)
}

// GetAwake handles GET /v1/sleep/{date}/awake
// @Summary Measure awake time in a window
// @Description Time in the half-open window [from, to) not covered by non-wake intervals of the main sleep. Timestamps are zone-less, in the same frame as the sleep log. Without a main sleep the whole window is awake.
// @Tags sleep
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Param from query string true "Window start (YYYY-MM-DDTHH:MM:SS)" example(2024-01-16T00:00:00)
// @Param to query string true "Window end (YYYY-MM-DDTHH:MM:SS)" example(2024-01-16T06:00:00)
// @Success 200 {object} domain.AwakeWindowReport "Awake time"
// @Failure 400 {object} problem.Problem "Invalid date or inverted window"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem "Fitbit token rejected"
// @Failure 429 {object} problem.Problem "Fitbit rate limit reached"
// @Failure 502 {object} problem.Problem "Fitbit API error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep/{date}/awake [get]
func (h *SleepHandler) GetAwake(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	query := validation.AwakeWindowQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if fieldErrors := validation.Validate(query); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}
	// Layout is already checked by the validator.
	from, _ := domain.ParseLocalTime(query.From)
	to, _ := domain.ParseLocalTime(query.To)

	report, err := h.reports.AwakeBetween(r.Context(), date, from, to)
	if err != nil {
		writeError(w, err, "Failed to measure awake time")
		return
	}

	writeJSON(w, report)
}
