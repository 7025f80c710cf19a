package handler

import (
	"net/http"
	"strconv"

	"github.com/blaisecz/fitbit-sleep/internal/api/validation"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
)

type DaysHandler struct {
	reports service.ReportService
}

func NewDaysHandler(reports service.ReportService) *DaysHandler {
	return &DaysHandler{reports: reports}
}

// List handles GET /v1/days
// @Summary List daily reports
// @Description Sleep and activity reports for an inclusive date range, oldest first. Each date is fetched once and then served from the cache.
// @Tags days
// @Produce json
// @Param from query string true "First date (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string true "Last date, inclusive (YYYY-MM-DD)" example(2024-01-31)
// @Param limit query integer false "Dates per page (1-31)" default(7) minimum(1) maximum(31)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DailyReportListResponse "Daily reports with pagination"
// @Failure 400 {object} problem.Problem "Inverted range or foreign cursor"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem "Fitbit token rejected"
// @Failure 429 {object} problem.Problem "Fitbit rate limit reached"
// @Failure 502 {object} problem.Problem "Fitbit API error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days [get]
func (h *DaysHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseDayRange(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.reports.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, "Failed to list daily reports")
		return
	}

	writeJSON(w, response)
}

// Get handles GET /v1/days/{date}
// @Summary Get daily report
// @Description Night report and activity report for one date.
// @Tags days
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.DailyReport "Daily report"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 401 {object} problem.Problem "Fitbit token rejected"
// @Failure 429 {object} problem.Problem "Fitbit rate limit reached"
// @Failure 502 {object} problem.Problem "Fitbit API error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days/{date} [get]
func (h *DaysHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	report, err := h.reports.Daily(r.Context(), date)
	if err != nil {
		writeError(w, err, "Failed to build daily report")
		return
	}

	writeJSON(w, report)
}

func parseDayRange(r *http.Request) (domain.ReportFilter, []problem.FieldError) {
	query := validation.DayRangeQuery{
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		Cursor: r.URL.Query().Get("cursor"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return domain.ReportFilter{}, []problem.FieldError{{
				Field:   "limit",
				Message: "must be a positive integer",
			}}
		}
		if limit < 1 {
			// Zero would be skipped by omitempty.
			return domain.ReportFilter{}, []problem.FieldError{{
				Field:   "limit",
				Message: "must be at least 1",
			}}
		}
		query.Limit = limit
	}

	if fieldErrors := validation.Validate(query); fieldErrors != nil {
		return domain.ReportFilter{}, fieldErrors
	}

	from, _ := domain.ParseDate(query.From)
	to, _ := domain.ParseDate(query.To)
	return domain.ReportFilter{
		From:   from,
		To:     to,
		Limit:  query.Limit,
		Cursor: query.Cursor,
	}, nil
}
