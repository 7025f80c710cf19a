package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/fitbit-sleep/internal/api/validation"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/service"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
)

// InsightsHandler handles LLM insights endpoints.
type InsightsHandler struct {
	insights service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insights service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// GetInsights handles GET /v1/days/{date}/insights
// @Summary Get LLM-powered daily insights
// @Description Build the daily report for the date and ask the LLM for a short summary, observations and guidance.
// @Tags insights
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)" example(2024-01-16)
// @Success 200 {object} domain.InsightsResponse "Daily report with LLM commentary"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 401 {object} problem.Problem "Fitbit token rejected"
// @Failure 429 {object} problem.Problem "Fitbit rate limit reached"
// @Failure 502 {object} problem.Problem "Fitbit or LLM error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days/{date}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r)
	if !ok {
		return
	}

	result, err := h.insights.Generate(r.Context(), date)
	if err != nil {
		writeError(w, err, "Failed to generate insights")
		return
	}

	writeJSON(w, result)
}

// PostFeedback handles POST /v1/insights/feedback
// @Summary Submit feedback on insights
// @Description Submit a rating and optional comment for a previous insights response, linked by its trace_id.
// @Tags insights
// @Accept json
// @Produce json
// @Param body body domain.FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.insights.SubmitFeedback(r.Context(), &req); err != nil {
		writeError(w, err, "Failed to submit feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
