package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
	"github.com/blaisecz/fitbit-sleep/pkg/problem"
	"github.com/go-chi/chi/v5"
)

// writeError maps service and transport errors to problem responses.
// fallback is the detail used for unexpected errors.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *fitbit.APIError

	switch {
	case errors.Is(err, domain.ErrInvalidWindow):
		problem.BadRequest("to must not be before from").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(err.Error()).Write(w)
	case fitbit.IsUnauthorized(err):
		problem.Unauthorized("Fitbit rejected the access token; store a fresh one").Write(w)
	case fitbit.IsRateLimited(err):
		retryAfter, _ := fitbit.RetryAfter(err)
		problem.TooManyRequests("Fitbit rate limit reached", retryAfter).Write(w)
	case errors.As(err, &apiErr):
		problem.BadGateway("Fitbit API error: " + apiErr.Message).Write(w)
	case errors.Is(err, fitbit.ErrDecode):
		problem.BadGateway("Fitbit returned an unreadable response").Write(w)
	case errors.Is(err, fitbit.ErrTransport):
		problem.BadGateway("Fitbit API is unreachable").Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

// dateParam parses the {date} URL parameter, writing a 400 when it is malformed.
func dateParam(w http.ResponseWriter, r *http.Request) (domain.Date, bool) {
	date, err := domain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("Invalid date format, expected YYYY-MM-DD").Write(w)
		return domain.Date{}, false
	}
	return date, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
