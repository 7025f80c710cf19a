package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
)

func TestInsightsHandler_GetInsights(t *testing.T) {
	tests := []struct {
		name           string
		date           string
		mockService    *MockInsightsService
		expectedStatus int
	}{
		{
			name:           "success",
			date:           "2024-01-16",
			mockService:    &MockInsightsService{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid date",
			date:           "yesterday",
			mockService:    &MockInsightsService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "llm not configured",
			date: "2024-01-16",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, date domain.Date) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "llm request failed",
			date: "2024-01-16",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, date domain.Date) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIRequest
				},
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInsightsHandler(tt.mockService)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/days/"+tt.date+"/insights", nil), "date", tt.date)
			rr := httptest.NewRecorder()
			handler.GetInsights(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestInsightsHandler_GetInsights_Body(t *testing.T) {
	mockService := &MockInsightsService{
		generateFunc: func(ctx context.Context, date domain.Date) (*domain.InsightsResponse, error) {
			return &domain.InsightsResponse{
				Report:   domain.DailyReport{Date: date},
				Insights: domain.LLMInsightsOutput{Summary: "Short night."},
				TraceID:  "4bf92f3577b34da6a3ce929d0e0e4736",
			}, nil
		},
	}
	handler := NewInsightsHandler(mockService)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/days/2024-01-16/insights", nil), "date", "2024-01-16")
	rr := httptest.NewRecorder()
	handler.GetInsights(rr, req)

	var response domain.InsightsResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.TraceID != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("expected trace ID to be passed through, got %q", response.TraceID)
	}
	if response.Report.Date != jan16 {
		t.Errorf("expected report date %s, got %s", jan16, response.Report.Date)
	}
}

func TestInsightsHandler_PostFeedback(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectSubmit   bool
	}{
		{
			name:           "valid feedback",
			body:           `{"trace_id": "abc123", "score": 5, "comment": "Great insights!"}`,
			expectedStatus: http.StatusNoContent,
			expectSubmit:   true,
		},
		{
			name:           "without comment",
			body:           `{"trace_id": "abc123", "score": 1}`,
			expectedStatus: http.StatusNoContent,
			expectSubmit:   true,
		},
		{
			name:           "missing trace_id",
			body:           `{"score": 4}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "score too high",
			body:           `{"trace_id": "abc123", "score": 6}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "score missing",
			body:           `{"trace_id": "abc123"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var submitted *domain.FeedbackRequest
			mockService := &MockInsightsService{
				feedbackFunc: func(ctx context.Context, req *domain.FeedbackRequest) error {
					submitted = req
					return nil
				},
			}
			handler := NewInsightsHandler(mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/insights/feedback", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			handler.PostFeedback(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if tt.expectSubmit && submitted == nil {
				t.Error("expected feedback to reach the service")
			}
			if !tt.expectSubmit && submitted != nil {
				t.Error("expected invalid feedback to be rejected before the service")
			}
		})
	}
}
