package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/go-chi/chi/v5"
)

var jan16 = domain.Date{Year: 2024, Month: time.January, Day: 16}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	sleepFunc    func(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error)
	nightFunc    func(ctx context.Context, date domain.Date) (*domain.NightReport, error)
	activityFunc func(ctx context.Context, date domain.Date) (*domain.ActivityReport, error)
	dailyFunc    func(ctx context.Context, date domain.Date) (*domain.DailyReport, error)
	awakeFunc    func(ctx context.Context, date domain.Date, from, to time.Time) (*domain.AwakeWindowReport, error)
	listFunc     func(ctx context.Context, filter domain.ReportFilter) (*domain.DailyReportListResponse, error)
}

func (m *MockReportService) Sleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	if m.sleepFunc != nil {
		return m.sleepFunc(ctx, date)
	}
	return &domain.SleepTimeline{Records: []domain.SleepRecord{}}, nil
}

func (m *MockReportService) Night(ctx context.Context, date domain.Date) (*domain.NightReport, error) {
	if m.nightFunc != nil {
		return m.nightFunc(ctx, date)
	}
	return &domain.NightReport{Date: date}, nil
}

func (m *MockReportService) Activity(ctx context.Context, date domain.Date) (*domain.ActivityReport, error) {
	if m.activityFunc != nil {
		return m.activityFunc(ctx, date)
	}
	return &domain.ActivityReport{Date: date}, nil
}

func (m *MockReportService) Daily(ctx context.Context, date domain.Date) (*domain.DailyReport, error) {
	if m.dailyFunc != nil {
		return m.dailyFunc(ctx, date)
	}
	return &domain.DailyReport{Date: date}, nil
}

func (m *MockReportService) AwakeBetween(ctx context.Context, date domain.Date, from, to time.Time) (*domain.AwakeWindowReport, error) {
	if m.awakeFunc != nil {
		return m.awakeFunc(ctx, date, from, to)
	}
	return &domain.AwakeWindowReport{Date: date, From: from, To: to}, nil
}

func (m *MockReportService) List(ctx context.Context, filter domain.ReportFilter) (*domain.DailyReportListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.DailyReportListResponse{
		Data:       []domain.DailyReport{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, date domain.Date) (*domain.InsightsResponse, error)
	feedbackFunc func(ctx context.Context, req *domain.FeedbackRequest) error
}

func (m *MockInsightsService) Generate(ctx context.Context, date domain.Date) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, date)
	}
	return &domain.InsightsResponse{
		Report: domain.DailyReport{Date: date},
		Insights: domain.LLMInsightsOutput{
			Summary:      "You slept well.",
			Observations: []string{"Consistent bedtime"},
			Guidance:     []string{"Keep it up"},
		},
	}, nil
}

func (m *MockInsightsService) SubmitFeedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, req)
	}
	return nil
}

// MockCacheService is a mock implementation of CacheService
type MockCacheService struct {
	dates       []domain.CachedDate
	invalidated []domain.Date
	cleared     int
}

func (m *MockCacheService) Status() *domain.CacheStatusResponse {
	return &domain.CacheStatusResponse{Dates: m.dates}
}

func (m *MockCacheService) Invalidate(date domain.Date) {
	m.invalidated = append(m.invalidated, date)
}

func (m *MockCacheService) Clear() {
	m.cleared++
}

// withURLParam attaches a chi route context carrying one URL parameter.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
