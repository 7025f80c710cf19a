package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/cache"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/langfuse"
)

// MockDataSource serves fixed timelines and activity summaries per date.
type MockDataSource struct {
	sleep       map[domain.Date]*domain.SleepTimeline
	activity    map[domain.Date]*domain.ActivitySummary
	err         error
	sleepCalls  int
	activityErr error
}

func NewMockDataSource() *MockDataSource {
	return &MockDataSource{
		sleep:    make(map[domain.Date]*domain.SleepTimeline),
		activity: make(map[domain.Date]*domain.ActivitySummary),
	}
}

func (m *MockDataSource) GetSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	m.sleepCalls++
	if m.err != nil {
		return nil, m.err
	}
	if t, ok := m.sleep[date]; ok {
		return t, nil
	}
	return &domain.SleepTimeline{}, nil
}

func (m *MockDataSource) GetActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.activityErr != nil {
		return nil, m.activityErr
	}
	if a, ok := m.activity[date]; ok {
		return a, nil
	}
	return &domain.ActivitySummary{}, nil
}

// MockCacheStore records evictions over a fixed set of entries.
type MockCacheStore struct {
	entries     map[domain.Date]cache.Entry
	invalidated []domain.Date
	cleared     bool
}

func (m *MockCacheStore) Invalidate(date domain.Date) {
	m.invalidated = append(m.invalidated, date)
	delete(m.entries, date)
}

func (m *MockCacheStore) Clear() {
	m.cleared = true
	m.entries = map[domain.Date]cache.Entry{}
}

func (m *MockCacheStore) Peek(date domain.Date) cache.Entry {
	return m.entries[date]
}

func (m *MockCacheStore) Dates() []domain.Date {
	var dates []domain.Date
	for d := range m.entries {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// MockInsightsLLM returns a canned output and records the last report.
type MockInsightsLLM struct {
	output     *domain.LLMInsightsOutput
	err        error
	lastReport *domain.DailyReport
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, report *domain.DailyReport) (*domain.LLMInsightsOutput, error) {
	m.lastReport = report
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient records traces and scores.
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	return "trace-1", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }

func day(d int) domain.Date {
	return domain.Date{Year: 2024, Month: time.January, Day: d}
}

// nightOf builds a main sleep from 23:00 the evening before date: 10 minutes
// awake, then light, deep and rem, ending with a 15 minute wake.
func nightOf(date domain.Date) *domain.SleepTimeline {
	start := date.AddDays(-1).Time().Add(23 * time.Hour)
	intervals := []domain.StageInterval{
		{Start: start, Level: domain.StageWake, Seconds: 600},
		{Start: start.Add(10 * time.Minute), Level: domain.StageLight, Seconds: 3000},
		{Start: start.Add(60 * time.Minute), Level: domain.StageDeep, Seconds: 3600},
		{Start: start.Add(120 * time.Minute), Level: domain.StageREM, Seconds: 1800},
		{Start: start.Add(150 * time.Minute), Level: domain.StageWake, Seconds: 900},
	}
	return &domain.SleepTimeline{
		Records: []domain.SleepRecord{{
			LogID:       1,
			DateOfSleep: date,
			StartTime:   start,
			EndTime:     start.Add(165 * time.Minute),
			IsMainSleep: true,
			Efficiency:  85,
			Intervals:   intervals,
		}},
		Summary: domain.DaySummary{
			Stages:             domain.StageTotals{Deep: 60, Light: 50, REM: 30, Wake: 25},
			TotalMinutesAsleep: 140,
			TotalSleepRecords:  1,
			TotalTimeInBed:     165,
		},
	}
}
