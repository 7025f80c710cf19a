package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
)

func newInsightsFixture(enabled bool) (*MockInsightsLLM, *MockLangfuseClient, InsightsService) {
	source := NewMockDataSource()
	source.sleep[day(16)] = nightOf(day(16))

	llmClient := &MockInsightsLLM{output: &domain.LLMInsightsOutput{
		Summary:      "Short night.",
		Observations: []string{"Two and a half hours asleep."},
		Guidance:     []string{"Go to bed earlier."},
	}}
	lf := &MockLangfuseClient{enabled: enabled}
	return llmClient, lf, NewInsightsService(NewReportService(source), llmClient, lf, nil)
}

func TestInsightsService_Generate(t *testing.T) {
	llmClient, lf, svc := newInsightsFixture(true)

	resp, err := svc.Generate(context.Background(), day(16))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.Insights.Summary != "Short night." {
		t.Errorf("Summary = %q", resp.Insights.Summary)
	}
	if llmClient.lastReport == nil || llmClient.lastReport.Date != day(16) {
		t.Fatalf("LLM did not receive the daily report: %+v", llmClient.lastReport)
	}
	if resp.Report.Sleep.TotalMinutesAsleep != 140 {
		t.Errorf("report not attached: %+v", resp.Report.Sleep)
	}

	// No tracer provider is installed in tests, so the Langfuse trace supplies the ID.
	if resp.TraceID != "trace-1" {
		t.Errorf("TraceID = %q, want trace-1", resp.TraceID)
	}
	if len(lf.traces) != 1 || lf.traces[0].Name != insightsTraceName {
		t.Errorf("unexpected traces: %+v", lf.traces)
	}
}

func TestInsightsService_Generate_LangfuseDisabled(t *testing.T) {
	_, lf, svc := newInsightsFixture(false)

	resp, err := svc.Generate(context.Background(), day(16))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.TraceID != "" {
		t.Errorf("TraceID = %q, want empty", resp.TraceID)
	}
	if len(lf.traces) != 0 {
		t.Errorf("disabled client must not be traced")
	}
}

func TestInsightsService_Generate_Errors(t *testing.T) {
	llmClient, _, svc := newInsightsFixture(false)
	llmClient.err = llm.ErrOpenAIUnavailable

	if _, err := svc.Generate(context.Background(), day(16)); !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Errorf("error = %v, want ErrOpenAIUnavailable", err)
	}

	upstream := errors.New("fitbit down")
	source := NewMockDataSource()
	source.err = upstream
	failing := NewInsightsService(NewReportService(source), &MockInsightsLLM{}, &MockLangfuseClient{}, nil)
	if _, err := failing.Generate(context.Background(), day(16)); !errors.Is(err, upstream) {
		t.Errorf("error = %v, want upstream error", err)
	}
}

func TestInsightsService_SubmitFeedback(t *testing.T) {
	_, lf, svc := newInsightsFixture(true)

	err := svc.SubmitFeedback(context.Background(), &domain.FeedbackRequest{TraceID: "abc", Score: 4, Comment: "useful"})
	if err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	if len(lf.scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(lf.scores))
	}
	score := lf.scores[0]
	if score.TraceID != "abc" || score.Value != 4 || score.Name != feedbackScoreName || score.Comment != "useful" {
		t.Errorf("unexpected score: %+v", score)
	}

	_, disabled, disabledSvc := newInsightsFixture(false)
	if err := disabledSvc.SubmitFeedback(context.Background(), &domain.FeedbackRequest{TraceID: "abc", Score: 2}); err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	if len(disabled.scores) != 0 {
		t.Error("disabled client must not be scored")
	}
}
