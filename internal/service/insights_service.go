package service

import (
	"context"
	"encoding/json"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/langfuse"
	"github.com/blaisecz/fitbit-sleep/internal/llm"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	insightsTraceName = "daily-insights"
	feedbackScoreName = "user_rating"
)

// InsightsService generates LLM commentary on a daily report.
type InsightsService interface {
	// Generate builds the daily report for date and asks the LLM about it.
	Generate(ctx context.Context, date domain.Date) (*domain.InsightsResponse, error)
	// SubmitFeedback records a user rating against a previous insights trace.
	SubmitFeedback(ctx context.Context, req *domain.FeedbackRequest) error
}

type insightsService struct {
	reports   ReportService
	llmClient llm.InsightsLLM
	langfuse  langfuse.Client
	logger    *zap.Logger
	tracer    trace.Tracer
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	reports ReportService,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
	logger *zap.Logger,
) InsightsService {
	logger = logging.OrNop(logger)
	return &insightsService{
		reports:   reports,
		llmClient: llmClient,
		langfuse:  langfuseClient,
		logger:    logger.Named("insights"),
		tracer:    otel.Tracer("fitbit-sleep/insights"),
	}
}

func (s *insightsService) Generate(ctx context.Context, date domain.Date) (*domain.InsightsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("report.date", date.String())),
	)
	defer span.End()

	report, err := s.reports.Daily(ctx, date)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if inputJSON, err := json.Marshal(report); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	output, err := s.llmClient.GenerateInsights(ctx, report)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	response := &domain.InsightsResponse{Report: *report, Insights: *output}

	// The OTEL trace ID links feedback to this generation when tracing is on;
	// otherwise fall back to a Langfuse ingestion trace.
	if sc := span.SpanContext(); sc.IsValid() {
		response.TraceID = sc.TraceID().String()
	} else if s.langfuse != nil && s.langfuse.IsEnabled() {
		traceID, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
			Name:   insightsTraceName,
			Input:  report,
			Output: output,
			Tags:   []string{"fitbit-sleep"},
			Metadata: map[string]any{
				"date": date.String(),
			},
		})
		if err != nil {
			s.logger.Warn("create trace failed", zap.Error(err))
		}
		response.TraceID = traceID
	}

	return response, nil
}

func (s *insightsService) SubmitFeedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		s.logger.Info("feedback received with langfuse disabled",
			zap.String("trace_id", req.TraceID),
			zap.Int("score", req.Score),
		)
		return nil
	}

	// Scoring failures are logged by the client and never fail the request.
	return s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
}
