package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/pkg/pagination"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DataSource is the read side of the response cache.
type DataSource interface {
	GetSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error)
	GetActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error)
}

// ReportService derives reports from cached sleep and activity data.
type ReportService interface {
	// Sleep returns the raw timeline for date.
	Sleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error)
	Night(ctx context.Context, date domain.Date) (*domain.NightReport, error)
	Activity(ctx context.Context, date domain.Date) (*domain.ActivityReport, error)
	Daily(ctx context.Context, date domain.Date) (*domain.DailyReport, error)
	// AwakeBetween measures awake time of date's main sleep inside [from, to).
	AwakeBetween(ctx context.Context, date domain.Date, from, to time.Time) (*domain.AwakeWindowReport, error)
	// List returns daily reports for an inclusive date range, oldest first.
	List(ctx context.Context, filter domain.ReportFilter) (*domain.DailyReportListResponse, error)
}

type reportService struct {
	source DataSource
	tracer trace.Tracer
}

func NewReportService(source DataSource) ReportService {
	return &reportService{
		source: source,
		tracer: otel.Tracer("fitbit-sleep/reports"),
	}
}

func (s *reportService) Sleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	return s.source.GetSleep(ctx, date)
}

func (s *reportService) Night(ctx context.Context, date domain.Date) (*domain.NightReport, error) {
	timeline, err := s.source.GetSleep(ctx, date)
	if err != nil {
		return nil, err
	}
	report := domain.BuildNightReport(date, timeline)
	return &report, nil
}

func (s *reportService) Activity(ctx context.Context, date domain.Date) (*domain.ActivityReport, error) {
	activity, err := s.source.GetActivity(ctx, date)
	if err != nil {
		return nil, err
	}
	report := domain.BuildActivityReport(date, activity)
	return &report, nil
}

func (s *reportService) Daily(ctx context.Context, date domain.Date) (*domain.DailyReport, error) {
	ctx, span := s.tracer.Start(ctx, "ReportService.Daily",
		trace.WithAttributes(attribute.String("report.date", date.String())),
	)
	defer span.End()

	night, err := s.Night(ctx, date)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	activity, err := s.Activity(ctx, date)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	report := &domain.DailyReport{Date: date, Sleep: *night, Activity: *activity}
	if outputJSON, err := json.Marshal(report); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	return report, nil
}

func (s *reportService) AwakeBetween(ctx context.Context, date domain.Date, from, to time.Time) (*domain.AwakeWindowReport, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidWindow
	}

	timeline, err := s.source.GetSleep(ctx, date)
	if err != nil {
		return nil, err
	}

	awake, err := timeline.TimeAwakeBetween(from, to)
	if err != nil {
		return nil, err
	}
	_, hasMain := timeline.MainSleep()

	window := to.Sub(from)
	return &domain.AwakeWindowReport{
		Date:          date,
		From:          from,
		To:            to,
		AwakeSeconds:  int64(awake / time.Second),
		AsleepSeconds: int64((window - awake) / time.Second),
		HasMainSleep:  hasMain,
	}, nil
}

func (s *reportService) List(ctx context.Context, filter domain.ReportFilter) (*domain.DailyReportListResponse, error) {
	if filter.To.Before(filter.From) {
		return nil, fmt.Errorf("%w: to must not be before from", domain.ErrInvalidInput)
	}

	start := filter.From
	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cursor", domain.ErrInvalidInput)
	}
	if cursor != nil {
		start, err = domain.ParseDate(cursor.Date)
		if err != nil {
			return nil, err
		}
		if start.Before(filter.From) || start.After(filter.To) {
			return nil, fmt.Errorf("%w: cursor is outside the requested range", domain.ErrInvalidInput)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)

	ctx, span := s.tracer.Start(ctx, "ReportService.List",
		trace.WithAttributes(
			attribute.String("range.from", filter.From.String()),
			attribute.String("range.to", filter.To.String()),
			attribute.String("page.start", start.String()),
			attribute.Int("page.limit", limit),
		),
	)
	defer span.End()

	response := &domain.DailyReportListResponse{Data: make([]domain.DailyReport, 0, limit)}
	date := start
	for i := 0; i < limit && !date.After(filter.To); i++ {
		report, err := s.Daily(ctx, date)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		response.Data = append(response.Data, *report)
		date = date.AddDays(1)
	}

	if !date.After(filter.To) {
		next := pagination.Cursor{Date: date.String()}
		response.Pagination = domain.PaginationResponse{NextCursor: next.Encode(), HasMore: true}
	}
	span.SetAttributes(attribute.Int("page.size", len(response.Data)))

	return response, nil
}
