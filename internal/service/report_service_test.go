package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/pkg/pagination"
)

func TestReportService_Night(t *testing.T) {
	source := NewMockDataSource()
	source.sleep[day(16)] = nightOf(day(16))
	svc := NewReportService(source)

	report, err := svc.Night(context.Background(), day(16))
	if err != nil {
		t.Fatalf("Night() error = %v", err)
	}
	if !report.HasMainSleep || report.TotalMinutesAsleep != 140 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.FellAsleepAt == nil || report.FellAsleepAt.String() != "23:10:00" {
		t.Errorf("FellAsleepAt = %v", report.FellAsleepAt)
	}
	if report.WokeUpAt == nil || report.WokeUpAt.String() != "01:45:00" {
		t.Errorf("WokeUpAt = %v", report.WokeUpAt)
	}
}

func TestReportService_PropagatesSourceErrors(t *testing.T) {
	upstream := errors.New("upstream down")
	source := NewMockDataSource()
	source.err = upstream
	svc := NewReportService(source)
	ctx := context.Background()

	if _, err := svc.Night(ctx, day(16)); !errors.Is(err, upstream) {
		t.Errorf("Night() error = %v", err)
	}
	if _, err := svc.Activity(ctx, day(16)); !errors.Is(err, upstream) {
		t.Errorf("Activity() error = %v", err)
	}
	if _, err := svc.Daily(ctx, day(16)); !errors.Is(err, upstream) {
		t.Errorf("Daily() error = %v", err)
	}
	if _, err := svc.Sleep(ctx, day(16)); !errors.Is(err, upstream) {
		t.Errorf("Sleep() error = %v", err)
	}
}

func TestReportService_Daily(t *testing.T) {
	source := NewMockDataSource()
	source.sleep[day(16)] = nightOf(day(16))
	source.activity[day(16)] = &domain.ActivitySummary{
		Summary: domain.ActivityTotals{Steps: 4000, FairlyActiveMinutes: 5, VeryActiveMinutes: 10},
		Goals:   domain.ActivityGoals{Steps: 8000, ActiveMinutes: 30},
	}
	svc := NewReportService(source)

	report, err := svc.Daily(context.Background(), day(16))
	if err != nil {
		t.Fatalf("Daily() error = %v", err)
	}
	if report.Date != day(16) || report.Sleep.Date != day(16) || report.Activity.Date != day(16) {
		t.Errorf("dates not propagated: %+v", report)
	}
	if report.Activity.ActiveMinutes != 15 {
		t.Errorf("ActiveMinutes = %d", report.Activity.ActiveMinutes)
	}
	if report.Activity.StepGoalProgress == nil || *report.Activity.StepGoalProgress != 50 {
		t.Errorf("StepGoalProgress = %v", report.Activity.StepGoalProgress)
	}
}

func TestReportService_AwakeBetween(t *testing.T) {
	source := NewMockDataSource()
	source.sleep[day(16)] = nightOf(day(16))
	svc := NewReportService(source)
	ctx := context.Background()
	base := day(15).Time()

	tests := []struct {
		name       string
		from, to   time.Time
		wantAwake  int64
		wantAsleep int64
		wantErr    error
	}{
		{
			name:       "whole night plus margins",
			from:       base.Add(22 * time.Hour),
			to:         base.Add(27 * time.Hour),
			wantAwake:  5*3600 - 140*60,
			wantAsleep: 140 * 60,
		},
		{
			name:       "inside the settle-in wake",
			from:       base.Add(23 * time.Hour),
			to:         base.Add(23*time.Hour + 10*time.Minute),
			wantAwake:  600,
			wantAsleep: 0,
		},
		{
			name:       "zero width",
			from:       base.Add(24 * time.Hour),
			to:         base.Add(24 * time.Hour),
			wantAwake:  0,
			wantAsleep: 0,
		},
		{
			name:    "inverted",
			from:    base.Add(25 * time.Hour),
			to:      base.Add(24 * time.Hour),
			wantErr: domain.ErrInvalidWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.AwakeBetween(ctx, day(16), tt.from, tt.to)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AwakeBetween() error = %v", err)
			}
			if report.AwakeSeconds != tt.wantAwake || report.AsleepSeconds != tt.wantAsleep {
				t.Errorf("awake=%d asleep=%d, want %d/%d", report.AwakeSeconds, report.AsleepSeconds, tt.wantAwake, tt.wantAsleep)
			}
			if !report.HasMainSleep {
				t.Error("expected HasMainSleep")
			}
		})
	}
}

func TestReportService_AwakeBetween_InvertedSkipsFetch(t *testing.T) {
	source := NewMockDataSource()
	svc := NewReportService(source)
	from := day(16).Time()

	_, _ = svc.AwakeBetween(context.Background(), day(16), from, from.Add(-time.Second))
	if source.sleepCalls != 0 {
		t.Errorf("expected no fetch for an inverted window, got %d", source.sleepCalls)
	}
}

func TestReportService_List(t *testing.T) {
	source := NewMockDataSource()
	svc := NewReportService(source)
	ctx := context.Background()
	filter := domain.ReportFilter{From: day(1), To: day(10), Limit: 4}

	var dates []domain.Date
	pages := 0
	for {
		resp, err := svc.List(ctx, filter)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		pages++
		for _, r := range resp.Data {
			dates = append(dates, r.Date)
		}
		if !resp.Pagination.HasMore {
			if resp.Pagination.NextCursor != "" {
				t.Error("last page must not carry a cursor")
			}
			break
		}
		filter.Cursor = resp.Pagination.NextCursor
	}

	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	if len(dates) != 10 {
		t.Fatalf("got %d dates, want 10", len(dates))
	}
	for i, d := range dates {
		if d != day(i+1) {
			t.Errorf("dates[%d] = %s, want %s", i, d, day(i+1))
		}
	}
}

func TestReportService_ListSingleDayAndDefaults(t *testing.T) {
	svc := NewReportService(NewMockDataSource())

	resp, err := svc.List(context.Background(), domain.ReportFilter{From: day(5), To: day(5)})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 1 || resp.Pagination.HasMore {
		t.Errorf("unexpected page: %d items, has_more=%v", len(resp.Data), resp.Pagination.HasMore)
	}

	resp, err = svc.List(context.Background(), domain.ReportFilter{From: day(1), To: day(31)})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != pagination.DefaultLimit {
		t.Errorf("default page size = %d, want %d", len(resp.Data), pagination.DefaultLimit)
	}
}

func TestReportService_ListInvalidInput(t *testing.T) {
	svc := NewReportService(NewMockDataSource())
	outside := (&pagination.Cursor{Date: "2024-02-01"}).Encode()

	tests := []struct {
		name   string
		filter domain.ReportFilter
	}{
		{name: "inverted range", filter: domain.ReportFilter{From: day(10), To: day(1)}},
		{name: "garbage cursor", filter: domain.ReportFilter{From: day(1), To: day(10), Cursor: "%%%"}},
		{name: "cursor outside range", filter: domain.ReportFilter{From: day(1), To: day(10), Cursor: outside}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.List(context.Background(), tt.filter); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
