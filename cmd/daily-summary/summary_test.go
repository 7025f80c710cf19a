package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

func TestPrintSummary(t *testing.T) {
	date := domain.Date{Year: 2024, Month: time.January, Day: 16}
	timeline := &domain.SleepTimeline{
		Records: []domain.SleepRecord{{
			IsMainSleep: true,
			Efficiency:  91,
			EndTime:     time.Date(2024, 1, 16, 6, 45, 0, 0, time.UTC),
			Intervals: []domain.StageInterval{
				{Start: time.Date(2024, 1, 15, 23, 2, 0, 0, time.UTC), Level: domain.StageLight, Seconds: 900},
			},
		}},
		Summary: domain.DaySummary{
			Stages:             domain.StageTotals{Deep: 70, Light: 230, REM: 95, Wake: 48},
			TotalMinutesAsleep: 395,
			TotalTimeInBed:     443,
		},
	}
	activity := &domain.ActivitySummary{
		Summary: domain.ActivityTotals{
			Steps:               9000,
			CaloriesOut:         2400,
			FairlyActiveMinutes: 20,
			VeryActiveMinutes:   25,
			RestingHeartRate:    58,
			HeartRateZones:      []domain.HeartRateZone{{Name: domain.ZoneFatBurn, Minutes: 33}},
		},
		Goals: domain.ActivityGoals{Steps: 10000},
	}

	var buf bytes.Buffer
	printSummary(&buf, date, timeline, activity)
	out := buf.String()

	for _, want := range []string{
		"Total time asleep: 395 minutes",
		"Sleep efficiency: 91%",
		"Deep sleep: 70 minutes",
		"Woke up at: 06:45:00",
		"Fell asleep at: 23:02:00",
		"Active minutes: 45",
		"Fat Burn: 33 minutes",
		"Resting heart rate: 58",
		"Steps: 9000/10000 (90%)",
		"Active minutes: 45/0 (no goal)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummary_MissingSections(t *testing.T) {
	date := domain.Date{Year: 2024, Month: time.January, Day: 16}
	nap := &domain.SleepTimeline{Records: []domain.SleepRecord{{IsMainSleep: false}}}

	var buf bytes.Buffer
	printSummary(&buf, date, nap, nil)
	out := buf.String()

	if !strings.Contains(out, "Sleep efficiency: n/a (no main sleep)") {
		t.Errorf("expected efficiency to be unavailable:\n%s", out)
	}
	if strings.Contains(out, "Woke up at") {
		t.Errorf("expected no wake time without a main sleep:\n%s", out)
	}
	if !strings.Contains(out, "=== Activity Summary ===\nunavailable") {
		t.Errorf("expected activity to be marked unavailable:\n%s", out)
	}
}
