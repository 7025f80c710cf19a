package main

import (
	"fmt"
	"io"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

// printSummary writes the human readable report. A nil section was not fetched.
func printSummary(w io.Writer, date domain.Date, timeline *domain.SleepTimeline, activity *domain.ActivitySummary) {
	fmt.Fprintln(w, "\n=== Sleep Data ===")
	if timeline == nil {
		fmt.Fprintln(w, "unavailable")
	} else {
		printSleep(w, domain.BuildNightReport(date, timeline))
	}

	fmt.Fprintln(w, "\n=== Activity Summary ===")
	if activity == nil {
		fmt.Fprintln(w, "unavailable")
	} else {
		printActivity(w, domain.BuildActivityReport(date, activity))
	}
}

func printSleep(w io.Writer, r domain.NightReport) {
	fmt.Fprintf(w, "Total time in bed: %d minutes\n", r.TotalTimeInBed)
	fmt.Fprintf(w, "Total time asleep: %d minutes\n", r.TotalMinutesAsleep)
	if r.Efficiency != nil {
		fmt.Fprintf(w, "Sleep efficiency: %d%%\n", *r.Efficiency)
	} else {
		fmt.Fprintln(w, "Sleep efficiency: n/a (no main sleep)")
	}

	fmt.Fprintln(w, "\nSleep Stages:")
	fmt.Fprintf(w, "  Deep sleep: %d minutes\n", r.Stages.Deep)
	fmt.Fprintf(w, "  Light sleep: %d minutes\n", r.Stages.Light)
	fmt.Fprintf(w, "  REM sleep: %d minutes\n", r.Stages.REM)
	fmt.Fprintf(w, "  Awake: %d minutes\n", r.Stages.Wake)

	if r.WokeUpAt != nil {
		fmt.Fprintf(w, "\nWoke up at: %s\n", r.WokeUpAt)
	}
	if r.FellAsleepAt != nil {
		fmt.Fprintf(w, "Fell asleep at: %s\n", r.FellAsleepAt)
	}
}

func printActivity(w io.Writer, r domain.ActivityReport) {
	fmt.Fprintf(w, "Steps: %d\n", r.Steps)
	fmt.Fprintf(w, "Calories burned: %d\n", r.CaloriesOut)
	fmt.Fprintf(w, "Active minutes: %d\n", r.ActiveMinutes)

	if len(r.HeartRateZones) > 0 {
		fmt.Fprintln(w, "\nHeart Rate Zones:")
		for _, zone := range r.HeartRateZones {
			fmt.Fprintf(w, "  %s: %d minutes\n", zone.Name, zone.Minutes)
		}
		fmt.Fprintf(w, "\nResting heart rate: %d\n", r.RestingHeartRate)
	}

	fmt.Fprintln(w, "\nGoal Progress:")
	fmt.Fprintf(w, "  Steps: %d/%d (%s)\n", r.Steps, r.StepGoal, percent(r.StepGoalProgress))
	fmt.Fprintf(w, "  Active minutes: %d/%d (%s)\n", r.ActiveMinutes, r.ActiveMinuteGoal, percent(r.ActiveMinutesGoalProgress))
}

func percent(p *float64) string {
	if p == nil {
		return "no goal"
	}
	return fmt.Sprintf("%.0f%%", *p)
}
