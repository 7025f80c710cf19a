package domain

import "time"

// FellAsleepThreshold is the minimum length an asleep interval must exceed
// to mark the moment of falling asleep. Shorter dips during settling in do
// not count.
const FellAsleepThreshold = 300 * time.Second

// MainSleep returns the first record flagged as main sleep. There is no
// fallback to other records when none is flagged.
func (t *SleepTimeline) MainSleep() (*SleepRecord, bool) {
	for i := range t.Records {
		if t.Records[i].IsMainSleep {
			return &t.Records[i], true
		}
	}
	return nil, false
}

// MainSleepIntervals returns the ordered intervals of the main sleep record,
// or nil when there is none.
func (t *SleepTimeline) MainSleepIntervals() []StageInterval {
	main, ok := t.MainSleep()
	if !ok {
		return nil
	}
	return main.Intervals
}

// StageMinutes returns the raw per-stage minutes of the day summary.
func (t *SleepTimeline) StageMinutes() StageTotals {
	return t.Summary.Stages
}

func (t *SleepTimeline) TotalTimeInBed() time.Duration {
	return time.Duration(t.Summary.TotalTimeInBed) * time.Minute
}

// TotalDurationAsleep is sourced from the day summary, so it is available
// even without a main sleep record.
func (t *SleepTimeline) TotalDurationAsleep() time.Duration {
	return time.Duration(t.Summary.TotalMinutesAsleep) * time.Minute
}

// SleepEfficiency returns the stored efficiency percentage of the main record.
func (t *SleepTimeline) SleepEfficiency() (int, bool) {
	main, ok := t.MainSleep()
	if !ok {
		return 0, false
	}
	return main.Efficiency, true
}

// TimeFellAsleep returns the start of the first non-wake interval longer than
// FellAsleepThreshold.
func (t *SleepTimeline) TimeFellAsleep() (TimeOfDay, bool) {
	main, ok := t.MainSleep()
	if !ok {
		return TimeOfDay{}, false
	}
	for _, interval := range main.Intervals {
		if interval.Level != StageWake && interval.Duration() > FellAsleepThreshold {
			return ClockOf(interval.Start), true
		}
	}
	return TimeOfDay{}, false
}

func (t *SleepTimeline) WakeUpTime() (TimeOfDay, bool) {
	main, ok := t.MainSleep()
	if !ok {
		return TimeOfDay{}, false
	}
	return ClockOf(main.EndTime), true
}

// TotalDurationAwakeDuringSleep sums the length of every interval of the main
// record, asleep stages included. It is the full span covered by recorded
// intervals, not only wake time.
func (t *SleepTimeline) TotalDurationAwakeDuringSleep() (time.Duration, bool) {
	main, ok := t.MainSleep()
	if !ok {
		return 0, false
	}
	var total time.Duration
	for _, interval := range main.Intervals {
		total += interval.Duration()
	}
	return total, true
}

// TimeAwakeBetween returns how much of the half-open window [start, end) is
// not covered by non-wake intervals of the main record. Without a main record
// the whole window counts as awake.
//
// Overlapping intervals are clipped and summed independently, so overlapping
// source data over-counts asleep time.
func (t *SleepTimeline) TimeAwakeBetween(start, end time.Time) (time.Duration, error) {
	if end.Before(start) {
		return 0, ErrInvalidWindow
	}

	window := end.Sub(start)
	main, ok := t.MainSleep()
	if !ok {
		return window, nil
	}

	return window - asleepWithin(main.Intervals, start, end), nil
}

// asleepWithin sums the clipped length of non-wake intervals inside [start, end).
func asleepWithin(intervals []StageInterval, start, end time.Time) time.Duration {
	var asleep time.Duration
	for _, interval := range intervals {
		if interval.Level == StageWake || !interval.Start.Before(end) {
			continue
		}
		clippedStart := laterOf(interval.Start, start)
		clippedEnd := earlierOf(interval.End(), end)
		if clippedStart.Before(clippedEnd) {
			asleep += clippedEnd.Sub(clippedStart)
		}
	}
	return asleep
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
