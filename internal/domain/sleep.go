package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// StageLevel is the sleep stage of a single interval.
// @Description Sleep stage: deep, light, rem, wake or unknown.
type StageLevel string

const (
	StageDeep    StageLevel = "deep"
	StageLight   StageLevel = "light"
	StageREM     StageLevel = "rem"
	StageWake    StageLevel = "wake"
	StageUnknown StageLevel = "unknown"
)

// ParseStageLevel maps a payload value onto the closed stage set.
// Values outside the set become StageUnknown instead of failing.
func ParseStageLevel(s string) StageLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deep":
		return StageDeep
	case "light":
		return StageLight
	case "rem":
		return StageREM
	case "wake", "awake":
		return StageWake
	default:
		return StageUnknown
	}
}

func (l *StageLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = ParseStageLevel(s)
	return nil
}

// StageInterval is one contiguous stage segment of a sleep log.
type StageInterval struct {
	Start   time.Time  `json:"start" example:"2024-01-15T22:11:30Z"`
	Level   StageLevel `json:"level" example:"light"`
	Seconds int        `json:"seconds" example:"600"`
}

func (i StageInterval) Duration() time.Duration {
	return time.Duration(i.Seconds) * time.Second
}

// End is the exclusive end of the interval.
func (i StageInterval) End() time.Time {
	return i.Start.Add(i.Duration())
}

// StageSummary holds the per-record count and minutes of one stage.
type StageSummary struct {
	Count               int     `json:"count"`
	Minutes             int     `json:"minutes"`
	ThirtyDayAvgMinutes float64 `json:"thirty_day_avg_minutes"`
}

// LevelsSummary is the stage count summary of a single sleep record.
type LevelsSummary struct {
	Deep  StageSummary `json:"deep"`
	Light StageSummary `json:"light"`
	REM   StageSummary `json:"rem"`
	Wake  StageSummary `json:"wake"`
}

// SleepRecord is one logged sleep session. Records are built once from a
// fetch response and never modified afterwards.
type SleepRecord struct {
	LogID               int64           `json:"log_id"`
	DateOfSleep         Date            `json:"date_of_sleep"`
	StartTime           time.Time       `json:"start_time"`
	EndTime             time.Time       `json:"end_time"`
	IsMainSleep         bool            `json:"is_main_sleep"`
	Efficiency          int             `json:"efficiency"`
	MinutesAsleep       int             `json:"minutes_asleep"`
	MinutesAwake        int             `json:"minutes_awake"`
	MinutesToFallAsleep int             `json:"minutes_to_fall_asleep"`
	MinutesAfterWakeup  int             `json:"minutes_after_wakeup"`
	TimeInBed           int             `json:"time_in_bed"`
	Type                string          `json:"type"`
	Intervals           []StageInterval `json:"intervals"`
	ShortIntervals      []StageInterval `json:"short_intervals,omitempty"`
	Levels              LevelsSummary   `json:"levels"`
}

// StageTotals holds total minutes per stage across a day.
type StageTotals struct {
	Deep  int `json:"deep" example:"62"`
	Light int `json:"light" example:"220"`
	REM   int `json:"rem" example:"109"`
	Wake  int `json:"wake" example:"56"`
}

// DaySummary is the day-level aggregate across every record of a date.
type DaySummary struct {
	Stages             StageTotals `json:"stages"`
	TotalMinutesAsleep int         `json:"total_minutes_asleep" example:"391"`
	TotalSleepRecords  int         `json:"total_sleep_records" example:"1"`
	TotalTimeInBed     int         `json:"total_time_in_bed" example:"447"`
}

// SleepTimeline is one day's sleep response: every logged record plus the
// day summary. It is read-only once constructed.
type SleepTimeline struct {
	Records []SleepRecord `json:"records"`
	Summary DaySummary    `json:"summary"`
}
