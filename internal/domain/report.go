package domain

import "time"

// NightReport is the derived view of one date's sleep.
// @Description Derived sleep metrics for one date. Optional fields are omitted when no main sleep record exists.
type NightReport struct {
	// Calendar date of the sleep
	Date Date `json:"date" swaggertype:"string" example:"2024-01-16"`
	// True if a record is flagged as main sleep
	HasMainSleep bool `json:"has_main_sleep" example:"true"`
	// Total minutes asleep across all records (day summary)
	TotalMinutesAsleep int `json:"total_minutes_asleep" example:"391"`
	// Total minutes in bed across all records (day summary)
	TotalTimeInBed int `json:"total_time_in_bed" example:"447"`
	// Per-stage minutes (day summary)
	Stages StageTotals `json:"stages"`
	// Stored efficiency of the main sleep record (0-100)
	Efficiency *int `json:"efficiency,omitempty" example:"92"`
	// Start of the first asleep interval longer than five minutes
	FellAsleepAt *TimeOfDay `json:"fell_asleep_at,omitempty" swaggertype:"string" example:"22:16:30"`
	// End of the main sleep record
	WokeUpAt *TimeOfDay `json:"woke_up_at,omitempty" swaggertype:"string" example:"07:09:00"`
	// Sum of every interval of the main record, in seconds
	RecordedIntervalSeconds *int64 `json:"recorded_interval_seconds,omitempty" example:"32250"`
}

// BuildNightReport derives a NightReport from a timeline without modifying it.
func BuildNightReport(date Date, t *SleepTimeline) NightReport {
	report := NightReport{
		Date:               date,
		TotalMinutesAsleep: t.Summary.TotalMinutesAsleep,
		TotalTimeInBed:     t.Summary.TotalTimeInBed,
		Stages:             t.StageMinutes(),
	}
	_, report.HasMainSleep = t.MainSleep()

	if efficiency, ok := t.SleepEfficiency(); ok {
		report.Efficiency = &efficiency
	}
	if fellAsleep, ok := t.TimeFellAsleep(); ok {
		report.FellAsleepAt = &fellAsleep
	}
	if wokeUp, ok := t.WakeUpTime(); ok {
		report.WokeUpAt = &wokeUp
	}
	if recorded, ok := t.TotalDurationAwakeDuringSleep(); ok {
		seconds := int64(recorded / time.Second)
		report.RecordedIntervalSeconds = &seconds
	}
	return report
}

// ActivityReport is the derived view of one date's activity.
// @Description Activity totals and goal progress for one date.
type ActivityReport struct {
	Date             Date    `json:"date" swaggertype:"string" example:"2024-01-16"`
	Steps            int     `json:"steps" example:"8450"`
	StepGoal         int     `json:"step_goal" example:"8000"`
	CaloriesOut      int     `json:"calories_out" example:"2310"`
	ActiveMinutes    int     `json:"active_minutes" example:"42"`
	ActiveMinuteGoal int     `json:"active_minute_goal" example:"30"`
	RestingHeartRate int     `json:"resting_heart_rate,omitempty" example:"60"`
	TotalDistance    float64 `json:"total_distance" example:"6.12"`
	// Percentage of the step goal reached; omitted when no goal is set
	StepGoalProgress *float64 `json:"step_goal_progress,omitempty" example:"105.6"`
	// Percentage of the active minutes goal reached; omitted when no goal is set
	ActiveMinutesGoalProgress *float64        `json:"active_minutes_goal_progress,omitempty" example:"140"`
	HeartRateZones            []HeartRateZone `json:"heart_rate_zones,omitempty"`
}

func BuildActivityReport(date Date, a *ActivitySummary) ActivityReport {
	report := ActivityReport{
		Date:             date,
		Steps:            a.Steps(),
		StepGoal:         a.Goals.Steps,
		CaloriesOut:      a.Summary.CaloriesOut,
		ActiveMinutes:    a.ActiveMinutes(),
		ActiveMinuteGoal: a.Goals.ActiveMinutes,
		RestingHeartRate: a.Summary.RestingHeartRate,
		HeartRateZones:   a.Summary.HeartRateZones,
	}
	report.TotalDistance, _ = a.TotalDistance()
	if p, ok := a.StepGoalProgress(); ok {
		report.StepGoalProgress = &p
	}
	if p, ok := a.ActiveMinutesGoalProgress(); ok {
		report.ActiveMinutesGoalProgress = &p
	}
	return report
}

// DailyReport combines sleep and activity for one date.
// @Description Sleep and activity report for one date.
type DailyReport struct {
	Date     Date           `json:"date" swaggertype:"string" example:"2024-01-16"`
	Sleep    NightReport    `json:"sleep"`
	Activity ActivityReport `json:"activity"`
}

// AwakeWindowReport answers how long the user was awake inside a window.
// @Description Awake and asleep time inside a half-open window.
type AwakeWindowReport struct {
	Date         Date      `json:"date" swaggertype:"string" example:"2024-01-16"`
	From         time.Time `json:"from" example:"2024-01-16T00:00:00Z"`
	To           time.Time `json:"to" example:"2024-01-16T06:00:00Z"`
	AwakeSeconds int64     `json:"awake_seconds" example:"1260"`
	// Window length minus awake time
	AsleepSeconds int64 `json:"asleep_seconds" example:"20340"`
	HasMainSleep  bool  `json:"has_main_sleep" example:"true"`
}

// ReportFilter selects a date range for listing daily reports.
type ReportFilter struct {
	From   Date
	To     Date
	Limit  int
	Cursor string
}

// DailyReportListResponse is a page of daily reports.
// @Description Paginated list of daily reports in ascending date order.
type DailyReportListResponse struct {
	Data       []DailyReport      `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJkYXRlIjoiMjAyNC0wMS0yMyJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated commentary on one day.
type LLMInsightsOutput struct {
	// Summary of the night and day (2-3 sentences)
	Summary string `json:"summary" example:"You fell asleep quickly and slept a little over six and a half hours."`
	// Observations about the data (2-5 items)
	Observations []string `json:"observations"`
	// Actionable, non-medical guidance (2-4 items)
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Daily report with LLM commentary.
type InsightsResponse struct {
	Report   DailyReport       `json:"report"`
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for submitting feedback on insights.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"The insights were helpful!"`
}

// CachedDate reports which kinds are cached for one date.
type CachedDate struct {
	Date     Date `json:"date" swaggertype:"string" example:"2024-01-16"`
	Sleep    bool `json:"sleep" example:"true"`
	Activity bool `json:"activity" example:"false"`
}

// CacheStatusResponse lists the cached dates in ascending order.
// @Description Dates currently held by the response cache.
type CacheStatusResponse struct {
	Dates []CachedDate `json:"dates"`
}
