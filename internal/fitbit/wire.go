package fitbit

import (
	"fmt"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

// Wire shapes of the Fitbit Web API. Only the fields we use are declared.

type sleepResponse struct {
	Sleep   []sleepLog   `json:"sleep"`
	Summary sleepSummary `json:"summary"`
}

type sleepLog struct {
	DateOfSleep         string      `json:"dateOfSleep"`
	Duration            int64       `json:"duration"`
	Efficiency          int         `json:"efficiency"`
	StartTime           string      `json:"startTime"`
	EndTime             string      `json:"endTime"`
	IsMainSleep         bool        `json:"isMainSleep"`
	LogID               int64       `json:"logId"`
	LogType             string      `json:"logType"`
	MinutesAfterWakeup  int         `json:"minutesAfterWakeup"`
	MinutesAsleep       int         `json:"minutesAsleep"`
	MinutesAwake        int         `json:"minutesAwake"`
	MinutesToFallAsleep int         `json:"minutesToFallAsleep"`
	TimeInBed           int         `json:"timeInBed"`
	Type                string      `json:"type"`
	Levels              sleepLevels `json:"levels"`
}

type sleepLevels struct {
	Data      []levelData   `json:"data"`
	ShortData []levelData   `json:"shortData"`
	Summary   levelsSummary `json:"summary"`
}

type levelData struct {
	DateTime string            `json:"dateTime"`
	Level    domain.StageLevel `json:"level"`
	Seconds  int               `json:"seconds"`
}

type levelSummary struct {
	Count               int     `json:"count"`
	Minutes             int     `json:"minutes"`
	ThirtyDayAvgMinutes float64 `json:"thirtyDayAvgMinutes"`
}

type levelsSummary struct {
	Deep  levelSummary `json:"deep"`
	Light levelSummary `json:"light"`
	REM   levelSummary `json:"rem"`
	Wake  levelSummary `json:"wake"`
}

type sleepSummary struct {
	Stages             domain.StageTotals `json:"stages"`
	TotalMinutesAsleep int                `json:"totalMinutesAsleep"`
	TotalSleepRecords  int                `json:"totalSleepRecords"`
	TotalTimeInBed     int                `json:"totalTimeInBed"`
}

func (r *sleepResponse) toDomain() (*domain.SleepTimeline, error) {
	timeline := &domain.SleepTimeline{
		Records: make([]domain.SleepRecord, 0, len(r.Sleep)),
		Summary: domain.DaySummary{
			Stages:             r.Summary.Stages,
			TotalMinutesAsleep: r.Summary.TotalMinutesAsleep,
			TotalSleepRecords:  r.Summary.TotalSleepRecords,
			TotalTimeInBed:     r.Summary.TotalTimeInBed,
		},
	}

	for i, log := range r.Sleep {
		record, err := log.toDomain()
		if err != nil {
			return nil, fmt.Errorf("sleep[%d]: %w", i, err)
		}
		timeline.Records = append(timeline.Records, record)
	}
	return timeline, nil
}

func (l *sleepLog) toDomain() (domain.SleepRecord, error) {
	dateOfSleep, err := domain.ParseDate(l.DateOfSleep)
	if err != nil {
		return domain.SleepRecord{}, err
	}
	start, err := domain.ParseLocalTime(l.StartTime)
	if err != nil {
		return domain.SleepRecord{}, err
	}
	end, err := domain.ParseLocalTime(l.EndTime)
	if err != nil {
		return domain.SleepRecord{}, err
	}
	intervals, err := toIntervals(l.Levels.Data)
	if err != nil {
		return domain.SleepRecord{}, err
	}
	short, err := toIntervals(l.Levels.ShortData)
	if err != nil {
		return domain.SleepRecord{}, err
	}

	return domain.SleepRecord{
		LogID:               l.LogID,
		DateOfSleep:         dateOfSleep,
		StartTime:           start,
		EndTime:             end,
		IsMainSleep:         l.IsMainSleep,
		Efficiency:          l.Efficiency,
		MinutesAsleep:       l.MinutesAsleep,
		MinutesAwake:        l.MinutesAwake,
		MinutesToFallAsleep: l.MinutesToFallAsleep,
		MinutesAfterWakeup:  l.MinutesAfterWakeup,
		TimeInBed:           l.TimeInBed,
		Type:                l.Type,
		Intervals:           intervals,
		ShortIntervals:      short,
		Levels: domain.LevelsSummary{
			Deep:  domain.StageSummary(l.Levels.Summary.Deep),
			Light: domain.StageSummary(l.Levels.Summary.Light),
			REM:   domain.StageSummary(l.Levels.Summary.REM),
			Wake:  domain.StageSummary(l.Levels.Summary.Wake),
		},
	}, nil
}

func toIntervals(data []levelData) ([]domain.StageInterval, error) {
	if len(data) == 0 {
		return nil, nil
	}
	intervals := make([]domain.StageInterval, 0, len(data))
	for _, d := range data {
		start, err := domain.ParseLocalTime(d.DateTime)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, domain.StageInterval{Start: start, Level: d.Level, Seconds: d.Seconds})
	}
	return intervals, nil
}

type activityResponse struct {
	Activities []loggedActivity `json:"activities"`
	Summary    activitySummary  `json:"summary"`
	Goals      activityGoals    `json:"goals"`
}

type loggedActivity struct {
	LogID       int64  `json:"logId"`
	Name        string `json:"name"`
	Calories    int    `json:"calories"`
	Steps       int    `json:"steps"`
	Duration    int64  `json:"duration"`
	StartTime   string `json:"startTime"`
	Description string `json:"description"`
}

type activitySummary struct {
	CaloriesOut          int               `json:"caloriesOut"`
	ActivityCalories     int               `json:"activityCalories"`
	CaloriesBMR          int               `json:"caloriesBMR"`
	ActiveScore          int               `json:"activeScore"`
	Steps                int               `json:"steps"`
	Floors               int               `json:"floors"`
	Elevation            float64           `json:"elevation"`
	SedentaryMinutes     int               `json:"sedentaryMinutes"`
	LightlyActiveMinutes int               `json:"lightlyActiveMinutes"`
	FairlyActiveMinutes  int               `json:"fairlyActiveMinutes"`
	VeryActiveMinutes    int               `json:"veryActiveMinutes"`
	MarginalCalories     int               `json:"marginalCalories"`
	RestingHeartRate     int               `json:"restingHeartRate"`
	Distances            []domain.Distance `json:"distances"`
	HeartRateZones       []heartRateZone   `json:"heartRateZones"`
}

type heartRateZone struct {
	Name        domain.HeartRateZoneName `json:"name"`
	Minutes     int                      `json:"minutes"`
	CaloriesOut float64                  `json:"caloriesOut"`
	Min         int                      `json:"min"`
	Max         int                      `json:"max"`
}

type activityGoals struct {
	CaloriesOut   int     `json:"caloriesOut"`
	Steps         int     `json:"steps"`
	Distance      float64 `json:"distance"`
	Floors        int     `json:"floors"`
	ActiveMinutes int     `json:"activeMinutes"`
}

func (r *activityResponse) toDomain() *domain.ActivitySummary {
	s := r.Summary
	summary := &domain.ActivitySummary{
		Summary: domain.ActivityTotals{
			CaloriesOut:          s.CaloriesOut,
			ActivityCalories:     s.ActivityCalories,
			CaloriesBMR:          s.CaloriesBMR,
			ActiveScore:          s.ActiveScore,
			Steps:                s.Steps,
			Floors:               s.Floors,
			Elevation:            s.Elevation,
			SedentaryMinutes:     s.SedentaryMinutes,
			LightlyActiveMinutes: s.LightlyActiveMinutes,
			FairlyActiveMinutes:  s.FairlyActiveMinutes,
			VeryActiveMinutes:    s.VeryActiveMinutes,
			MarginalCalories:     s.MarginalCalories,
			RestingHeartRate:     s.RestingHeartRate,
			Distances:            s.Distances,
		},
		Goals: domain.ActivityGoals(r.Goals),
	}

	for _, z := range s.HeartRateZones {
		summary.Summary.HeartRateZones = append(summary.Summary.HeartRateZones, domain.HeartRateZone(z))
	}
	for _, a := range r.Activities {
		summary.Activities = append(summary.Activities, domain.LoggedActivity{
			LogID:       a.LogID,
			Name:        a.Name,
			Calories:    a.Calories,
			Steps:       a.Steps,
			DurationMs:  a.Duration,
			StartTime:   a.StartTime,
			Description: a.Description,
		})
	}
	return summary
}
