package domain

import (
	"encoding/json"
	"math"
)

// DistanceActivity names the activity bucket a distance belongs to.
type DistanceActivity string

const (
	DistanceTotal            DistanceActivity = "total"
	DistanceTracker          DistanceActivity = "tracker"
	DistanceLoggedActivities DistanceActivity = "loggedActivities"
	DistanceVeryActive       DistanceActivity = "veryActive"
	DistanceModeratelyActive DistanceActivity = "moderatelyActive"
	DistanceLightlyActive    DistanceActivity = "lightlyActive"
	DistanceSedentaryActive  DistanceActivity = "sedentaryActive"
	DistanceOther            DistanceActivity = "other"
)

func (a *DistanceActivity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch v := DistanceActivity(s); v {
	case DistanceTotal, DistanceTracker, DistanceLoggedActivities, DistanceVeryActive,
		DistanceModeratelyActive, DistanceLightlyActive, DistanceSedentaryActive:
		*a = v
	default:
		*a = DistanceOther
	}
	return nil
}

// HeartRateZoneName is one of the four Fitbit heart rate zones.
type HeartRateZoneName string

const (
	ZoneOutOfRange HeartRateZoneName = "Out of Range"
	ZoneFatBurn    HeartRateZoneName = "Fat Burn"
	ZoneCardio     HeartRateZoneName = "Cardio"
	ZonePeak       HeartRateZoneName = "Peak"
)

type Distance struct {
	Activity DistanceActivity `json:"activity"`
	Distance float64          `json:"distance"`
}

type HeartRateZone struct {
	Name        HeartRateZoneName `json:"name"`
	Minutes     int               `json:"minutes"`
	CaloriesOut float64           `json:"calories_out"`
	Min         int               `json:"min"`
	Max         int               `json:"max"`
}

// LoggedActivity is a manually or automatically logged exercise.
type LoggedActivity struct {
	LogID       int64  `json:"log_id"`
	Name        string `json:"name"`
	Calories    int    `json:"calories"`
	Steps       int    `json:"steps"`
	DurationMs  int64  `json:"duration_ms"`
	StartTime   string `json:"start_time"`
	Description string `json:"description,omitempty"`
}

// ActivityTotals is the day summary of an activity response.
type ActivityTotals struct {
	CaloriesOut          int             `json:"calories_out"`
	ActivityCalories     int             `json:"activity_calories"`
	CaloriesBMR          int             `json:"calories_bmr"`
	ActiveScore          int             `json:"active_score"`
	Steps                int             `json:"steps"`
	Floors               int             `json:"floors"`
	Elevation            float64         `json:"elevation"`
	SedentaryMinutes     int             `json:"sedentary_minutes"`
	LightlyActiveMinutes int             `json:"lightly_active_minutes"`
	FairlyActiveMinutes  int             `json:"fairly_active_minutes"`
	VeryActiveMinutes    int             `json:"very_active_minutes"`
	MarginalCalories     int             `json:"marginal_calories"`
	RestingHeartRate     int             `json:"resting_heart_rate"`
	Distances            []Distance      `json:"distances"`
	HeartRateZones       []HeartRateZone `json:"heart_rate_zones"`
}

type ActivityGoals struct {
	CaloriesOut   int     `json:"calories_out"`
	Steps         int     `json:"steps"`
	Distance      float64 `json:"distance"`
	Floors        int     `json:"floors"`
	ActiveMinutes int     `json:"active_minutes"`
}

// ActivitySummary is one day's activity response.
type ActivitySummary struct {
	Activities []LoggedActivity `json:"activities"`
	Summary    ActivityTotals   `json:"summary"`
	Goals      ActivityGoals    `json:"goals"`
}

func (a *ActivitySummary) Steps() int {
	return a.Summary.Steps
}

// ActiveMinutes counts fairly and very active minutes.
func (a *ActivitySummary) ActiveMinutes() int {
	return a.Summary.FairlyActiveMinutes + a.Summary.VeryActiveMinutes
}

// TotalDistance returns the "total" distance bucket, if reported.
func (a *ActivitySummary) TotalDistance() (float64, bool) {
	for _, d := range a.Summary.Distances {
		if d.Activity == DistanceTotal {
			return d.Distance, true
		}
	}
	return 0, false
}

// StepGoalProgress returns steps as a rounded percentage of the step goal.
// Unavailable when no goal is set.
func (a *ActivitySummary) StepGoalProgress() (float64, bool) {
	return progress(a.Summary.Steps, a.Goals.Steps)
}

func (a *ActivitySummary) ActiveMinutesGoalProgress() (float64, bool) {
	return progress(a.ActiveMinutes(), a.Goals.ActiveMinutes)
}

func progress(value, goal int) (float64, bool) {
	if goal <= 0 {
		return 0, false
	}
	return math.Round(float64(value)/float64(goal)*1000) / 10, true
}
