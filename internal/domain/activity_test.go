package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityFixture() *ActivitySummary {
	return &ActivitySummary{
		Summary: ActivityTotals{
			CaloriesOut:         1746,
			Steps:               8450,
			FairlyActiveMinutes: 12,
			VeryActiveMinutes:   30,
			RestingHeartRate:    60,
			Distances: []Distance{
				{Activity: DistanceTracker, Distance: 6.0},
				{Activity: DistanceTotal, Distance: 6.12},
			},
		},
		Goals: ActivityGoals{Steps: 8000, ActiveMinutes: 30},
	}
}

func TestActivitySummary_Derived(t *testing.T) {
	a := activityFixture()

	assert.Equal(t, 8450, a.Steps())
	assert.Equal(t, 42, a.ActiveMinutes())

	d, ok := a.TotalDistance()
	assert.True(t, ok)
	assert.Equal(t, 6.12, d)

	p, ok := a.StepGoalProgress()
	assert.True(t, ok)
	assert.Equal(t, 105.6, p)

	p, ok = a.ActiveMinutesGoalProgress()
	assert.True(t, ok)
	assert.Equal(t, 140.0, p)
}

func TestActivitySummary_NoGoals(t *testing.T) {
	a := activityFixture()
	a.Goals = ActivityGoals{}
	a.Summary.Distances = nil

	_, ok := a.StepGoalProgress()
	assert.False(t, ok, "step goal progress")
	_, ok = a.ActiveMinutesGoalProgress()
	assert.False(t, ok, "active minutes progress")
	_, ok = a.TotalDistance()
	assert.False(t, ok, "total distance")
}

func TestDistanceActivity_UnknownValue(t *testing.T) {
	var distances []Distance
	err := json.Unmarshal([]byte(`[{"activity":"sedentaryActive","distance":0.0067},{"activity":"Treadmill","distance":1.2}]`), &distances)
	require.NoError(t, err)
	require.Len(t, distances, 2)

	assert.Equal(t, DistanceSedentaryActive, distances[0].Activity)
	assert.Equal(t, DistanceOther, distances[1].Activity)
}
