// Package seed generates synthetic, deterministic Fitbit days for local
// development and tests. The same date always yields the same data.
package seed

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

const (
	minNightHours = 6
	maxNightHours = 8
	napChance     = 0.5
)

// Fetcher is an offline stand-in for the Fitbit client.
type Fetcher struct{}

func NewFetcher() *Fetcher {
	return &Fetcher{}
}

func (f *Fetcher) FetchSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rng := rngFor(date, 0)

	night := mainSleep(date, rng)
	records := []domain.SleepRecord{night}
	if rng.Float32() < napChance {
		records = append(records, nap(date, rng))
	}

	return &domain.SleepTimeline{Records: records, Summary: summarize(records)}, nil
}

func (f *Fetcher) FetchActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rng := rngFor(date, 1)

	steps := 3000 + rng.Intn(9000)
	fairly := rng.Intn(30)
	very := rng.Intn(45)
	restingHR := 52 + rng.Intn(14)
	distance := math.Round(float64(steps)*0.00075*100) / 100

	return &domain.ActivitySummary{
		Summary: domain.ActivityTotals{
			CaloriesOut:          1700 + steps/10 + very*8,
			ActivityCalories:     steps/12 + very*8,
			CaloriesBMR:          1480,
			ActiveScore:          -1,
			Steps:                steps,
			Floors:               rng.Intn(15),
			Elevation:            math.Round(rng.Float64()*4500) / 100,
			SedentaryMinutes:     600 + rng.Intn(200),
			LightlyActiveMinutes: 120 + rng.Intn(120),
			FairlyActiveMinutes:  fairly,
			VeryActiveMinutes:    very,
			MarginalCalories:     steps / 30,
			RestingHeartRate:     restingHR,
			Distances: []domain.Distance{
				{Activity: domain.DistanceTotal, Distance: distance},
				{Activity: domain.DistanceTracker, Distance: distance},
			},
			HeartRateZones: []domain.HeartRateZone{
				{Name: domain.ZoneOutOfRange, Min: 30, Max: 98, Minutes: 1200 + rng.Intn(120)},
				{Name: domain.ZoneFatBurn, Min: 98, Max: 137, Minutes: fairly + rng.Intn(60)},
				{Name: domain.ZoneCardio, Min: 137, Max: 166, Minutes: very / 2},
				{Name: domain.ZonePeak, Min: 166, Max: 220, Minutes: rng.Intn(5)},
			},
		},
		Goals: domain.ActivityGoals{
			CaloriesOut:   2500,
			Steps:         8000,
			Distance:      6,
			Floors:        10,
			ActiveMinutes: 30,
		},
	}, nil
}

func rngFor(date domain.Date, stream int64) *rand.Rand {
	seed := int64(date.Year)*10000 + int64(date.Month)*100 + int64(date.Day)
	return rand.New(rand.NewSource(seed*2 + stream))
}

func logID(date domain.Date, n int) int64 {
	return (int64(date.Year)*10000+int64(date.Month)*100+int64(date.Day))*10 + int64(n)
}

// mainSleep starts the evening before date: a short settle-in wake and light
// dip, then roughly 90 minute stage cycles until the target length is reached.
func mainSleep(date domain.Date, rng *rand.Rand) domain.SleepRecord {
	eve := date.AddDays(-1).Time()
	bedtime := eve.Add(time.Duration(22+rng.Intn(2))*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
	target := time.Duration(minNightHours)*time.Hour + time.Duration(rng.Intn((maxNightHours-minNightHours)*60))*time.Minute

	b := &intervalBuilder{cursor: bedtime}
	b.add(domain.StageWake, 120+rng.Intn(8)*30)
	b.add(domain.StageLight, 60+rng.Intn(6)*30)
	b.add(domain.StageWake, 30+rng.Intn(3)*30)

	for cycle := 0; b.cursor.Sub(bedtime) < target; cycle++ {
		b.add(domain.StageLight, (15+rng.Intn(15))*60)
		deep := 35 - cycle*8
		if deep > 5 {
			b.add(domain.StageDeep, (deep+rng.Intn(10))*60)
		}
		b.add(domain.StageLight, (10+rng.Intn(10))*60)
		b.add(domain.StageREM, (10+cycle*5+rng.Intn(10))*60)
		if rng.Float32() < 0.6 {
			b.add(domain.StageWake, (1+rng.Intn(4))*60)
		}
	}

	record := b.record(date, bedtime, true)
	record.LogID = logID(date, 0)
	record.Type = "stages"
	return record
}

// nap is an afternoon "classic" log on date. Its levels are outside the stage
// set and decode as unknown.
func nap(date domain.Date, rng *rand.Rand) domain.SleepRecord {
	start := date.Time().Add(time.Duration(13+rng.Intn(3))*time.Hour + time.Duration(rng.Intn(60))*time.Minute)

	b := &intervalBuilder{cursor: start}
	b.add(domain.StageWake, 60+rng.Intn(4)*60)
	b.add(domain.ParseStageLevel("asleep"), (20+rng.Intn(40))*60)

	record := b.record(date, start, false)
	record.LogID = logID(date, 1)
	record.Type = "classic"
	return record
}

type intervalBuilder struct {
	cursor    time.Time
	intervals []domain.StageInterval
}

func (b *intervalBuilder) add(level domain.StageLevel, seconds int) {
	b.intervals = append(b.intervals, domain.StageInterval{Start: b.cursor, Level: level, Seconds: seconds})
	b.cursor = b.cursor.Add(time.Duration(seconds) * time.Second)
}

func (b *intervalBuilder) record(date domain.Date, start time.Time, main bool) domain.SleepRecord {
	var levels domain.LevelsSummary
	asleep, awake := 0, 0
	for _, i := range b.intervals {
		minutes := i.Seconds / 60
		switch i.Level {
		case domain.StageDeep:
			levels.Deep.Count++
			levels.Deep.Minutes += minutes
		case domain.StageLight:
			levels.Light.Count++
			levels.Light.Minutes += minutes
		case domain.StageREM:
			levels.REM.Count++
			levels.REM.Minutes += minutes
		case domain.StageWake:
			levels.Wake.Count++
			levels.Wake.Minutes += minutes
		}
		if i.Level == domain.StageWake {
			awake += minutes
		} else {
			asleep += minutes
		}
	}

	inBed := int(b.cursor.Sub(start) / time.Minute)
	efficiency := 0
	if inBed > 0 {
		efficiency = asleep * 100 / inBed
	}

	return domain.SleepRecord{
		DateOfSleep:   date,
		StartTime:     start,
		EndTime:       b.cursor,
		IsMainSleep:   main,
		Efficiency:    efficiency,
		MinutesAsleep: asleep,
		MinutesAwake:  awake,
		TimeInBed:     inBed,
		Intervals:     b.intervals,
		Levels:        levels,
	}
}

func summarize(records []domain.SleepRecord) domain.DaySummary {
	var s domain.DaySummary
	for _, r := range records {
		s.Stages.Deep += r.Levels.Deep.Minutes
		s.Stages.Light += r.Levels.Light.Minutes
		s.Stages.REM += r.Levels.REM.Minutes
		s.Stages.Wake += r.Levels.Wake.Minutes
		s.TotalMinutesAsleep += r.MinutesAsleep
		s.TotalTimeInBed += r.TimeInBed
		s.TotalSleepRecords++
	}
	return s
}
