package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format used by the Fitbit API and our URLs.
	DateLayout = "2006-01-02"

	// LocalTimeLayout is the zone-less timestamp format of sleep logs.
	// Parsing also accepts a trailing fractional second (e.g. ".000").
	LocalTimeLayout = "2006-01-02T15:04:05"
)

// Date is a calendar date without a time or zone component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of d in the nominal (UTC) frame.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days. Month and year rollover are normalised.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseLocalTime parses a zone-less timestamp into the nominal frame.
// No timezone normalisation is performed: the wall clock is kept as given.
func ParseLocalTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q must be %s", ErrInvalidInput, s, LocalTimeLayout)
	}
	return t, nil
}

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ClockOf returns the time-of-day component of t.
func ClockOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := time.Parse("15:04:05", string(text))
	if err != nil {
		return fmt.Errorf("%w: time of day %q must be HH:MM:SS", ErrInvalidInput, string(text))
	}
	*t = ClockOf(parsed)
	return nil
}
