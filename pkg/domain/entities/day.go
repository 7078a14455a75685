package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DayOfWeek is a numeric day of the week, 0 = Sunday through 6 = Saturday
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Valid reports whether the day is within 0..6
func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// String renders the day the way the upload format expects it: a bare integer
func (d DayOfWeek) String() string {
	return strconv.Itoa(int(d))
}

// ParseDayOfWeek parses a numeric day of week
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownDay, "%q is not a day number", s)
	}
	day := DayOfWeek(n)
	if !day.Valid() {
		return 0, errors.Wrapf(ErrUnknownDay, "day %d out of range", n)
	}
	return day, nil
}

// TimeOfDay is a wall-clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

var timeOfDayLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

// NewTimeOfDay creates a time of day, rejecting out-of-range components
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("time %d:%d:%d out of range", hour, minute, second)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

// ParseTimeOfDay accepts H:mm, HH:mm:ss and 12-hour variants
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	value := strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

// String returns the canonical HH:mm:ss form
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// HourMinute returns the HH:mm form used by the zone upload
func (t TimeOfDay) HourMinute() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Duration returns the offset from midnight
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second
}
