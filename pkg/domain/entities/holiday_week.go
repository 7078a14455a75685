package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SundayDateLayout is the MM/dd/yyyy layout ops uses for the anchor Sunday
const SundayDateLayout = "01/02/2006"

var sundayLayouts = []string{SundayDateLayout, "2006-01-02"}

// HolidayWeek maps days of week onto the calendar dates of one holiday week
type HolidayWeek struct {
	Holiday string
	Sunday  time.Time
}

// NewHolidayWeek anchors a holiday week on the given Sunday
func NewHolidayWeek(holiday string, sunday time.Time) (HolidayWeek, error) {
	if strings.TrimSpace(holiday) == "" {
		return HolidayWeek{}, errors.Wrap(ErrInvalidHolidayWeek, "holiday name cannot be empty")
	}
	anchor := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, time.UTC)
	if anchor.Weekday() != time.Sunday {
		return HolidayWeek{}, errors.Wrapf(ErrInvalidHolidayWeek, "%s is a %s, not a Sunday",
			anchor.Format(SundayDateLayout), anchor.Weekday())
	}
	return HolidayWeek{Holiday: strings.TrimSpace(holiday), Sunday: anchor}, nil
}

// ParseHolidayWeek parses the anchor Sunday in MM/dd/yyyy or ISO form
func ParseHolidayWeek(holiday, sunday string) (HolidayWeek, error) {
	for _, layout := range sundayLayouts {
		parsed, err := time.Parse(layout, strings.TrimSpace(sunday))
		if err == nil {
			return NewHolidayWeek(holiday, parsed)
		}
	}
	return HolidayWeek{}, errors.Wrapf(ErrInvalidHolidayWeek, "cannot parse Sunday date %q", sunday)
}

// DateOf returns the calendar date of the given day in this week
func (h HolidayWeek) DateOf(day DayOfWeek) time.Time {
	return h.Sunday.AddDate(0, 0, int(day))
}

// At returns the instant of day+time shifted by offsetDays
func (h HolidayWeek) At(day DayOfWeek, t TimeOfDay, offsetDays int) time.Time {
	return h.DateOf(day).AddDate(0, 0, offsetDays).Add(t.Duration())
}

// Dates returns all seven dates keyed by day of week
func (h HolidayWeek) Dates() map[DayOfWeek]time.Time {
	dates := make(map[DayOfWeek]time.Time, 7)
	for day := Sunday; day <= Saturday; day++ {
		dates[day] = h.DateOf(day)
	}
	return dates
}

// Message is the messageToUser stamped on every generated window
func (h HolidayWeek) Message() string {
	return fmt.Sprintf("%s-window-exceptions-%d", strings.ToLower(h.Holiday), h.Sunday.Year())
}
