package entities

import "github.com/pkg/errors"

// ExceptionPlanEntry is one line of the ops plan: a zone whose delivery day
// moves from OriginalDay to ExceptionDay during the holiday week
type ExceptionPlanEntry struct {
	OldWindowID    WindowID
	FCName         string
	MarketCode     MarketCode
	CityName       string
	OriginalDay    DayOfWeek
	ExceptionDay   DayOfWeek
	IsEmployeeZone bool
}

// Validate checks the entry has what the generator needs
func (e ExceptionPlanEntry) Validate() error {
	if e.MarketCode == "" {
		return errors.Wrap(ErrMalformedRecord, "zone code cannot be empty")
	}
	if !e.OriginalDay.Valid() {
		return errors.Wrapf(ErrUnknownDay, "original day %d", e.OriginalDay)
	}
	if !e.ExceptionDay.Valid() {
		return errors.Wrapf(ErrUnknownDay, "exception day %d", e.ExceptionDay)
	}
	if e.IsEmployeeZone && e.OldWindowID == "" {
		return errors.Wrapf(ErrMalformedRecord, "employee zone entry for %s needs an old window id", e.MarketCode)
	}
	return nil
}

// IsMove reports whether delivery actually changes day
func (e ExceptionPlanEntry) IsMove() bool {
	return e.OriginalDay != e.ExceptionDay
}

// OriginalKey locates the zone the entry moves out of
func (e ExceptionPlanEntry) OriginalKey() ZoneKey {
	return ZoneKey{Market: e.MarketCode, Day: e.OriginalDay}
}

// ExceptionKey locates the zone already delivering on the target day
func (e ExceptionPlanEntry) ExceptionKey() ZoneKey {
	return ZoneKey{Market: e.MarketCode, Day: e.ExceptionDay}
}
