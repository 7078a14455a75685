package services

import (
	"time"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// DispatchOffsetDays places customization close and dispatch relative to the
// delivery week: a window whose customization wraps (start day after end
// day) dispatches in the delivery week, any other one the week before.
func DispatchOffsetDays(w entities.Window) int {
	if w.CustomizationWraps() {
		return 0
	}
	return -7
}

// DispatchAt is the dispatch instant of a window inside the holiday week
func DispatchAt(w entities.Window, week entities.HolidayWeek) time.Time {
	return week.At(w.DispatchDay, w.DispatchTime, DispatchOffsetDays(w))
}

// CustomizationClosesAt shares the dispatch offset
func CustomizationClosesAt(w entities.Window, week entities.HolidayWeek) time.Time {
	return week.At(w.CustomizationEndDay, w.CustomizationEndTime, DispatchOffsetDays(w))
}

// CustomizationOpensAt always falls in the week before delivery
func CustomizationOpensAt(w entities.Window, week entities.HolidayWeek) time.Time {
	return week.At(w.CustomizationStartDay, w.CustomizationStartTime, -7)
}

// DeliveryStartsAt is the start instant of the delivery slot
func DeliveryStartsAt(w entities.Window, week entities.HolidayWeek) time.Time {
	return week.At(w.StartDay, w.StartTime, 0)
}

// DeliveryEndsAt is the end instant of the delivery slot
func DeliveryEndsAt(w entities.Window, week entities.HolidayWeek) time.Time {
	return week.At(w.EndDay, w.EndTime, 0)
}

// LaterDispatch returns whichever window dispatches later. Ties go to first.
func LaterDispatch(first, second entities.Window, week entities.HolidayWeek) entities.Window {
	if DispatchAt(second, week).After(DispatchAt(first, week)) {
		return second
	}
	return first
}

// TimelineOf resolves every instant of a window by the rules above
func TimelineOf(w entities.Window, week entities.HolidayWeek) entities.Timeline {
	return entities.Timeline{
		CustomizationOpens:  CustomizationOpensAt(w, week),
		CustomizationCloses: CustomizationClosesAt(w, week),
		Dispatch:            DispatchAt(w, week),
		DeliveryStart:       DeliveryStartsAt(w, week),
		DeliveryEnd:         DeliveryEndsAt(w, week),
	}
}
