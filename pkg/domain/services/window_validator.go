package services

import (
	"fmt"
	"time"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// MaxDispatchLag is how long after customization closes a dispatch may
// happen before it is flagged
const MaxDispatchLag = 6 * time.Hour

// WindowValidator checks generated windows against the holiday week
type WindowValidator struct {
	week        entities.HolidayWeek
	closedDates map[string]bool
}

// ValidationResult contains the results of window validation
type ValidationResult struct {
	Checked  int
	Errors   []string
	Warnings []string
}

// IsValid reports whether no errors were found
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// NewWindowValidator creates a validator. Deliveries may not land on any of
// closedDates.
func NewWindowValidator(week entities.HolidayWeek, closedDates []time.Time) *WindowValidator {
	closed := make(map[string]bool, len(closedDates))
	for _, date := range closedDates {
		closed[date.Format(time.DateOnly)] = true
	}
	return &WindowValidator{week: week, closedDates: closed}
}

// Validate checks customization close < dispatch < start < end for every
// window and that none delivers on a closed date. Windows without a resolved
// timeline are placed with TimelineOf. Dispatch is checked at its first
// weekly occurrence not before customization close.
func (v *WindowValidator) Validate(windows []entities.GeneratedWindow) *ValidationResult {
	result := &ValidationResult{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	for _, generated := range windows {
		w := generated.Window
		label := fmt.Sprintf("window %s (%s, %s)", w.ID, generated.ZoneName, generated.Kind)
		result.Checked++

		timeline := generated.Timeline
		if timeline.Dispatch.IsZero() {
			timeline = TimelineOf(w, v.week)
		}
		closes := timeline.CustomizationCloses
		dispatch := dispatchAfter(closes, timeline.Dispatch)
		start := timeline.DeliveryStart
		end := timeline.DeliveryEnd

		if !closes.Before(dispatch) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: customization closes %s, not before dispatch %s",
				label, stamp(closes), stamp(dispatch)))
		} else if dispatch.Sub(closes) > MaxDispatchLag {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: dispatch %s is %s after customization closes",
				label, stamp(dispatch), dispatch.Sub(closes)))
		}
		if !dispatch.Before(start) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: dispatch %s, not before delivery start %s",
				label, stamp(dispatch), stamp(start)))
		}
		if !start.Before(end) {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: delivery start %s, not before end %s",
				label, stamp(start), stamp(end)))
		}

		deliveryDate := w.DeliveryDate
		if deliveryDate.IsZero() {
			deliveryDate = v.week.DateOf(w.StartDay)
		}
		if v.closedDates[deliveryDate.Format(time.DateOnly)] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: delivers on closed date %s",
				label, deliveryDate.Format(time.DateOnly)))
		}
	}

	return result
}

// dispatchAfter moves dispatch forward by whole weeks until it is no longer
// before customization close
func dispatchAfter(closes, dispatch time.Time) time.Time {
	if closes.IsZero() {
		return dispatch
	}
	for dispatch.Before(closes) {
		dispatch = dispatch.AddDate(0, 0, 7)
	}
	return dispatch
}

func stamp(t time.Time) string {
	return t.Format("Mon 01/02 15:04")
}
