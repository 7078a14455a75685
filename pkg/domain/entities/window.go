package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WindowID identifies a delivery window in the operations system
type WindowID string

// Window is a scheduled delivery slot belonging to a zone. Customization,
// dispatch and delivery are expressed as day-of-week plus time of day.
type Window struct {
	ID     WindowID
	ZoneID ZoneID

	CustomizationStartDay  DayOfWeek
	CustomizationStartTime TimeOfDay
	CustomizationEndDay    DayOfWeek
	CustomizationEndTime   TimeOfDay
	DispatchDay            DayOfWeek
	DispatchTime           TimeOfDay
	StartDay               DayOfWeek
	StartTime              TimeOfDay
	EndDay                 DayOfWeek
	EndTime                TimeOfDay

	FulfillmentCenterID  string
	DeliveryPrice        decimal.Decimal
	SubtotalMin          decimal.NullDecimal
	DeliveryProvider     string
	PackDateOffset       int
	CarrierDaysInTransit *int
	MessageToUser        string

	// DeliveryDate is the calendar date inside the holiday week. Zero for
	// baseline windows.
	DeliveryDate time.Time
}

// Clone returns a copy that shares no pointers with w
func (w Window) Clone() Window {
	clone := w
	if w.CarrierDaysInTransit != nil {
		days := *w.CarrierDaysInTransit
		clone.CarrierDaysInTransit = &days
	}
	return clone
}

// CustomizationWraps reports whether customization opens late in one week
// and closes early in the next (start day after end day).
func (w Window) CustomizationWraps() bool {
	return w.CustomizationStartDay > w.CustomizationEndDay
}

// WindowKind tells how a generated window was derived
type WindowKind int

const (
	SimpleMove WindowKind = iota
	DoubleDeliveryMoved
	DoubleDeliveryUnmoved
)

func (k WindowKind) String() string {
	switch k {
	case SimpleMove:
		return "simple-move"
	case DoubleDeliveryMoved:
		return "double-delivery-moved"
	case DoubleDeliveryUnmoved:
		return "double-delivery-unmoved"
	default:
		return "unknown"
	}
}

// Timeline holds the resolved instants of a window inside the holiday week
type Timeline struct {
	CustomizationOpens  time.Time
	CustomizationCloses time.Time
	Dispatch            time.Time
	DeliveryStart       time.Time
	DeliveryEnd         time.Time
}

// GeneratedWindow is an override window along with the zone name it will
// be uploaded under, how it was derived and when things happen
type GeneratedWindow struct {
	Window   Window
	Kind     WindowKind
	ZoneName string
	Timeline Timeline
}
