package dto

import (
	"time"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/services"
)

// GenerationResult contains the complete output of one holiday run
type GenerationResult struct {
	Week           entities.HolidayWeek
	Message        string
	Pairs          []entities.DoubleDeliveryPair
	MergedZones    []entities.MergedZone
	LineHaulZones  []entities.Zone
	LocalZones     []entities.Zone
	Windows        []entities.GeneratedWindow
	DayMappings    []DayMapping
	Plan           *services.PlanReport
	Validation     *services.ValidationResult
	GenerationTime time.Duration
}

// CountWindows returns how many generated windows are of the given kind
func (r *GenerationResult) CountWindows(kind entities.WindowKind) int {
	count := 0
	for _, w := range r.Windows {
		if w.Kind == kind {
			count++
		}
	}
	return count
}

// UploadWindows returns the bare windows in output order
func (r *GenerationResult) UploadWindows() []entities.Window {
	windows := make([]entities.Window, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, w.Window)
	}
	return windows
}

// DayMapping is one row of the zone-to-day mapping report
type DayMapping struct {
	ZoneID              entities.ZoneID
	ZoneName            string
	WindowID            entities.WindowID
	Kind                entities.WindowKind
	Holiday             string
	PackDate            time.Time
	DeliveryDate        time.Time
	CustomizationOpens  time.Time
	CustomizationCloses time.Time
}
