package generation

import (
	"github.com/vsinha/winexc/pkg/application/dto"
	"github.com/vsinha/winexc/pkg/domain/entities"
)

// BuildDayMappings lists, per generated window, when its orders are packed,
// delivered and open for customization
func BuildDayMappings(week entities.HolidayWeek, windows []entities.GeneratedWindow) []dto.DayMapping {
	mappings := make([]dto.DayMapping, 0, len(windows))
	for _, generated := range windows {
		w := generated.Window
		mappings = append(mappings, dto.DayMapping{
			ZoneID:              w.ZoneID,
			ZoneName:            generated.ZoneName,
			WindowID:            w.ID,
			Kind:                generated.Kind,
			Holiday:             week.Holiday,
			PackDate:            w.DeliveryDate.AddDate(0, 0, -w.PackDateOffset),
			DeliveryDate:        w.DeliveryDate,
			CustomizationOpens:  generated.Timeline.CustomizationOpens,
			CustomizationCloses: generated.Timeline.CustomizationCloses,
		})
	}
	return mappings
}
