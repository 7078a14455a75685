package services

import (
	"fmt"
	"sort"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// DoubleDeliveryDay lists the markets that receive more than one
// non-employee entry on the same exception day
type DoubleDeliveryDay struct {
	Day     entities.DayOfWeek
	Markets []MarketCollision
}

// MarketCollision is one market landing several original days on one day
type MarketCollision struct {
	Market       entities.MarketCode
	City         string
	OriginalDays []entities.DayOfWeek
}

// PlanReport summarizes an ops plan before generation
type PlanReport struct {
	Entries            int
	EmployeeEntries    int
	Moves              int
	DoubleDeliveryDays []DoubleDeliveryDay
	Warnings           []string
}

// ValidatePlan summarizes double-delivery days and flags city names that
// disagree with the market table
func ValidatePlan(entries []*entities.ExceptionPlanEntry, markets MarketDirectory) *PlanReport {
	report := &PlanReport{Warnings: make([]string, 0)}

	type landing struct {
		day    entities.DayOfWeek
		market entities.MarketCode
	}
	collisions := make(map[landing]*MarketCollision)
	var order []landing

	for _, entry := range entries {
		report.Entries++
		if entry.IsMove() {
			report.Moves++
		}
		if entry.IsEmployeeZone {
			report.EmployeeEntries++
			continue
		}

		if !markets.HasMarket(entry.MarketCode) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("unknown market %s for %s", entry.MarketCode, entry.CityName))
		} else if entry.CityName != "" && !markets.CityMatches(entry.MarketCode, entry.CityName) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("city %q does not match market %s", entry.CityName, entry.MarketCode))
		}

		key := landing{day: entry.ExceptionDay, market: entry.MarketCode}
		collision, ok := collisions[key]
		if !ok {
			collision = &MarketCollision{Market: entry.MarketCode, City: entry.CityName}
			collisions[key] = collision
			order = append(order, key)
		}
		collision.OriginalDays = append(collision.OriginalDays, entry.OriginalDay)
	}

	byDay := make(map[entities.DayOfWeek][]MarketCollision)
	for _, key := range order {
		collision := collisions[key]
		if len(collision.OriginalDays) < 2 {
			continue
		}
		sort.Slice(collision.OriginalDays, func(i, j int) bool {
			return collision.OriginalDays[i] < collision.OriginalDays[j]
		})
		byDay[key.day] = append(byDay[key.day], *collision)
	}

	for day := entities.Sunday; day <= entities.Saturday; day++ {
		if found, ok := byDay[day]; ok {
			report.DoubleDeliveryDays = append(report.DoubleDeliveryDays, DoubleDeliveryDay{Day: day, Markets: found})
		}
	}

	return report
}
