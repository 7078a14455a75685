package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// ChristmasWeek is the holiday week anchored on Sunday 12/24/2023
func ChristmasWeek() entities.HolidayWeek {
	week, err := entities.NewHolidayWeek("Christmas", time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	return week
}

// ChristmasDay is closed for deliveries
func ChristmasDay() time.Time {
	return time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
}

// Clock builds a time of day, panicking on bad input
func Clock(hour, minute int) entities.TimeOfDay {
	tod, err := entities.NewTimeOfDay(hour, minute, 0)
	if err != nil {
		panic(err)
	}
	return tod
}

// Schedule describes the day/time fields of a baseline window
type Schedule struct {
	CustomizationStartDay entities.DayOfWeek
	CustomizationEndDay   entities.DayOfWeek
	CustomizationEndTime  entities.TimeOfDay
	DispatchDay           entities.DayOfWeek
	DispatchTime          entities.TimeOfDay
	DeliveryDay           entities.DayOfWeek
	StartTime             entities.TimeOfDay
	EndTime               entities.TimeOfDay
}

// NewRecord builds a local baseline record for a market
func NewRecord(zoneID, windowID, name string, market entities.MarketCode, s Schedule) *entities.CurrentDataRecord {
	return &entities.CurrentDataRecord{
		Zone: entities.Zone{
			ID:                     entities.ZoneID(zoneID),
			FulfillmentCenterID:    "fc-" + string(market),
			Name:                   name,
			Timezone:               "America/Chicago",
			PickupAddressID:        "pa-" + zoneID,
			ExpectedServiceMinutes: 12,
			PickupTime:             Clock(14, 0),
			MarketCode:             market,
		},
		Window: entities.Window{
			ID:                     entities.WindowID(windowID),
			ZoneID:                 entities.ZoneID(zoneID),
			CustomizationStartDay:  s.CustomizationStartDay,
			CustomizationStartTime: Clock(8, 0),
			CustomizationEndDay:    s.CustomizationEndDay,
			CustomizationEndTime:   s.CustomizationEndTime,
			DispatchDay:            s.DispatchDay,
			DispatchTime:           s.DispatchTime,
			StartDay:               s.DeliveryDay,
			StartTime:              s.StartTime,
			EndDay:                 s.DeliveryDay,
			EndTime:                s.EndTime,
			FulfillmentCenterID:    "fc-" + string(market),
			DeliveryPrice:          decimal.RequireFromString("5.99"),
			SubtotalMin:            decimal.NewNullDecimal(decimal.NewFromInt(30)),
			DeliveryProvider:       "Internal",
			PackDateOffset:         1,
		},
	}
}

// BaselineRecords is a Chicago and Milwaukee baseline:
//
//	CHI: MONDAY PM   custo Thu..Sat, dispatch Sat 18:00
//	CHI: TUESDAY PM  line haul, custo Fri..Sun, dispatch Sun 16:00
//	CHI: WEDNESDAY AM
//	CHI: EMP PICKUP  employee zone, no day token
//	MKE: MONDAY, MKE: TUESDAY
func BaselineRecords() []*entities.CurrentDataRecord {
	chiMonday := NewRecord("z-chi-mon", "w-chi-mon", "CHI: MONDAY PM", "CHI", Schedule{
		CustomizationStartDay: entities.Thursday,
		CustomizationEndDay:   entities.Saturday,
		CustomizationEndTime:  Clock(12, 0),
		DispatchDay:           entities.Saturday,
		DispatchTime:          Clock(18, 0),
		DeliveryDay:           entities.Monday,
		StartTime:             Clock(14, 0),
		EndTime:               Clock(20, 0),
	})

	chiTuesday := NewRecord("z-chi-tue", "w-chi-tue", "CHI: TUESDAY PM", "CHI", Schedule{
		CustomizationStartDay: entities.Friday,
		CustomizationEndDay:   entities.Sunday,
		CustomizationEndTime:  Clock(12, 0),
		DispatchDay:           entities.Sunday,
		DispatchTime:          Clock(16, 0),
		DeliveryDay:           entities.Tuesday,
		StartTime:             Clock(14, 0),
		EndTime:               Clock(20, 0),
	})
	transit := Clock(1, 30)
	chiTuesday.Zone.IsLineHaul = true
	chiTuesday.Zone.TransitTime = &transit
	chiTuesday.Zone.FulfillmentCenterID = "fc-CHI-2"
	chiTuesday.Zone.PickupTime = Clock(13, 0)
	chiTuesday.Zone.ExpectedServiceMinutes = 15
	chiTuesday.Window.DeliveryPrice = decimal.RequireFromString("7.5")
	chiTuesday.Window.SubtotalMin = decimal.NullDecimal{}

	chiWednesday := NewRecord("z-chi-wed", "w-chi-wed", "CHI: WEDNESDAY AM", "CHI", Schedule{
		CustomizationStartDay: entities.Saturday,
		CustomizationEndDay:   entities.Monday,
		CustomizationEndTime:  Clock(12, 0),
		DispatchDay:           entities.Monday,
		DispatchTime:          Clock(16, 0),
		DeliveryDay:           entities.Wednesday,
		StartTime:             Clock(8, 0),
		EndTime:               Clock(12, 0),
	})

	chiEmployee := NewRecord("z-chi-emp", "w-chi-emp", "CHI: EMP PICKUP", "CHI", Schedule{
		CustomizationStartDay: entities.Thursday,
		CustomizationEndDay:   entities.Saturday,
		CustomizationEndTime:  Clock(12, 0),
		DispatchDay:           entities.Saturday,
		DispatchTime:          Clock(15, 0),
		DeliveryDay:           entities.Monday,
		StartTime:             Clock(9, 0),
		EndTime:               Clock(11, 0),
	})
	carrierDays := 2
	chiEmployee.Window.CarrierDaysInTransit = &carrierDays

	mkeMonday := NewRecord("z-mke-mon", "w-mke-mon", "MKE: MONDAY", "MKE", Schedule{
		CustomizationStartDay: entities.Thursday,
		CustomizationEndDay:   entities.Saturday,
		CustomizationEndTime:  Clock(12, 0),
		DispatchDay:           entities.Saturday,
		DispatchTime:          Clock(17, 0),
		DeliveryDay:           entities.Monday,
		StartTime:             Clock(10, 0),
		EndTime:               Clock(14, 0),
	})

	mkeTuesday := NewRecord("z-mke-tue", "w-mke-tue", "MKE: TUESDAY", "MKE", Schedule{
		CustomizationStartDay: entities.Friday,
		CustomizationEndDay:   entities.Sunday,
		CustomizationEndTime:  Clock(12, 0),
		DispatchDay:           entities.Sunday,
		DispatchTime:          Clock(17, 0),
		DeliveryDay:           entities.Tuesday,
		StartTime:             Clock(10, 0),
		EndTime:               Clock(14, 0),
	})

	return []*entities.CurrentDataRecord{chiMonday, chiTuesday, chiWednesday, chiEmployee, mkeMonday, mkeTuesday}
}

// PlanEntries moves every Monday delivery off Christmas Day:
//
//	CHI Monday -> Tuesday        double delivery with CHI: TUESDAY PM
//	MKE Monday -> Tuesday        simple, MKE Tuesday moves away
//	MKE Tuesday -> Wednesday     simple, no Wednesday zone in MKE
//	CHI employee Monday -> Tuesday
func PlanEntries() []*entities.ExceptionPlanEntry {
	return []*entities.ExceptionPlanEntry{
		{FCName: "fc-CHI", MarketCode: "CHI", CityName: "Chicago", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
		{OldWindowID: "w-mke-mon", FCName: "fc-MKE", MarketCode: "MKE", CityName: "Milwaukee", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday},
		{OldWindowID: "w-mke-tue", FCName: "fc-MKE", MarketCode: "MKE", CityName: "Milwaukee", OriginalDay: entities.Tuesday, ExceptionDay: entities.Wednesday},
		{OldWindowID: "w-chi-emp", FCName: "fc-CHI", MarketCode: "CHI", CityName: "Chicago", OriginalDay: entities.Monday, ExceptionDay: entities.Tuesday, IsEmployeeZone: true},
	}
}
