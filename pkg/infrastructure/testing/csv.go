package testing

import (
	"strconv"
	"strings"
	"time"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// CurrentDataHeader mirrors the ops export, repeated names included
var CurrentDataHeader = []string{
	"Quick Lookup", "Window Id", "Window Id", "Fulfillment Center Id", "Fulfillment Center Id",
	"Start Day", "Start Time", "End Day", "End Time", "Dispatch Day", "Dispatch Time",
	"Customization Start Day", "Customization Start Time", "Customization End Day", "Customization End Time",
	"Delivery Price", "Pack Date Offset", "Subtotal Min", "Delivery Provider", "Delivery Provider",
	"Carrier Days in Transit", "Zone Id", "Zone Id", "Fulfillment Center Id", "Name", "Name",
	"Expected Service Time In Minutes", "Zone Pickup Address Id", "Timezone", "Is Line Haul",
	"Pickup Time", "Transit Time", "Market Code", "Market Code",
}

// CurrentDataCSV renders records the way the ops system exports them
func CurrentDataCSV(records []*entities.CurrentDataRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(CurrentDataHeader, ",") + "\n")
	for _, r := range records {
		w, z := r.Window, r.Zone

		subtotal := ""
		if w.SubtotalMin.Valid {
			subtotal = w.SubtotalMin.Decimal.String()
		}
		carrierDays := ""
		if w.CarrierDaysInTransit != nil {
			carrierDays = strconv.Itoa(*w.CarrierDaysInTransit)
		}
		transit := ""
		if z.TransitTime != nil {
			transit = z.TransitTime.String()
		}
		lineHaul := "FALSE"
		if z.IsLineHaul {
			lineHaul = "TRUE"
		}

		row := []string{
			z.Name, "", string(w.ID), "", w.FulfillmentCenterID,
			w.StartDay.String(), w.StartTime.String(), w.EndDay.String(), w.EndTime.String(),
			w.DispatchDay.String(), w.DispatchTime.String(),
			w.CustomizationStartDay.String(), w.CustomizationStartTime.String(),
			w.CustomizationEndDay.String(), w.CustomizationEndTime.String(),
			"$" + w.DeliveryPrice.String(), strconv.Itoa(w.PackDateOffset), subtotal, "", w.DeliveryProvider,
			carrierDays, "", string(z.ID), z.FulfillmentCenterID, "", z.Name,
			strconv.Itoa(z.ExpectedServiceMinutes), z.PickupAddressID, z.Timezone, lineHaul,
			z.PickupTime.String(), transit, "", string(z.MarketCode),
		}
		b.WriteString(strings.Join(row, ",") + "\n")
	}
	return b.String()
}

// OpsPlanCSV renders plan entries in the ops plan layout
func OpsPlanCSV(entries []*entities.ExceptionPlanEntry) string {
	var b strings.Builder
	b.WriteString("old_window_id,FC Name,Zone Code,City Name,Original Delivery Day,Exception Delivery Day," +
		"Original Delivery Date,Exception Delivery Date,Is Employee Zone\n")
	for _, e := range entries {
		employee := "FALSE"
		if e.IsEmployeeZone {
			employee = "TRUE"
		}
		row := []string{
			string(e.OldWindowID), e.FCName, string(e.MarketCode), e.CityName,
			time.Weekday(e.OriginalDay).String(), time.Weekday(e.ExceptionDay).String(),
			e.OriginalDay.String(), e.ExceptionDay.String(), employee,
		}
		b.WriteString(strings.Join(row, ",") + "\n")
	}
	return b.String()
}
