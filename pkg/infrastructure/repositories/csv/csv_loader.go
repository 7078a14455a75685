package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// Input file names expected in the source directory
const (
	CurrentDataFile = "Current Data.csv"
	OpsPlanFile     = "Ops Plan.csv"
)

// DayNames parses day names such as "Monday" or "Mon"
type DayNames interface {
	DayFromName(name string) (entities.DayOfWeek, error)
}

// Loader handles loading the baseline export and the ops plan from CSV files
type Loader struct {
	days DayNames
}

// NewLoader creates a new CSV loader
func NewLoader(days DayNames) *Loader {
	return &Loader{days: days}
}

// column names a header cell. The ops export repeats names such as "Name"
// and "Fulfillment Center Id" for the window and zone halves of a row, so a
// column is the n-th occurrence of its name.
type column struct {
	name       string
	occurrence int
}

func col(name string) column {
	return column{name: name}
}

func (c column) String() string {
	if c.occurrence == 0 {
		return c.name
	}
	return c.name + "#" + strconv.Itoa(c.occurrence)
}

var (
	colWindowID              = column{"Window Id", 1}
	colWindowFC              = column{"Fulfillment Center Id", 1}
	colStartDay              = col("Start Day")
	colStartTime             = col("Start Time")
	colEndDay                = col("End Day")
	colEndTime               = col("End Time")
	colDispatchDay           = col("Dispatch Day")
	colDispatchTime          = col("Dispatch Time")
	colCustomizationStartDay = col("Customization Start Day")
	colCustomizationStart    = col("Customization Start Time")
	colCustomizationEndDay   = col("Customization End Day")
	colCustomizationEnd      = col("Customization End Time")
	colDeliveryPrice         = col("Delivery Price")
	colPackDateOffset        = col("Pack Date Offset")
	colSubtotalMin           = col("Subtotal Min")
	colDeliveryProvider      = column{"Delivery Provider", 1}
	colCarrierDays           = col("Carrier Days in Transit")
	colZoneID                = column{"Zone Id", 1}
	colZoneFC                = column{"Fulfillment Center Id", 2}
	colZoneName              = column{"Name", 1}
	colServiceMinutes        = col("Expected Service Time In Minutes")
	colPickupAddressID       = col("Zone Pickup Address Id")
	colTimezone              = col("Timezone")
	colIsLineHaul            = col("Is Line Haul")
	colPickupTime            = col("Pickup Time")
	colTransitTime           = col("Transit Time")
	colMarketCode            = column{"Market Code", 1}

	currentDataColumns = []column{
		colWindowID, colWindowFC, colStartDay, colStartTime, colEndDay, colEndTime,
		colDispatchDay, colDispatchTime, colCustomizationStartDay, colCustomizationStart,
		colCustomizationEndDay, colCustomizationEnd, colDeliveryPrice, colPackDateOffset,
		colSubtotalMin, colDeliveryProvider, colCarrierDays, colZoneID, colZoneFC, colZoneName,
		colServiceMinutes, colPickupAddressID, colTimezone, colIsLineHaul, colPickupTime,
		colTransitTime, colMarketCode,
	}
)

var (
	colOldWindowID           = col("old_window_id")
	colFCName                = col("FC Name")
	colZoneCode              = col("Zone Code")
	colCityName              = col("City Name")
	colOriginalDeliveryDay   = col("Original Delivery Day")
	colExceptionDeliveryDay  = col("Exception Delivery Day")
	colOriginalDeliveryDate  = col("Original Delivery Date")
	colExceptionDeliveryDate = col("Exception Delivery Date")
	colIsEmployeeZone        = col("Is Employee Zone")

	opsPlanColumns = []column{
		colOldWindowID, colFCName, colZoneCode, colCityName,
		colOriginalDeliveryDate, colExceptionDeliveryDate, colIsEmployeeZone,
	}
)

// LoadCurrentData loads the baseline zones and windows from a CSV file
func (l *Loader) LoadCurrentData(filename string) ([]*entities.CurrentDataRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open current data file %s", filename)
	}
	defer file.Close()

	return l.ReadCurrentData(file)
}

// ReadCurrentData parses a Current-Data export
func (l *Loader) ReadCurrentData(r io.Reader) ([]*entities.CurrentDataRecord, error) {
	header, rows, err := readAll(r, "current data")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(entities.ErrMalformedRecord, "current data CSV must have header and at least one data row")
	}

	index, err := resolveColumns(header, currentDataColumns, nil)
	if err != nil {
		return nil, errors.Wrap(err, "current data CSV")
	}

	records := make([]*entities.CurrentDataRecord, 0, len(rows))
	for i, row := range rows {
		p := &fieldParser{index: index, record: row, line: i + 2}
		record := parseCurrentData(p)
		if p.err != nil {
			return nil, errors.Wrap(p.err, "current data CSV")
		}
		records = append(records, record)
	}

	return records, nil
}

func parseCurrentData(p *fieldParser) *entities.CurrentDataRecord {
	zone := entities.Zone{
		ID:                     entities.ZoneID(p.text(colZoneID)),
		FulfillmentCenterID:    p.text(colZoneFC),
		Name:                   p.text(colZoneName),
		Timezone:               p.text(colTimezone),
		PickupAddressID:        p.text(colPickupAddressID),
		ExpectedServiceMinutes: p.integer(colServiceMinutes),
		IsLineHaul:             p.flag(colIsLineHaul),
		PickupTime:             p.clock(colPickupTime),
		TransitTime:            p.optionalClock(colTransitTime),
		MarketCode:             entities.MarketCode(p.text(colMarketCode)),
	}

	window := entities.Window{
		ID:                     entities.WindowID(p.text(colWindowID)),
		ZoneID:                 zone.ID,
		CustomizationStartDay:  p.day(colCustomizationStartDay),
		CustomizationStartTime: p.clock(colCustomizationStart),
		CustomizationEndDay:    p.day(colCustomizationEndDay),
		CustomizationEndTime:   p.clock(colCustomizationEnd),
		DispatchDay:            p.day(colDispatchDay),
		DispatchTime:           p.clock(colDispatchTime),
		StartDay:               p.day(colStartDay),
		StartTime:              p.clock(colStartTime),
		EndDay:                 p.day(colEndDay),
		EndTime:                p.clock(colEndTime),
		FulfillmentCenterID:    p.text(colWindowFC),
		DeliveryPrice:          p.money(colDeliveryPrice),
		SubtotalMin:            p.optionalMoney(colSubtotalMin),
		DeliveryProvider:       p.text(colDeliveryProvider),
		PackDateOffset:         p.integer(colPackDateOffset),
		CarrierDaysInTransit:   p.optionalInteger(colCarrierDays),
	}

	return &entities.CurrentDataRecord{Zone: zone, Window: window}
}

// LoadExceptionPlan loads the ops plan from a CSV file
func (l *Loader) LoadExceptionPlan(filename string) ([]*entities.ExceptionPlanEntry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open ops plan file %s", filename)
	}
	defer file.Close()

	return l.ReadExceptionPlan(file)
}

// ReadExceptionPlan parses an ops plan. The numeric "Date" columns hold the
// day of week; the day-name columns are optional but must agree with them.
func (l *Loader) ReadExceptionPlan(r io.Reader) ([]*entities.ExceptionPlanEntry, error) {
	header, rows, err := readAll(r, "ops plan")
	if err != nil {
		return nil, err
	}

	optional := []column{colOriginalDeliveryDay, colExceptionDeliveryDay}
	index, err := resolveColumns(header, opsPlanColumns, optional)
	if err != nil {
		return nil, errors.Wrap(err, "ops plan CSV")
	}

	entries := make([]*entities.ExceptionPlanEntry, 0, len(rows))
	for i, row := range rows {
		p := &fieldParser{index: index, record: row, line: i + 2}
		entry := &entities.ExceptionPlanEntry{
			OldWindowID:    entities.WindowID(p.text(colOldWindowID)),
			FCName:         p.text(colFCName),
			MarketCode:     entities.MarketCode(strings.ToUpper(p.text(colZoneCode))),
			CityName:       p.text(colCityName),
			OriginalDay:    p.day(colOriginalDeliveryDate),
			ExceptionDay:   p.day(colExceptionDeliveryDate),
			IsEmployeeZone: p.flag(colIsEmployeeZone),
		}
		l.checkDayName(p, colOriginalDeliveryDay, entry.OriginalDay)
		l.checkDayName(p, colExceptionDeliveryDay, entry.ExceptionDay)
		if p.err != nil {
			return nil, errors.Wrap(p.err, "ops plan CSV")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (l *Loader) checkDayName(p *fieldParser, c column, want entities.DayOfWeek) {
	if p.err != nil {
		return
	}
	name := p.text(c)
	if name == "" {
		return
	}
	day, err := l.days.DayFromName(name)
	if err != nil {
		p.fail(c, err)
		return
	}
	if day != want {
		p.fail(c, errors.Errorf("%s is day %d but the date column says %d", name, day, want))
	}
}

// Helper functions for reading CSV records

func readAll(r io.Reader, what string) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read %s CSV", what)
	}
	if len(records) == 0 {
		return nil, nil, errors.Wrapf(entities.ErrMalformedRecord, "%s CSV has no header", what)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header, records[1:], nil
}

// resolveColumns maps each wanted column to its position. Required columns
// must be present; optional ones are mapped when found.
func resolveColumns(header []string, required, optional []column) (map[column]int, error) {
	positions := make(map[string][]int)
	for i, name := range header {
		key := strings.TrimSpace(name)
		positions[key] = append(positions[key], i)
	}

	index := make(map[column]int, len(required)+len(optional))
	var missing []string
	for _, c := range required {
		found := positions[c.name]
		if c.occurrence >= len(found) {
			missing = append(missing, c.String())
			continue
		}
		index[c] = found[c.occurrence]
	}
	for _, c := range optional {
		if found := positions[c.name]; c.occurrence < len(found) {
			index[c] = found[c.occurrence]
		}
	}

	if len(missing) > 0 {
		return nil, errors.Wrapf(entities.ErrMalformedRecord, "missing columns %s", strings.Join(missing, ", "))
	}
	return index, nil
}

var errEmptyValue = errors.New("empty value")

// fieldParser reads typed values out of one row, keeping the first error.
// Blank cells are errors except in the optional* readers.
type fieldParser struct {
	index  map[column]int
	record []string
	line   int
	err    error
}

func (p *fieldParser) fail(c column, err error) {
	if p.err == nil {
		p.err = errors.Wrapf(entities.ErrMalformedRecord, "row %d column %q: %v", p.line, c.String(), err)
	}
}

func (p *fieldParser) text(c column) string {
	i, ok := p.index[c]
	if !ok {
		return ""
	}
	return strings.TrimSpace(p.record[i])
}

func (p *fieldParser) day(c column) entities.DayOfWeek {
	day, err := entities.ParseDayOfWeek(p.text(c))
	if err != nil {
		p.fail(c, err)
	}
	return day
}

func (p *fieldParser) clock(c column) entities.TimeOfDay {
	value := p.text(c)
	if value == "" {
		p.fail(c, errEmptyValue)
		return entities.TimeOfDay{}
	}
	tod, err := entities.ParseTimeOfDay(value)
	if err != nil {
		p.fail(c, err)
	}
	return tod
}

func (p *fieldParser) optionalClock(c column) *entities.TimeOfDay {
	if p.text(c) == "" {
		return nil
	}
	tod := p.clock(c)
	return &tod
}

func (p *fieldParser) money(c column) decimal.Decimal {
	value := strings.NewReplacer("$", "", ",", "").Replace(p.text(c))
	amount, err := decimal.NewFromString(value)
	if err != nil {
		p.fail(c, err)
	}
	return amount
}

func (p *fieldParser) optionalMoney(c column) decimal.NullDecimal {
	if p.text(c) == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(p.money(c))
}

func (p *fieldParser) integer(c column) int {
	value := p.text(c)
	if value == "" {
		p.fail(c, errEmptyValue)
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.fail(c, err)
	}
	return n
}

func (p *fieldParser) optionalInteger(c column) *int {
	if p.text(c) == "" {
		return nil
	}
	n := p.integer(c)
	return &n
}

func (p *fieldParser) flag(c column) bool {
	switch strings.ToUpper(p.text(c)) {
	case "", "FALSE", "0", "NO", "N":
		return false
	case "TRUE", "1", "YES", "Y":
		return true
	default:
		p.fail(c, errors.Errorf("invalid boolean %q", p.text(c)))
		return false
	}
}
