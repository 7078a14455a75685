// Package reference holds the static lookup tables the generator relies on:
// market codes to city names and day numbers to day names.
package reference

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/vsinha/winexc/pkg/domain/entities"
)

// Day describes one day of the week
type Day struct {
	Number       entities.DayOfWeek
	Abbreviation string
	Name         string
}

// Data is an immutable set of reference tables
type Data struct {
	markets     map[entities.MarketCode]string
	cityAliases map[entities.MarketCode][]string
	days        map[entities.DayOfWeek]Day
	dayByName   map[string]entities.DayOfWeek
}

var marketCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// New builds reference data. Every day 0..6 must be described exactly once.
func New(markets map[entities.MarketCode]string, days []Day, cityAliases map[entities.MarketCode][]string) (*Data, error) {
	d := &Data{
		markets:     make(map[entities.MarketCode]string, len(markets)),
		cityAliases: make(map[entities.MarketCode][]string, len(cityAliases)),
		days:        make(map[entities.DayOfWeek]Day, len(days)),
		dayByName:   make(map[string]entities.DayOfWeek, len(days)*2),
	}

	for code, city := range markets {
		if !marketCodePattern.MatchString(string(code)) {
			return nil, errors.Wrapf(entities.ErrUnknownMarket, "market code %q must be three upper-case letters", code)
		}
		d.markets[code] = city
	}
	for code, aliases := range cityAliases {
		if _, ok := d.markets[code]; !ok {
			return nil, errors.Wrapf(entities.ErrUnknownMarket, "alias for unlisted market %s", code)
		}
		d.cityAliases[code] = append([]string(nil), aliases...)
	}

	for _, day := range days {
		if !day.Number.Valid() {
			return nil, errors.Wrapf(entities.ErrUnknownDay, "day number %d", day.Number)
		}
		if _, exists := d.days[day.Number]; exists {
			return nil, errors.Wrapf(entities.ErrUnknownDay, "day %d listed twice", day.Number)
		}
		if day.Name == "" {
			return nil, errors.Wrapf(entities.ErrUnknownDay, "day %d has no name", day.Number)
		}
		d.days[day.Number] = day
		for _, name := range []string{day.Name, day.Abbreviation} {
			if name == "" {
				continue
			}
			key := strings.ToUpper(name)
			if other, exists := d.dayByName[key]; exists && other != day.Number {
				return nil, errors.Wrapf(entities.ErrUnknownDay, "day name %q used by %d and %d", name, other, day.Number)
			}
			d.dayByName[key] = day.Number
		}
	}
	for day := entities.Sunday; day <= entities.Saturday; day++ {
		if _, ok := d.days[day]; !ok {
			return nil, errors.Wrapf(entities.ErrUnknownDay, "day %d missing from day table", day)
		}
	}

	return d, nil
}

// MarketName returns the city name for a market code
func (d *Data) MarketName(code entities.MarketCode) (string, error) {
	name, ok := d.markets[code]
	if !ok {
		return "", errors.Wrapf(entities.ErrUnknownMarket, "market %s", code)
	}
	return name, nil
}

// HasMarket reports whether the code is a known market
func (d *Data) HasMarket(code entities.MarketCode) bool {
	_, ok := d.markets[code]
	return ok
}

// CityMatches reports whether city is the market's name or one of its aliases
func (d *Data) CityMatches(code entities.MarketCode, city string) bool {
	name, ok := d.markets[code]
	if !ok {
		return false
	}
	if strings.EqualFold(name, strings.TrimSpace(city)) {
		return true
	}
	for _, alias := range d.cityAliases[code] {
		if strings.EqualFold(alias, strings.TrimSpace(city)) {
			return true
		}
	}
	return false
}

// DayName returns the full day name, e.g. Monday
func (d *Data) DayName(day entities.DayOfWeek) (string, error) {
	info, ok := d.days[day]
	if !ok {
		return "", errors.Wrapf(entities.ErrUnknownDay, "day %d", day)
	}
	return info.Name, nil
}

// DayFromName resolves a full or abbreviated day name, case-insensitively
func (d *Data) DayFromName(name string) (entities.DayOfWeek, error) {
	day, ok := d.dayByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(entities.ErrUnknownDay, "day name %q", name)
	}
	return day, nil
}

// Markets returns a copy of the market table
func (d *Data) Markets() map[entities.MarketCode]string {
	markets := make(map[entities.MarketCode]string, len(d.markets))
	for code, name := range d.markets {
		markets[code] = name
	}
	return markets
}

// Days returns the day table ordered Sunday first
func (d *Data) Days() []Day {
	days := make([]Day, 0, len(d.days))
	for _, day := range d.days {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Number < days[j].Number })
	return days
}

// Extend returns a copy of d with markets and aliases added or replaced.
// A non-empty days slice replaces the whole day table.
func (d *Data) Extend(markets map[entities.MarketCode]string, cityAliases map[entities.MarketCode][]string, days []Day) (*Data, error) {
	mergedMarkets := d.Markets()
	for code, name := range markets {
		mergedMarkets[code] = name
	}

	mergedAliases := make(map[entities.MarketCode][]string, len(d.cityAliases)+len(cityAliases))
	for code, aliases := range d.cityAliases {
		mergedAliases[code] = aliases
	}
	for code, aliases := range cityAliases {
		mergedAliases[code] = aliases
	}

	if len(days) == 0 {
		days = d.Days()
	}

	return New(mergedMarkets, days, mergedAliases)
}
