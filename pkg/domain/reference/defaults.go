package reference

import "github.com/vsinha/winexc/pkg/domain/entities"

var defaultMarkets = map[entities.MarketCode]string{
	"ATM": "College Station",
	"AUS": "Austin",
	"BDN": "Bend",
	"BLI": "Bellingham",
	"BNA": "Nashville",
	"BOI": "Boise",
	"BOS": "Boston",
	"BRX": "Bronx",
	"BTR": "Baton Rouge",
	"BWI": "Severn",
	"CHI": "Chicago",
	"CLE": "Cleveland",
	"CRP": "Corpus Christi",
	"DAY": "Dayton",
	"DEN": "Denver",
	"DFW": "Dallas-Fort Worth",
	"DSM": "Des Moines",
	"DTW": "Detroit",
	"EBY": "Pittsburg CA",
	"EUG": "Eugene",
	"EWR": "Newark",
	"HAR": "Hartford",
	"IAH": "Houston",
	"IND": "Indianapolis",
	"KCI": "Kansas City",
	"LAS": "Las Vegas",
	"LAX": "Los Angeles",
	"LIM": "Long Island",
	"LOU": "Louisville",
	"MCE": "Merced",
	"MKE": "Milwaukee",
	"MOC": "Montgomery County",
	"MSN": "Madison WI",
	"MSP": "Minneapolis-Saint Paul",
	"NBY": "Santa Rosa",
	"NVA": "Northern Virginia",
	"NWI": "Northwest Indiana",
	"OKC": "Oklahoma City",
	"OLM": "Olympia",
	"PDX": "Portland",
	"PHL": "Philadelphia",
	"PHX": "Phoenix",
	"PIT": "Pittsburgh",
	"RDU": "Raleigh",
	"RIC": "Richmond",
	"RNO": "Reno",
	"SAC": "Sacramento",
	"SAN": "San Diego",
	"SAT": "San Antonio",
	"SBA": "Santa Barbara",
	"SBY": "San Jose",
	"SEA": "Seattle",
	"SFO": "San Francisco",
	"SLC": "Salt Lake City",
	"SNA": "Orange County",
	"SPK": "Spokane",
	"STL": "St Louis",
	"SWM": "Southwest Michigan",
	"TPL": "Temple/Waco",
	"TUS": "Tucson",
}

// Ops plans spell a few cities differently from the market table
var defaultCityAliases = map[entities.MarketCode][]string{
	"STL": {"St. Louis"},
}

var defaultDays = []Day{
	{Number: entities.Sunday, Abbreviation: "Sun", Name: "Sunday"},
	{Number: entities.Monday, Abbreviation: "Mon", Name: "Monday"},
	{Number: entities.Tuesday, Abbreviation: "Tues", Name: "Tuesday"},
	{Number: entities.Wednesday, Abbreviation: "Wed", Name: "Wednesday"},
	{Number: entities.Thursday, Abbreviation: "Thurs", Name: "Thursday"},
	{Number: entities.Friday, Abbreviation: "Fri", Name: "Friday"},
	{Number: entities.Saturday, Abbreviation: "Sat", Name: "Saturday"},
}

// Default returns the built-in market and day tables
func Default() *Data {
	data, err := New(defaultMarkets, defaultDays, defaultCityAliases)
	if err != nil {
		panic(err)
	}
	return data
}

// DefaultDays returns a copy of the built-in day table
func DefaultDays() []Day {
	return append([]Day(nil), defaultDays...)
}
