package entities

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// ZoneID identifies a delivery zone in the operations system
type ZoneID string

// MarketCode is the three-letter market abbreviation, e.g. CHI
type MarketCode string

var zoneNamePrefix = regexp.MustCompile(`^[A-Z]{3}: `)

// Zone is a delivery territory served from one fulfillment center
type Zone struct {
	ID                     ZoneID
	FulfillmentCenterID    string
	Name                   string
	Timezone               string
	PickupAddressID        string
	ExpectedServiceMinutes int
	IsLineHaul             bool
	PickupTime             TimeOfDay
	TransitTime            *TimeOfDay
	MarketCode             MarketCode
}

// Validate checks the zone name carries the "<CODE>: " prefix
func (z Zone) Validate() error {
	if z.ID == "" {
		return errors.Wrap(ErrMalformedRecord, "zone id cannot be empty")
	}
	if !zoneNamePrefix.MatchString(z.Name) {
		return errors.Wrapf(ErrMalformedZoneName, "zone %s name %q", z.ID, z.Name)
	}
	return nil
}

// ZoneKey locates a baseline zone by market and delivery day
type ZoneKey struct {
	Market MarketCode
	Day    DayOfWeek
}

func (k ZoneKey) String() string {
	return fmt.Sprintf("%s/%d", k.Market, k.Day)
}
