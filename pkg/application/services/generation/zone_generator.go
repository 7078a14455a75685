package generation

import (
	"github.com/pkg/errors"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/services"
)

// IDGenerator issues fresh identifiers for synthesized zones and windows
type IDGenerator interface {
	NewID() string
}

// ZoneGenerator synthesizes one merged zone per double-delivery pair
type ZoneGenerator struct {
	namer *services.ZoneNamer
	ids   IDGenerator
}

// NewZoneGenerator creates a new zone generator
func NewZoneGenerator(namer *services.ZoneNamer, ids IDGenerator) *ZoneGenerator {
	return &ZoneGenerator{namer: namer, ids: ids}
}

// Generate builds merged zones in pair order. Operational attributes come
// from the reference zone; the name comes from the moved zone with the
// reference day spliced in.
func (g *ZoneGenerator) Generate(pairs []entities.DoubleDeliveryPair) ([]entities.MergedZone, error) {
	merged := make([]entities.MergedZone, 0, len(pairs))

	for _, pair := range pairs {
		name, err := g.namer.MergedName(pair.Moved.Zone.Name, pair.Reference.Window.StartDay)
		if err != nil {
			return nil, errors.Wrapf(err, "merging %s into %s", pair.Moved.Zone.ID, pair.Reference.Zone.ID)
		}

		ref := pair.Reference.Zone
		zone := entities.Zone{
			ID:                     entities.ZoneID(g.ids.NewID()),
			FulfillmentCenterID:    ref.FulfillmentCenterID,
			Name:                   name,
			Timezone:               ref.Timezone,
			PickupAddressID:        ref.PickupAddressID,
			ExpectedServiceMinutes: ref.ExpectedServiceMinutes,
			IsLineHaul:             ref.IsLineHaul,
			PickupTime:             ref.PickupTime,
			MarketCode:             ref.MarketCode,
		}
		if ref.TransitTime != nil {
			transit := *ref.TransitTime
			zone.TransitTime = &transit
		}

		merged = append(merged, entities.MergedZone{Zone: zone, Pair: pair})
	}

	return merged, nil
}

// SplitByLineHaul separates merged zones into the two upload files
func SplitByLineHaul(merged []entities.MergedZone) (lineHaul, local []entities.Zone) {
	lineHaul = make([]entities.Zone, 0)
	local = make([]entities.Zone, 0)
	for _, m := range merged {
		if m.Zone.IsLineHaul {
			lineHaul = append(lineHaul, m.Zone)
		} else {
			local = append(local, m.Zone)
		}
	}
	return lineHaul, local
}
