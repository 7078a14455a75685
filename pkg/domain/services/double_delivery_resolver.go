package services

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/repositories"
)

// MarketDirectory answers questions about known markets
type MarketDirectory interface {
	HasMarket(code entities.MarketCode) bool
	CityMatches(code entities.MarketCode, city string) bool
}

// DoubleDeliveryResolver finds plan entries that move a zone onto a day its
// market already serves
type DoubleDeliveryResolver struct {
	baseline repositories.BaselineRepository
	markets  MarketDirectory
	log      *zap.Logger
}

// NewDoubleDeliveryResolver creates a resolver over the baseline dataset
func NewDoubleDeliveryResolver(
	baseline repositories.BaselineRepository,
	markets MarketDirectory,
	log *zap.Logger,
) *DoubleDeliveryResolver {
	return &DoubleDeliveryResolver{
		baseline: baseline,
		markets:  markets,
		log:      log,
	}
}

// OriginWindowID returns the baseline window an entry moves: the explicit old
// window id when present, otherwise the single zone keyed by market and
// original day.
func (r *DoubleDeliveryResolver) OriginWindowID(entry *entities.ExceptionPlanEntry) (entities.WindowID, error) {
	if entry.OldWindowID != "" {
		return entry.OldWindowID, nil
	}
	if entry.IsEmployeeZone {
		return "", errors.Wrapf(entities.ErrMalformedRecord, "employee zone entry for %s has no old window id", entry.MarketCode)
	}

	record, err := r.exactlyOne(entry.OriginalKey())
	if err != nil {
		return "", err
	}
	return record.Window.ID, nil
}

// Resolve returns the double-delivery pairs of the plan in plan order. Zero
// pairs is a valid result.
func (r *DoubleDeliveryResolver) Resolve(entries []*entities.ExceptionPlanEntry) ([]entities.DoubleDeliveryPair, error) {
	const op = "services.DoubleDeliveryResolver.Resolve"
	log := r.log.With(zap.String("op", op))

	origins := make(map[entities.WindowID]bool, len(entries))
	for _, entry := range entries {
		origin, err := r.OriginWindowID(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "origin of %s day %d", entry.MarketCode, entry.OriginalDay)
		}
		origins[origin] = true
	}

	var pairs []entities.DoubleDeliveryPair
	movedSeen := make(map[entities.WindowID]bool)

	for _, entry := range entries {
		if entry.IsEmployeeZone {
			continue
		}
		if !r.markets.HasMarket(entry.MarketCode) {
			return nil, errors.Wrapf(entities.ErrUnknownMarket, "plan entry for %s", entry.MarketCode)
		}

		refs, err := r.baseline.FindByKey(entry.ExceptionKey())
		if err != nil {
			return nil, err
		}
		if len(refs) > 1 {
			return nil, errors.Wrapf(entities.ErrAmbiguousZone, "%d zones for %s", len(refs), entry.ExceptionKey())
		}
		if len(refs) == 0 {
			continue
		}
		reference := refs[0]
		if origins[reference.Window.ID] {
			// the zone on the target day moves too, so nothing collides
			continue
		}

		moved, err := r.exactlyOne(entry.OriginalKey())
		if err != nil {
			return nil, errors.Wrap(err, "moved zone")
		}
		if entry.OldWindowID != "" && entry.OldWindowID != moved.Window.ID {
			return nil, errors.Wrapf(entities.ErrOriginMismatch, "entry names window %s but %s resolves to %s",
				entry.OldWindowID, entry.OriginalKey(), moved.Window.ID)
		}
		if movedSeen[moved.Window.ID] {
			return nil, errors.Wrapf(entities.ErrDuplicateEntry, "window %s moved twice", moved.Window.ID)
		}
		movedSeen[moved.Window.ID] = true

		log.Debug("double delivery found",
			zap.String("market", string(entry.MarketCode)),
			zap.String("moved_zone", moved.Zone.Name),
			zap.String("reference_zone", reference.Zone.Name),
		)

		pairs = append(pairs, entities.DoubleDeliveryPair{
			Moved:     *moved,
			Reference: *reference,
			Entry:     *entry,
		})
	}

	return pairs, nil
}

func (r *DoubleDeliveryResolver) exactlyOne(key entities.ZoneKey) (*entities.CurrentDataRecord, error) {
	records, err := r.baseline.FindByKey(key)
	if err != nil {
		return nil, err
	}
	switch len(records) {
	case 0:
		return nil, errors.Wrapf(entities.ErrZoneNotFound, "no zone for %s", key)
	case 1:
		return records[0], nil
	default:
		return nil, errors.Wrapf(entities.ErrAmbiguousZone, "%d zones for %s", len(records), key)
	}
}
