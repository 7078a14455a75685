package generation

import (
	"github.com/pkg/errors"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/repositories"
	"github.com/vsinha/winexc/pkg/domain/services"
)

// OriginLocator resolves the baseline window a plan entry moves
type OriginLocator interface {
	OriginWindowID(entry *entities.ExceptionPlanEntry) (entities.WindowID, error)
}

// WindowGenerator produces the override windows of a holiday week
type WindowGenerator struct {
	baseline repositories.BaselineRepository
	origins  OriginLocator
	ids      IDGenerator
	week     entities.HolidayWeek
}

// NewWindowGenerator creates a new window generator
func NewWindowGenerator(
	baseline repositories.BaselineRepository,
	origins OriginLocator,
	ids IDGenerator,
	week entities.HolidayWeek,
) *WindowGenerator {
	return &WindowGenerator{
		baseline: baseline,
		origins:  origins,
		ids:      ids,
		week:     week,
	}
}

// Generate returns simple moves in plan order, then the moved window of
// each merged zone, then the unmoved reference window of each merged zone.
// Entries whose origin window is a moved window are covered by the merged
// zone and produce no simple move.
func (g *WindowGenerator) Generate(
	entries []*entities.ExceptionPlanEntry,
	merged []entities.MergedZone,
) ([]entities.GeneratedWindow, error) {
	movedWindows := make(map[entities.WindowID]bool, len(merged))
	for _, m := range merged {
		movedWindows[m.Pair.Moved.Window.ID] = true
	}

	windows := make([]entities.GeneratedWindow, 0, len(entries)+len(merged))

	for _, entry := range entries {
		origin, err := g.origins.OriginWindowID(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "origin of %s day %d", entry.MarketCode, entry.OriginalDay)
		}
		if movedWindows[origin] {
			continue
		}

		record, err := g.baseline.GetByWindowID(origin)
		if err != nil {
			return nil, errors.Wrapf(err, "plan entry for %s", entry.MarketCode)
		}
		windows = append(windows, g.simpleMove(record, entry))
	}

	for _, m := range merged {
		windows = append(windows, g.doubleDeliveryMoved(m))
	}
	for _, m := range merged {
		windows = append(windows, g.doubleDeliveryUnmoved(m))
	}

	return windows, nil
}

func (g *WindowGenerator) simpleMove(record *entities.CurrentDataRecord, entry *entities.ExceptionPlanEntry) entities.GeneratedWindow {
	w := g.stamp(record.Window, record.Zone.ID)
	w.StartDay = entry.ExceptionDay
	w.EndDay = entry.ExceptionDay
	w.DeliveryDate = g.week.DateOf(entry.ExceptionDay)

	return entities.GeneratedWindow{
		Window:   w,
		Kind:     entities.SimpleMove,
		ZoneName: record.Zone.Name,
		Timeline: services.TimelineOf(w, g.week),
	}
}

func (g *WindowGenerator) doubleDeliveryMoved(m entities.MergedZone) entities.GeneratedWindow {
	pair := m.Pair
	w := g.stamp(pair.Moved.Window, m.Zone.ID)
	w.StartDay = pair.Entry.ExceptionDay
	w.EndDay = pair.Entry.ExceptionDay
	w.DeliveryDate = g.week.DateOf(pair.Entry.ExceptionDay)

	later := services.LaterDispatch(pair.Moved.Window, pair.Reference.Window, g.week)
	w.DispatchDay = later.DispatchDay
	w.DispatchTime = later.DispatchTime

	timeline := services.TimelineOf(w, g.week)
	timeline.Dispatch = services.DispatchAt(later, g.week)

	return entities.GeneratedWindow{
		Window:   w,
		Kind:     entities.DoubleDeliveryMoved,
		ZoneName: m.Zone.Name,
		Timeline: timeline,
	}
}

func (g *WindowGenerator) doubleDeliveryUnmoved(m entities.MergedZone) entities.GeneratedWindow {
	w := g.stamp(m.Pair.Reference.Window, m.Zone.ID)
	w.DeliveryDate = g.week.DateOf(w.StartDay)

	return entities.GeneratedWindow{
		Window:   w,
		Kind:     entities.DoubleDeliveryUnmoved,
		ZoneName: m.Zone.Name,
		Timeline: services.TimelineOf(w, g.week),
	}
}

// stamp copies a baseline window under a fresh id, zone and message
func (g *WindowGenerator) stamp(source entities.Window, zoneID entities.ZoneID) entities.Window {
	w := source.Clone()
	w.ID = entities.WindowID(g.ids.NewID())
	w.ZoneID = zoneID
	w.MessageToUser = g.week.Message()
	return w
}
