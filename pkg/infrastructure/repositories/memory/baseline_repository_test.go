package memory

import (
	"errors"
	"testing"

	"github.com/vsinha/winexc/pkg/domain/entities"
	fixtures "github.com/vsinha/winexc/pkg/infrastructure/testing"
)

// prefixKeyer indexes "XXX: <N>..." names by the digit after the prefix
type prefixKeyer struct{}

func (prefixKeyer) ZoneKey(zone entities.Zone) (entities.ZoneKey, bool) {
	if len(zone.Name) < 6 || zone.Name[5] < '0' || zone.Name[5] > '6' {
		return entities.ZoneKey{}, false
	}
	return entities.ZoneKey{
		Market: entities.MarketCode(zone.Name[:3]),
		Day:    entities.DayOfWeek(zone.Name[5] - '0'),
	}, true
}

func record(zoneID, windowID, name string) *entities.CurrentDataRecord {
	return fixtures.NewRecord(zoneID, windowID, name, entities.MarketCode(name[:3]), fixtures.Schedule{})
}

func TestBaselineRepository_LoadAndLookup(t *testing.T) {
	repo := NewBaselineRepository(prefixKeyer{}, 4)

	err := repo.LoadRecords([]*entities.CurrentDataRecord{
		record("z1", "w1", "CHI: 1 PM"),
		record("z2", "w2", "CHI: 2 PM"),
		record("z3", "w3", "CHI: EMP"),
	})
	if err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	found, err := repo.GetByWindowID("w2")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if found.Zone.ID != "z2" {
		t.Errorf("Expected zone z2, got %s", found.Zone.ID)
	}

	matches, err := repo.FindByKey(entities.ZoneKey{Market: "CHI", Day: entities.Monday})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Window.ID != "w1" {
		t.Errorf("Expected w1 for CHI/1, got %v", matches)
	}

	matches, _ = repo.FindByKey(entities.ZoneKey{Market: "CHI", Day: entities.Friday})
	if len(matches) != 0 {
		t.Errorf("Expected no matches for CHI/5, got %d", len(matches))
	}

	all, _ := repo.GetAllRecords()
	if len(all) != 3 {
		t.Errorf("Expected 3 records, got %d", len(all))
	}
	if all[2].Zone.Name != "CHI: EMP" {
		t.Errorf("Expected load order to be kept, got %s last", all[2].Zone.Name)
	}
}

func TestBaselineRepository_AmbiguousKeyKeepsAllMatches(t *testing.T) {
	repo := NewBaselineRepository(prefixKeyer{}, 2)

	if err := repo.AddRecord(*record("z1", "w1", "CHI: 1 AM")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.AddRecord(*record("z2", "w2", "CHI: 1 PM")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	matches, _ := repo.FindByKey(entities.ZoneKey{Market: "CHI", Day: entities.Monday})
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(matches))
	}
}

func TestBaselineRepository_Rejects(t *testing.T) {
	testCases := []struct {
		name     string
		records  []*entities.CurrentDataRecord
		expected error
	}{
		{
			"duplicate window id",
			[]*entities.CurrentDataRecord{record("z1", "w1", "CHI: 1"), record("z2", "w1", "CHI: 2")},
			entities.ErrMalformedRecord,
		},
		{
			"bad zone name",
			[]*entities.CurrentDataRecord{record("z1", "w1", "Chicago 1")},
			entities.ErrMalformedZoneName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewBaselineRepository(prefixKeyer{}, 2)
			err := repo.LoadRecords(tc.records)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestBaselineRepository_WindowNotFound(t *testing.T) {
	repo := NewBaselineRepository(prefixKeyer{}, 0)

	_, err := repo.GetByWindowID("missing")
	if !errors.Is(err, entities.ErrWindowNotFound) {
		t.Errorf("Expected ErrWindowNotFound, got %v", err)
	}
}
