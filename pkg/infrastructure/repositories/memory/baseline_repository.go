package memory

import (
	"github.com/pkg/errors"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/repositories"
)

// ZoneKeyer derives the {market, day} key a zone is indexed under
type ZoneKeyer interface {
	ZoneKey(zone entities.Zone) (entities.ZoneKey, bool)
}

// BaselineRepository provides in-memory Current-Data storage indexed by
// window id and by zone key
type BaselineRepository struct {
	keyer      ZoneKeyer
	records    []entities.CurrentDataRecord
	byWindowID map[entities.WindowID]int
	byKey      map[entities.ZoneKey][]int
}

// NewBaselineRepository creates a new in-memory baseline repository
func NewBaselineRepository(keyer ZoneKeyer, expectedRecords int) *BaselineRepository {
	return &BaselineRepository{
		keyer:      keyer,
		records:    make([]entities.CurrentDataRecord, 0, expectedRecords),
		byWindowID: make(map[entities.WindowID]int, expectedRecords),
		byKey:      make(map[entities.ZoneKey][]int),
	}
}

// Verify interface compliance
var _ repositories.BaselineRepository = (*BaselineRepository)(nil)

// LoadRecords validates and indexes records. Window ids must be unique.
func (r *BaselineRepository) LoadRecords(records []*entities.CurrentDataRecord) error {
	for _, record := range records {
		if err := r.AddRecord(*record); err != nil {
			return err
		}
	}
	return nil
}

// AddRecord adds a single record to the repository
func (r *BaselineRepository) AddRecord(record entities.CurrentDataRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if _, exists := r.byWindowID[record.Window.ID]; exists {
		return errors.Wrapf(entities.ErrMalformedRecord, "duplicate window id %s", record.Window.ID)
	}
	if record.Window.ZoneID == "" {
		record.Window.ZoneID = record.Zone.ID
	}

	index := len(r.records)
	r.records = append(r.records, record)
	r.byWindowID[record.Window.ID] = index

	if key, ok := r.keyer.ZoneKey(record.Zone); ok {
		r.byKey[key] = append(r.byKey[key], index)
	}
	return nil
}

// GetByWindowID returns the record owning a window
func (r *BaselineRepository) GetByWindowID(id entities.WindowID) (*entities.CurrentDataRecord, error) {
	index, exists := r.byWindowID[id]
	if !exists {
		return nil, errors.Wrapf(entities.ErrWindowNotFound, "window %s", id)
	}
	return &r.records[index], nil
}

// FindByKey returns all records indexed under key, in load order
func (r *BaselineRepository) FindByKey(key entities.ZoneKey) ([]*entities.CurrentDataRecord, error) {
	indexes := r.byKey[key]
	matches := make([]*entities.CurrentDataRecord, 0, len(indexes))
	for _, index := range indexes {
		matches = append(matches, &r.records[index])
	}
	return matches, nil
}

// GetAllRecords returns every record in load order
func (r *BaselineRepository) GetAllRecords() ([]*entities.CurrentDataRecord, error) {
	records := make([]*entities.CurrentDataRecord, 0, len(r.records))
	for i := range r.records {
		records = append(records, &r.records[i])
	}
	return records, nil
}
