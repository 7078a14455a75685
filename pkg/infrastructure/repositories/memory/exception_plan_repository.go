package memory

import (
	"github.com/pkg/errors"

	"github.com/vsinha/winexc/pkg/domain/entities"
	"github.com/vsinha/winexc/pkg/domain/repositories"
)

// ExceptionPlanRepository provides in-memory ops plan storage
type ExceptionPlanRepository struct {
	entries []entities.ExceptionPlanEntry
}

// NewExceptionPlanRepository creates a new in-memory exception plan repository
func NewExceptionPlanRepository() *ExceptionPlanRepository {
	return &ExceptionPlanRepository{
		entries: []entities.ExceptionPlanEntry{},
	}
}

// Verify interface compliance
var _ repositories.ExceptionPlanRepository = (*ExceptionPlanRepository)(nil)

// LoadEntries validates and appends entries, keeping file order
func (r *ExceptionPlanRepository) LoadEntries(entries []*entities.ExceptionPlanEntry) error {
	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return errors.Wrapf(err, "plan entry %d", i+1)
		}
		r.entries = append(r.entries, *entry)
	}
	return nil
}

// GetEntries returns all entries in plan order
func (r *ExceptionPlanRepository) GetEntries() ([]*entities.ExceptionPlanEntry, error) {
	entries := make([]*entities.ExceptionPlanEntry, 0, len(r.entries))
	for i := range r.entries {
		entries = append(entries, &r.entries[i])
	}
	return entries, nil
}

// GetNonEmployeeEntries returns the entries that are not employee zones
func (r *ExceptionPlanRepository) GetNonEmployeeEntries() ([]*entities.ExceptionPlanEntry, error) {
	var entries []*entities.ExceptionPlanEntry
	for i := range r.entries {
		if !r.entries[i].IsEmployeeZone {
			entries = append(entries, &r.entries[i])
		}
	}
	return entries, nil
}
