package repositories

import "github.com/vsinha/winexc/pkg/domain/entities"

// ExceptionPlanRepository provides access to the ops plan entries in file order
type ExceptionPlanRepository interface {
	LoadEntries(entries []*entities.ExceptionPlanEntry) error
	GetEntries() ([]*entities.ExceptionPlanEntry, error)
	GetNonEmployeeEntries() ([]*entities.ExceptionPlanEntry, error)
}
