package repositories

import "github.com/vsinha/winexc/pkg/domain/entities"

// BaselineRepository provides access to the Current-Data records
type BaselineRepository interface {
	LoadRecords(records []*entities.CurrentDataRecord) error
	GetByWindowID(id entities.WindowID) (*entities.CurrentDataRecord, error)
	// FindByKey returns every record indexed under the key. Callers decide
	// what zero or several matches mean.
	FindByKey(key entities.ZoneKey) ([]*entities.CurrentDataRecord, error)
	GetAllRecords() ([]*entities.CurrentDataRecord, error)
}
