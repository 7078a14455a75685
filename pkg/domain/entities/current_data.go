package entities

import "github.com/pkg/errors"

// CurrentDataRecord pairs a baseline zone with its single window
type CurrentDataRecord struct {
	Zone   Zone
	Window Window
}

// Validate checks the record is internally consistent
func (r CurrentDataRecord) Validate() error {
	if err := r.Zone.Validate(); err != nil {
		return err
	}
	if r.Window.ID == "" {
		return errors.Wrapf(ErrMalformedRecord, "zone %s has no window id", r.Zone.ID)
	}
	if r.Window.ZoneID != "" && r.Window.ZoneID != r.Zone.ID {
		return errors.Wrapf(ErrMalformedRecord, "window %s belongs to zone %s, not %s",
			r.Window.ID, r.Window.ZoneID, r.Zone.ID)
	}
	return nil
}
