package entities

import "github.com/pkg/errors"

// Sentinel errors returned by the generator. Callers wrap them with the
// offending market, day, zone or row and compare with errors.Is.
var (
	ErrZoneNotFound       = errors.New("zone not found")
	ErrAmbiguousZone      = errors.New("ambiguous zone")
	ErrMalformedZoneName  = errors.New("malformed zone name")
	ErrUnknownDay         = errors.New("unknown day")
	ErrUnknownMarket      = errors.New("unknown market")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrWindowNotFound     = errors.New("window not found")
	ErrOriginMismatch     = errors.New("origin window mismatch")
	ErrDuplicateEntry     = errors.New("duplicate exception entry")
	ErrInvalidHolidayWeek = errors.New("invalid holiday week")
	ErrValidationFailed   = errors.New("validation failed")
)
