package models

import "errors"

// Error taxonomy for report validation, authorization and persistence.
// Controllers map these to HTTP status codes; nothing below retries.
var (
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrAreaFull             = errors.New("risk area already has the maximum number of points")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrInvalidTransition    = errors.New("unrecognized report status")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("report not found")
	ErrPersistence          = errors.New("persistence failure")
)
