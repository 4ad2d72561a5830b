package domain

import "errors"

// Validation failures detected before any planning computation proceeds.
// The pipeline never returns partial output alongside one of these.
var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrEmptyCityList     = errors.New("city list is empty")
	ErrEmptyRoute        = errors.New("route is empty")
	ErrNonPositiveDays   = errors.New("total days must be at least 1")
)
