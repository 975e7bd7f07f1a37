package editions

import "errors"

var (
	ErrStateNotFound      = errors.New("state not found")
	ErrImpressionNotFound = errors.New("impression not found")

	// Returned when an impression names a state that does not exist or
	// belongs to a different plate. Nothing is persisted in that case.
	ErrStateNotOnPlate = errors.New("state does not belong to this plate")

	ErrInvalidAvailability = errors.New("invalid availability value")

	// An update call carried zero recognized fields.
	ErrNoFields = errors.New("no fields to update")
)
