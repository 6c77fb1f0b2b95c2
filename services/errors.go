package services

import "errors"

// Sentinel errors returned by the service layer. Controllers match them with
// errors.Is and translate to HTTP status codes.
var (
	ErrRepairNotFound      = errors.New("repair not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidStatus       = errors.New("unknown repair status")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrMissingFields       = errors.New("missing required booking fields")
	ErrTrackingIDExhausted = errors.New("could not generate a unique tracking id")
)
