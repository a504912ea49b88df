package service

import "errors"

// Failure taxonomy shared by the controllers. Nothing here is retried: every
// failure is terminal for the triggering action.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)
