package domain

import "errors"

var (
	ErrUnauthorized     = errors.New("authentication required")
	ErrMutationInFlight = errors.New("mutation already in flight")
	ErrContentEmpty     = errors.New("content is empty")
	ErrContentTooLong   = errors.New("content too long")
	ErrNotFound         = errors.New("not found")
)
