package domain

import "errors"

var (
	ErrDuplicateCode     = errors.New("media code already exists")
	ErrDuplicateChannel  = errors.New("channel already exists")
	ErrNotFound          = errors.New("not found")
	ErrOracleUnavailable = errors.New("membership oracle unavailable")
	ErrInvalidInput      = errors.New("invalid input format")
	ErrStorageFailure    = errors.New("storage failure")
)
