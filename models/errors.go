package models

import "errors"

var (
	// ErrInvalidEndpoint is returned when a broker endpoint string can't be parsed.
	// you can check for this error with errors.Is
	ErrInvalidEndpoint = errors.New("endpoint string could not be parsed")

	// ErrNilConfig is returned when a pool is created without a configuration.
	ErrNilConfig = errors.New("pool config can't be nil")
)
