package tubebank

import "errors"

var (
	// ErrInvalidInput marks physically invalid geometry or flow conditions.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDomain marks a result that is undefined for the given temperatures,
	// e.g. a log-mean temperature difference with no driving temperature.
	ErrDomain = errors.New("domain error")
)
