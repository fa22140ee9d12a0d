// Package errs defines the sentinel errors returned across jismesh packages.
//
// Callers match them with errors.Is; packages wrap them with fmt.Errorf and %w to
// attach the offending value.
package errs

import "errors"

var (
	// ErrInvalidCoordinate is returned when a latitude/longitude lies outside
	// [-90, 90] x [-180, 180] or is not a finite number.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidCode is returned when a mesh code is shorter than four characters
	// or contains a non-digit character.
	ErrInvalidCode = errors.New("invalid mesh code")

	// ErrInvalidLevel is returned for a mesh level outside 1..6.
	ErrInvalidLevel = errors.New("invalid mesh level")

	// ErrInvalidViewport is returned when a viewport span is not a positive finite number.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrTooManyCells is returned when a viewport would enumerate more cells than allowed.
	ErrTooManyCells = errors.New("too many mesh cells")

	// ErrBackendUnavailable is returned by a backend factory that cannot provide
	// parallel execution in the current environment.
	ErrBackendUnavailable = errors.New("enumeration backend unavailable")

	// ErrInvalidCodeSet is returned when a code-set blob is truncated or malformed.
	ErrInvalidCodeSet = errors.New("invalid code set")

	// ErrChecksumMismatch is returned when a code-set payload does not match its checksum.
	ErrChecksumMismatch = errors.New("code set checksum mismatch")
)
