package hilbert

import "errors"

var (
	// ErrInvalidInput is returned when a level, distance or coordinate is
	// outside the range permitted for the curve.
	ErrInvalidInput = errors.New("hilbert: invalid input")

	// Check failures, each wrapped with the distance at which the curve broke.
	ErrRoundTrip   = errors.New("hilbert: distance does not round trip")
	ErrNotAdjacent = errors.New("hilbert: consecutive points are not unit adjacent")
	ErrDuplicate   = errors.New("hilbert: point visited more than once")

	// ErrBadCurveEncoding is returned by DecodeCurveV1 for malformed or
	// out of range data.
	ErrBadCurveEncoding = errors.New("hilbert: curve encoding invalid")
)
