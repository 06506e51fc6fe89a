package qbit

import "github.com/pkg/errors"

var (
	// ErrMismatchedRepresentation is returned when arithmetic is attempted
	// between a Cartesian and a Polar value. Convert one side explicitly first.
	ErrMismatchedRepresentation = errors.New("mismatched complex representation")

	// ErrNotNormalized is returned when amplitudes do not satisfy |α|²+|β|² = 1.
	ErrNotNormalized = errors.New("amplitudes are not normalized")

	// ErrUnknownGate is returned when a circuit description cannot be parsed.
	ErrUnknownGate = errors.New("unknown gate")
)

func mismatch(op string, lhs, rhs Encoding) error {
	return errors.Wrapf(ErrMismatchedRepresentation, "%s %s with %s", op, lhs, rhs)
}
