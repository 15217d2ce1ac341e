package fundora

import "errors"

var (
	// ErrInvalidInput reports malformed or mismatched input: wrong number of
	// answers, an unknown choice, a negative principal, etc.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownPersona reports an allocation requested for a persona that has
	// no row in the allocation matrix.
	ErrUnknownPersona = errors.New("unknown persona")

	// ErrZeroPrincipal reports a CAGR requested for a zero principal, the ratio
	// final/principal being undefined.
	ErrZeroPrincipal = errors.New("zero principal")
)
