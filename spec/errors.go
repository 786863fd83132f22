package spec

import "errors"

// Sentinel errors for Specification.Validate (SpecificationInvalid, per spec.md §7).
var (
	// ErrMissingInOut indicates no station named "InOut" is present.
	ErrMissingInOut = errors.New("spec: station models must include \"InOut\"")

	// ErrTransportAndActivities indicates a station declares both Transport
	// and Activities, which spec.md §3 forbids (at most one of the two).
	ErrTransportAndActivities = errors.New("spec: a station cannot declare both Transport and Activities")

	// ErrObstacleTooFewVertices indicates an obstacle polygon has fewer than 3 vertices.
	ErrObstacleTooFewVertices = errors.New("spec: obstacle polygon must have at least 3 vertices")

	// ErrUnknownPart indicates a target part name absent from Specification.Parts.
	ErrUnknownPart = errors.New("spec: unknown target part")
)
