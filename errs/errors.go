// Package errs defines sentinel errors shared across survfit packages.
//
// Callers should use errors.Is to test for these conditions, since most
// errors are wrapped with additional context (category label, curve name)
// before they propagate.
package errs

import "errors"

// Dataset preparation errors.
var (
	// ErrNoSamples indicates a category with zero distance samples. Fitting a
	// 2-parameter model requires at least one real sample besides the two
	// anchor points.
	ErrNoSamples = errors.New("no distance samples in category")

	// ErrUnsortedSamples indicates the input distances are not in ascending order.
	ErrUnsortedSamples = errors.New("distance samples not in ascending order")

	// ErrNegativeDistance indicates a negative distance sample.
	ErrNegativeDistance = errors.New("negative distance sample")
)

// Solver errors.
var (
	// ErrInsufficientData indicates fewer data points than free parameters.
	ErrInsufficientData = errors.New("fewer data points than free parameters")

	// ErrZeroWeight indicates the dataset carries no weight mass, leaving the
	// weighted least-squares objective undefined.
	ErrZeroWeight = errors.New("dataset has zero total weight")

	// ErrDegenerateSystem indicates the damped normal equations remained
	// singular after damping escalation; the Jacobian is degenerate.
	ErrDegenerateSystem = errors.New("degenerate normal equations")

	// ErrNonFinite indicates the model produced a non-finite value or
	// gradient during the solve.
	ErrNonFinite = errors.New("non-finite model output")
)

// Curve errors.
var (
	// ErrUnknownCurve indicates a curve type outside the fixed model family.
	ErrUnknownCurve = errors.New("unknown curve type")
)

// Snapshot blob errors.
var (
	// ErrInvalidHeaderSize indicates a snapshot shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagic indicates the snapshot magic/version flag is not recognized.
	ErrInvalidMagic = errors.New("invalid snapshot magic")

	// ErrChecksumMismatch indicates the payload CRC does not match the header.
	ErrChecksumMismatch = errors.New("snapshot payload checksum mismatch")

	// ErrCategoryMismatch indicates a stored category ID does not match the
	// hash of its stored label, implying a corrupted or truncated entry.
	ErrCategoryMismatch = errors.New("category id does not match label hash")

	// ErrInvalidPayload indicates a malformed or truncated snapshot payload.
	ErrInvalidPayload = errors.New("invalid snapshot payload")
)
