package graphbuilder

import "errors"

// Sentinel errors returned by Constructor closures and BuildConfig lookups.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) is
	// smaller than the constructor's minimum.
	ErrTooFewVertices = errors.New("graphbuilder: parameter too small")

	// ErrUnknownKey indicates a BuildConfig.ID lookup referenced a key no
	// constructor registered.
	ErrUnknownKey = errors.New("graphbuilder: unknown vertex key")

	// ErrNilConstructor indicates BuildGraph received a nil Constructor.
	ErrNilConstructor = errors.New("graphbuilder: nil constructor")
)
