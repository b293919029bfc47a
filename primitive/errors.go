package primitive

import "errors"

// Sentinel errors for primitive package.
var (
	// ErrIndexCount is returned when the index count is not a multiple of 3.
	ErrIndexCount = errors.New("primitive: index count is not a multiple of 3")

	// ErrIndexRange is returned when an index refers past the vertex array.
	ErrIndexRange = errors.New("primitive: index out of range")

	// ErrUnknownKind is returned by ParseKind for unrecognised labels.
	ErrUnknownKind = errors.New("primitive: unknown shape")
)
