package atlas

import "errors"

// Sentinel errors for the atlas package.
var (
	// ErrAtlasTooSmall is returned when a single block does not fit in the atlas.
	ErrAtlasTooSmall = errors.New("atlas: atlas too small for a single block")

	// ErrNoSpace is returned when no atlas has room for an image and the
	// add policy forbids creating one.
	ErrNoSpace = errors.New("atlas: no atlas has room for image")

	// ErrImageTooLarge is returned when an image plus its padding border
	// does not fit in one block.
	ErrImageTooLarge = errors.New("atlas: image does not fit in a single block")

	// ErrPixelFormatMismatch is returned when an image is uploaded to an
	// atlas of a different pixel format.
	ErrPixelFormatMismatch = errors.New("atlas: pixel format does not match atlas")

	// ErrInvalidImage is returned for unknown or released image IDs.
	ErrInvalidImage = errors.New("atlas: invalid image id")

	// ErrNilBitmap is returned when a nil or empty bitmap is passed.
	ErrNilBitmap = errors.New("atlas: bitmap is nil or empty")
)

// SizeError represents an atlas size validation error.
type SizeError struct {
	Field  string
	Reason string

	// Err is the sentinel this error wraps, if any.
	Err error
}

func (e *SizeError) Error() string {
	return "atlas: invalid size." + e.Field + ": " + e.Reason
}

func (e *SizeError) Unwrap() error {
	return e.Err
}
