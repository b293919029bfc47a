package atlas

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// PixelFormat is the pixel layout of a bitmap or an atlas.
// The zero value is L8, which introspection returns for unknown atlases.
type PixelFormat uint8

const (
	// L8 is single-channel 8-bit luminance, used for glyph coverage masks.
	L8 PixelFormat = iota

	// BGRA8888 is 8-bit-per-channel BGRA, used for color images.
	BGRA8888

	// RGBA8888 is 8-bit-per-channel RGBA.
	RGBA8888
)

// String returns a human-readable name for the format.
func (f PixelFormat) String() string {
	switch f {
	case L8:
		return "L8"
	case BGRA8888:
		return "BGRA8888"
	case RGBA8888:
		return "RGBA8888"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case L8:
		return 1
	default:
		return 4
	}
}

// ToWGPUFormat converts to the matching gputypes.TextureFormat for the
// texture that backs an atlas of this format.
func (f PixelFormat) ToWGPUFormat() gputypes.TextureFormat {
	switch f {
	case L8:
		return gputypes.TextureFormatR8Unorm
	case BGRA8888:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// ParsePixelFormat parses the names returned by String.
func ParsePixelFormat(s string) (PixelFormat, error) {
	switch s {
	case "L8":
		return L8, nil
	case "BGRA8888":
		return BGRA8888, nil
	case "RGBA8888":
		return RGBA8888, nil
	default:
		return L8, fmt.Errorf("atlas: unknown pixel format %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f PixelFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *PixelFormat) UnmarshalText(text []byte) error {
	v, err := ParsePixelFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
