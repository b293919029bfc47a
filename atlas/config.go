package atlas

import "fmt"

// Padding constants. Every packed image gets a one-pixel border on each
// side so bilinear filtering never samples a neighbouring block.
const (
	singlePixelPadding = 1
	doublePixelPadding = 2
)

// Size describes an atlas and the blocks it is divided into.
type Size struct {
	Width       int `toml:"width"`
	Height      int `toml:"height"`
	BlockWidth  int `toml:"block_width"`
	BlockHeight int `toml:"block_height"`
}

// DefaultSize returns the size used for atlases created on demand:
// 512×512 pixels in 16×16 blocks.
func DefaultSize() Size {
	return Size{
		Width:       512,
		Height:      512,
		BlockWidth:  16,
		BlockHeight: 16,
	}
}

// Validate checks that the atlas can hold at least one block.
// A block larger than the atlas returns a *SizeError wrapping ErrAtlasTooSmall.
func (s Size) Validate() error {
	if s.Width <= 0 {
		return &SizeError{Field: "Width", Reason: "must be positive"}
	}
	if s.Height <= 0 {
		return &SizeError{Field: "Height", Reason: "must be positive"}
	}
	if s.BlockWidth <= 0 {
		return &SizeError{Field: "BlockWidth", Reason: "must be positive"}
	}
	if s.BlockHeight <= 0 {
		return &SizeError{Field: "BlockHeight", Reason: "must be positive"}
	}
	if s.BlockWidth > s.Width {
		return &SizeError{
			Field:  "BlockWidth",
			Reason: fmt.Sprintf("%d exceeds atlas width %d", s.BlockWidth, s.Width),
			Err:    ErrAtlasTooSmall,
		}
	}
	if s.BlockHeight > s.Height {
		return &SizeError{
			Field:  "BlockHeight",
			Reason: fmt.Sprintf("%d exceeds atlas height %d", s.BlockHeight, s.Height),
			Err:    ErrAtlasTooSmall,
		}
	}
	return nil
}

// TotalBlocks returns the number of whole blocks in the atlas.
func (s Size) TotalBlocks() int {
	if s.BlockWidth <= 0 || s.BlockHeight <= 0 {
		return 0
	}
	return (s.Width / s.BlockWidth) * (s.Height / s.BlockHeight)
}

// fits reports whether a width × height image plus its padding border fits
// in one block.
func (s Size) fits(width, height int) bool {
	return width+doublePixelPadding <= s.BlockWidth && height+doublePixelPadding <= s.BlockHeight
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d/%dx%d", s.Width, s.Height, s.BlockWidth, s.BlockHeight)
}

// AddPolicy controls what Add does when no existing atlas has room.
type AddPolicy uint8

const (
	// FailOnAddCreates creates a new atlas of the configured size.
	FailOnAddCreates AddPolicy = iota

	// FailOnAddFails returns ErrNoSpace without creating an atlas.
	FailOnAddFails
)

// String returns the policy name used in configuration files.
func (p AddPolicy) String() string {
	switch p {
	case FailOnAddCreates:
		return "create"
	case FailOnAddFails:
		return "fail"
	default:
		return fmt.Sprintf("AddPolicy(%d)", p)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p AddPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *AddPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "create", "":
		*p = FailOnAddCreates
	case "fail":
		*p = FailOnAddFails
	default:
		return fmt.Errorf("atlas: unknown add policy %q", text)
	}
	return nil
}

// Config holds manager configuration.
type Config struct {
	// NewAtlasSize is the size of atlases created by Add.
	// Block dimensions are the full block, padding included.
	NewAtlasSize Size `toml:"size"`

	// Policy selects what Add does when every atlas is full.
	// Default: FailOnAddCreates
	Policy AddPolicy `toml:"policy"`
}

// DefaultConfig returns the default manager configuration.
func DefaultConfig() Config {
	return Config{
		NewAtlasSize: DefaultSize(),
		Policy:       FailOnAddCreates,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.NewAtlasSize.Validate(); err != nil {
		return err
	}
	if c.Policy > FailOnAddFails {
		return fmt.Errorf("atlas: invalid config.Policy: %v", c.Policy)
	}
	return nil
}
