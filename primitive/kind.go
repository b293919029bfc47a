package primitive

import "fmt"

// Kind selects the solid to generate.
type Kind uint8

const (
	// Sphere is a UV sphere of diameter 1.
	Sphere Kind = iota

	// Cone is a conic with zero top radius.
	Cone

	// ConicalFrustum is a conic with independent top and bottom radii.
	ConicalFrustum

	// Cylinder is a conic with equal radii.
	Cylinder

	// Cube is a bevelled cube with no bevel.
	Cube

	// Octahedron is a bevelled cube with full bevel.
	Octahedron

	// BevelledCube is a cube with chamfered edges and corners.
	BevelledCube
)

var kindLabels = [...]string{
	Sphere:         "SPHERE",
	Cone:           "CONE",
	ConicalFrustum: "CONICAL_FRUSTRUM",
	Cylinder:       "CYLINDER",
	Cube:           "CUBE",
	Octahedron:     "OCTAHEDRON",
	BevelledCube:   "BEVELLED_CUBE",
}

// String returns the property-map label of the kind.
func (k Kind) String() string {
	if int(k) < len(kindLabels) {
		return kindLabels[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind for a property-map label such as "CONE".
func ParseKind(label string) (Kind, error) {
	for k, l := range kindLabels {
		if l == label {
			return Kind(k), nil
		}
	}
	return Sphere, fmt.Errorf("%w: %q", ErrUnknownKind, label)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
