package primitive

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/toolkit"
)

// Partition limits for slices and stacks.
const (
	MinPartitions = 1
	MaxPartitions = 255
)

// Descriptor holds every parameter of a primitive. Fields that do not apply
// to Kind are ignored.
type Descriptor struct {
	Kind  Kind
	Color Color

	// Slices and Stacks subdivide spheres and conics. Clamped to [1, 255].
	Slices int
	Stacks int

	ScaleTopRadius    float32 // conical frustum
	ScaleBottomRadius float32 // cone, conical frustum
	ScaleHeight       float32 // all conics
	ScaleRadius       float32 // cylinder

	// ScaleDimensions scales cubes, octahedra and bevelled cubes.
	// Components of zero or less become 1.
	ScaleDimensions Vec3

	// BevelPercentage and BevelSmoothness shape bevelled cubes.
	// Both are clamped to [0, 1].
	BevelPercentage float32
	BevelSmoothness float32

	// LightPosition is passed through to the shading stage.
	LightPosition Vec3
}

// DefaultDescriptor returns a grey sphere with the default parameters of
// every shape.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Kind:              Sphere,
		Color:             Color{0.5, 0.5, 0.5, 0},
		Slices:            128,
		Stacks:            128,
		ScaleTopRadius:    1.0,
		ScaleBottomRadius: 1.5,
		ScaleHeight:       3.0,
		ScaleRadius:       1.0,
		ScaleDimensions:   Vec3{1, 1, 1},
	}
}

// DefaultLightPosition places the light in front of the viewport centre,
// far enough away to light everything on screen.
func DefaultLightPosition(vp Viewport) Vec3 {
	return Vec3{vp.Width / 2, vp.Height / 2, vp.Width * 5}
}

// Clamp returns d with slices and stacks in [1, 255], bevel percentage and
// smoothness in [0, 1] (NaN becomes 0), and non-positive or NaN dimensions
// reset to 1.
func (d Descriptor) Clamp() Descriptor {
	d.Slices = clampPartitions(d.Slices)
	d.Stacks = clampPartitions(d.Stacks)
	d.BevelPercentage = clampUnit(d.BevelPercentage)
	d.BevelSmoothness = clampUnit(d.BevelSmoothness)
	// Negated so NaN components are reset too.
	if !(d.ScaleDimensions.X > 0) {
		d.ScaleDimensions.X = 1
	}
	if !(d.ScaleDimensions.Y > 0) {
		d.ScaleDimensions.Y = 1
	}
	if !(d.ScaleDimensions.Z > 0) {
		d.ScaleDimensions.Z = 1
	}
	return d
}

// Generate clamps d and builds its geometry.
// Unknown kinds log an error and produce a sphere.
func Generate(d Descriptor) Geometry {
	d = d.Clamp()
	switch d.Kind {
	case Sphere:
		return NewSphere(d.Slices, d.Stacks)
	case Cone:
		return NewConic(0, d.ScaleBottomRadius, d.ScaleHeight, d.Slices)
	case ConicalFrustum:
		return NewConic(d.ScaleTopRadius, d.ScaleBottomRadius, d.ScaleHeight, d.Slices)
	case Cylinder:
		return NewConic(d.ScaleRadius, d.ScaleRadius, d.ScaleHeight, d.Slices)
	case Cube:
		return NewBevelledCube(d.ScaleDimensions, 0, 0)
	case Octahedron:
		return NewBevelledCube(d.ScaleDimensions, 1, d.BevelSmoothness)
	case BevelledCube:
		return NewBevelledCube(d.ScaleDimensions, d.BevelPercentage, d.BevelSmoothness)
	default:
		toolkit.Logger().Error("primitive: unknown shape, using sphere", "kind", d.Kind)
		return NewSphere(d.Slices, d.Stacks)
	}
}

func clampPartitions(n int) int {
	return min(max(n, MinPartitions), MaxPartitions)
}

// clampUnit clamps f to [0, 1]; NaN becomes 0.
func clampUnit(f float32) float32 {
	if math32.IsNaN(f) {
		return 0
	}
	return min(max(f, 0), 1)
}
