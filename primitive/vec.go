package primitive

import "github.com/chewxy/math32"

// Vec3 is a single-precision 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// blend returns outer*s + face*(1-s).
func blend(outer, face Vec3, s float32) Vec3 {
	return outer.Scale(s).Add(face.Scale(1 - s))
}

// Color is a linear RGBA color.
type Color struct {
	R, G, B, A float32
}

// Viewport is the size of the stage the primitive is shown on.
type Viewport struct {
	Width, Height float32
}
