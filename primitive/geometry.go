package primitive

import "fmt"

// Vertex is one vertex of a generated solid.
type Vertex struct {
	Position Vec3
	Normal   Vec3
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16

	// ObjectDimensions is the extent of the solid normalized so its largest
	// component is at most 1.
	ObjectDimensions Vec3
}

// placeholderIndices draws nothing. Degenerate requests return it instead
// of an error.
func placeholderIndices() []uint16 { return []uint16{0, 0, 0} }

// IsPlaceholder reports whether g is the degenerate "draw nothing" result.
func (g *Geometry) IsPlaceholder() bool {
	return len(g.Indices) == 3 && g.Indices[0] == 0 && g.Indices[1] == 0 && g.Indices[2] == 0
}

// Validate checks that the indices form whole triangles over the vertex array.
func (g *Geometry) Validate() error {
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrIndexCount, len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			return fmt.Errorf("%w: index %d is %d, have %d vertices", ErrIndexRange, i, idx, len(g.Vertices))
		}
	}
	return nil
}

// Unreferenced returns the number of vertices no triangle uses.
func (g *Geometry) Unreferenced() int {
	used := make([]bool, len(g.Vertices))
	for _, idx := range g.Indices {
		if int(idx) < len(used) {
			used[idx] = true
		}
	}
	n := 0
	for _, u := range used {
		if !u {
			n++
		}
	}
	return n
}

// Bounds returns the minimum and maximum vertex positions.
func (g *Geometry) Bounds() (minPos, maxPos Vec3) {
	if len(g.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	minPos = g.Vertices[0].Position
	maxPos = minPos
	for _, v := range g.Vertices[1:] {
		p := v.Position
		minPos = Vec3{min(minPos.X, p.X), min(minPos.Y, p.Y), min(minPos.Z, p.Z)}
		maxPos = Vec3{max(maxPos.X, p.X), max(maxPos.Y, p.Y), max(maxPos.Z, p.Z)}
	}
	return minPos, maxPos
}
