// Package mesh builds the 2D quad meshes that display images packed into a
// texture atlas.
//
// A [Mesh2D] is an ordered vertex list (position + texture coordinate) and a
// triangle index list with counter-clockwise winding. Meshes are created from
// an image's block layout with [Create], deduplicated with [Optimize] and
// combined with [Stitch] or [StitchInto]. [Mesh2D.VertexBytes] and
// [Mesh2D.IndexBytes] pack the result for a GPU buffer described by
// [VertexLayout].
package mesh

import "fmt"

// Vec2 is a single-precision 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// String implements fmt.Stringer.
func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Vertex2D is one mesh vertex. TexCoords are normalized to the atlas size.
type Vertex2D struct {
	Position  Vec2
	TexCoords Vec2
}

// Mesh2D is a triangle list over a vertex array.
// Every index refers to a vertex in Vertices; len(Indices) is a multiple of 3.
type Mesh2D struct {
	Vertices []Vertex2D
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh2D) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh2D) TriangleCount() int { return len(m.Indices) / 3 }

// IsEmpty reports whether the mesh has nothing to draw.
func (m *Mesh2D) IsEmpty() bool { return len(m.Indices) == 0 }

// Bounds returns the minimum and maximum vertex positions.
// An empty mesh returns zero vectors.
func (m *Mesh2D) Bounds() (minPos, maxPos Vec2) {
	if len(m.Vertices) == 0 {
		return Vec2{}, Vec2{}
	}
	minPos = m.Vertices[0].Position
	maxPos = minPos
	for _, v := range m.Vertices[1:] {
		minPos.X = min(minPos.X, v.Position.X)
		minPos.Y = min(minPos.Y, v.Position.Y)
		maxPos.X = max(maxPos.X, v.Position.X)
		maxPos.Y = max(maxPos.Y, v.Position.Y)
	}
	return minPos, maxPos
}

// Clone returns a deep copy of the mesh.
func (m *Mesh2D) Clone() Mesh2D {
	return Mesh2D{
		Vertices: append([]Vertex2D(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}

// Reset empties the mesh, keeping the allocated capacity.
func (m *Mesh2D) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}
