package mesh

// Stitch appends second to first in place.
//
// second's indices are rebased by the vertex count first had before the
// call. When optimize is true the combined mesh is passed through [Optimize].
func Stitch(first *Mesh2D, second Mesh2D, optimize bool) {
	offset := uint32(len(first.Vertices))
	first.Vertices = append(first.Vertices, second.Vertices...)
	for _, idx := range second.Indices {
		first.Indices = append(first.Indices, idx+offset)
	}
	if optimize {
		*first = Optimize(*first)
	}
}

// StitchInto returns a new mesh holding first followed by second.
// Neither input is modified.
func StitchInto(first, second Mesh2D, optimize bool) Mesh2D {
	out := Mesh2D{
		Vertices: make([]Vertex2D, 0, len(first.Vertices)+len(second.Vertices)),
		Indices:  make([]uint32, 0, len(first.Indices)+len(second.Indices)),
	}
	out.Vertices = append(out.Vertices, first.Vertices...)
	out.Indices = append(out.Indices, first.Indices...)
	Stitch(&out, second, optimize)
	return out
}
