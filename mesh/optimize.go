package mesh

// Optimize returns a copy of in with duplicate vertices merged.
//
// Vertices are equal when position and texture coordinate match exactly.
// The first occurrence of each vertex keeps its relative order and every
// input index is re-emitted against the merged vertex list, so the triangle
// list is unchanged apart from numbering. Indices that refer past the end of
// in.Vertices are dropped together with their triangle.
func Optimize(in Mesh2D) Mesh2D {
	out := Mesh2D{
		Vertices: make([]Vertex2D, 0, len(in.Vertices)),
		Indices:  make([]uint32, 0, len(in.Indices)),
	}
	seen := make(map[Vertex2D]uint32, len(in.Vertices))

	for t := 0; t+3 <= len(in.Indices); t += 3 {
		tri := in.Indices[t : t+3]
		if !inRange(tri, len(in.Vertices)) {
			continue
		}
		for _, idx := range tri {
			v := in.Vertices[idx]
			n, ok := seen[v]
			if !ok {
				n = uint32(len(out.Vertices))
				seen[v] = n
				out.Vertices = append(out.Vertices, v)
			}
			out.Indices = append(out.Indices, n)
		}
	}
	return out
}

func inRange(tri []uint32, n int) bool {
	for _, idx := range tri {
		if int(idx) >= n {
			return false
		}
	}
	return true
}
