package primitive

// NewConic returns a solid of revolution around the Y axis with the given
// top and bottom radii and height, built from slices segments.
//
// A radius of zero or less closes that end in a point, so NewConic covers
// cones, conical frustums and cylinders. Each existing circle contributes two
// rings of slices vertices sharing positions: one with the cap normal and
// one with the outward side normal. All dimensions are scaled by the largest
// of twice the bigger radius and the height, so the solid fits [-0.5, 0.5].
// Both radii zero yields the placeholder triangle.
func NewConic(topRadius, bottomRadius, height float32, slices int) Geometry {
	slices = clampPartitions(slices)
	return Geometry{
		Vertices:         conicVertices(topRadius, bottomRadius, height, slices),
		Indices:          conicIndices(topRadius, bottomRadius, slices),
		ObjectDimensions: conicDimensions(topRadius, bottomRadius, height),
	}
}

func conicVertices(top, bottom, height float32, slices int) []Vertex {
	sin, cos := circleTables(slices, false)

	n := 2
	if top > 0 {
		n += 2 * slices
	}
	if bottom > 0 {
		n += 2 * slices
	}
	vertices := make([]Vertex, n)

	biggest := max(2*top, 2*bottom, height)
	if biggest <= 0 {
		biggest = 1
	}
	top /= biggest
	bottom /= biggest
	y := height / biggest / 2

	up := Vec3{0, 1, 0}
	down := Vec3{0, -1, 0}

	vertices[0] = Vertex{Position: Vec3{0, y, 0}, Normal: up}
	k := 1

	if top > 0 {
		for i := range slices {
			p := Vec3{sin[i] * top, y, cos[i] * top}
			vertices[k+i] = Vertex{Position: p, Normal: up}
			vertices[k+i+slices] = Vertex{Position: p, Normal: Vec3{p.X, 0, p.Z}}
		}
		k += 2 * slices
	}

	if bottom > 0 {
		for i := range slices {
			p := Vec3{sin[i] * bottom, -y, cos[i] * bottom}
			vertices[k+i] = Vertex{Position: p, Normal: Vec3{p.X, 0, p.Z}}
			vertices[k+i+slices] = Vertex{Position: p, Normal: down}
		}
		k += 2 * slices
	}

	vertices[k] = Vertex{Position: Vec3{0, -y, 0}, Normal: down}
	return vertices
}

func conicIndices(top, bottom float32, slices int) []uint16 {
	pointTop := top <= 0
	pointBottom := bottom <= 0

	if pointTop && pointBottom {
		return placeholderIndices()
	}

	if pointTop || pointBottom {
		// Vertex 0, one ring pair and the bottom centre: the ring nearest
		// vertex 0 faces it, the other faces the bottom centre.
		indices := make([]uint16, 0, 6*slices)
		for i := 1; i <= slices; i++ {
			indices = append(indices, 0, uint16(i), uint16(wrap(i+1, 1, slices)))
		}
		centre := 2*slices + 1
		for i := 1; i <= slices; i++ {
			indices = append(indices, uint16(centre), uint16(slices+i), uint16(wrap(slices+i+1, slices+1, slices)))
		}
		return indices
	}

	indices := make([]uint16, 0, 12*slices)

	// Top cap.
	for i := 1; i <= slices; i++ {
		indices = append(indices, 0, uint16(i), uint16(wrap(i+1, 1, slices)))
	}

	// Side, between the outward-facing rings.
	topSide := slices + 1
	bottomSide := topSide + slices
	indices = appendBand(indices, topSide, bottomSide, slices)

	// Bottom cap, fanned around the bottom centre.
	bottomCap := bottomSide + slices
	centre := bottomCap + slices
	for i := range slices {
		next := bottomCap + i + 1
		if i == slices-1 {
			next = bottomCap
		}
		indices = append(indices, uint16(centre), uint16(bottomCap+i), uint16(next))
	}
	return indices
}

func conicDimensions(top, bottom, height float32) Vec3 {
	x := 2 * max(top, bottom)
	y := height
	largest := max(x, y)
	if largest <= 0 {
		return Vec3{}
	}
	return Vec3{x / largest, y / largest, x / largest}
}
