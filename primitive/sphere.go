package primitive

import "github.com/chewxy/math32"

// circleTables returns sine and cosine of divisions evenly spaced angles
// over a full circle, or a half circle when half is set.
func circleTables(divisions int, half bool) (sin, cos []float32) {
	if divisions <= 0 {
		return nil, nil
	}
	span := 2 * float32(math32.Pi)
	if half {
		span = math32.Pi
	}
	step := span / float32(divisions)

	sin = make([]float32, divisions)
	cos = make([]float32, divisions)
	for i := range divisions {
		sin[i] = math32.Sin(step * float32(i))
		cos[i] = math32.Cos(step * float32(i))
	}
	return sin, cos
}

// NewSphere returns a sphere of diameter 1 centred on the origin, with its
// poles on the Z axis.
//
// The sphere has slices*(stacks-1)+2 vertices: a singleton at each pole and
// stacks-1 rings of slices vertices. The top and bottom stacks are fans
// around the poles; the stacks in between are quad strips split into two
// triangles per slice. One stack or fewer yields the placeholder triangle.
func NewSphere(slices, stacks int) Geometry {
	slices = clampPartitions(slices)
	stacks = clampPartitions(stacks)
	return Geometry{
		Vertices:         sphereVertices(slices, stacks),
		Indices:          sphereIndices(slices, stacks),
		ObjectDimensions: Vec3{1, 1, 1},
	}
}

func sphereVertices(slices, stacks int) []Vertex {
	sin1, cos1 := circleTables(slices, false)
	sin2, cos2 := circleTables(stacks, true)

	vertices := make([]Vertex, 0, slices*(stacks-1)+2)
	vertices = append(vertices, Vertex{Position: Vec3{0, 0, 0.5}, Normal: Vec3{0, 0, 1}})
	for i := 1; i < stacks; i++ {
		for j := range slices {
			n := Vec3{cos1[j] * sin2[i], sin1[j] * sin2[i], cos2[i]}
			vertices = append(vertices, Vertex{Position: n.Scale(0.5), Normal: n})
		}
	}
	vertices = append(vertices, Vertex{Position: Vec3{0, 0, -0.5}, Normal: Vec3{0, 0, -1}})
	return vertices
}

func sphereIndices(slices, stacks int) []uint16 {
	if stacks <= 1 {
		return placeholderIndices()
	}
	indices := make([]uint16, 0, 6*slices*(stacks-1))

	// Top fan around the north pole.
	for i := 1; i <= slices; i++ {
		indices = append(indices, 0, uint16(i), uint16(wrap(i+1, 1, slices)))
	}

	prev, cur := 1, 1+slices
	for range stacks - 2 {
		indices = appendBand(indices, prev, cur, slices)
		prev += slices
		cur += slices
	}

	// Bottom fan around the south pole.
	south := prev + slices
	for i := range slices {
		next := prev + i + 1
		if i == slices-1 {
			next = prev
		}
		indices = append(indices, uint16(south), uint16(prev+i), uint16(next))
	}
	return indices
}

// appendBand appends two triangles per slice joining the ring starting at
// upper to the ring starting at lower, wrapping at the seam.
func appendBand(indices []uint16, upper, lower, slices int) []uint16 {
	for j := range slices {
		next := j + 1
		if j == slices-1 {
			next = 0
		}
		indices = append(indices,
			uint16(upper+j), uint16(lower+j), uint16(upper+next),
			uint16(lower+j), uint16(lower+next), uint16(upper+next),
		)
	}
	return indices
}

// wrap returns i, or first when i is past first+count-1.
func wrap(i, first, count int) int {
	if i >= first+count {
		return first
	}
	return i
}
