package primitive

// NewBevelledCube returns a box with chamfered edges and corners.
//
// dims is normalized to unit length first and becomes the object
// dimensions. percentage 0 or less gives a sharp cube, 1 or more an
// octahedron, and anything between a 26-face bevelled cube whose bevel is
// taken from the shortest axis. smoothness blends each vertex normal from
// its face normal (0) towards the normal of the adjacent outer face (1).
func NewBevelledCube(dims Vec3, percentage, smoothness float32) Geometry {
	dims = dims.Normalize()
	smoothness = clampUnit(smoothness)

	var g Geometry
	switch {
	case percentage <= 0:
		g = cubeGeometry(dims)
	case percentage >= 1:
		g = emitFaces(octahedronPositions(dims), octahedronNormals[:], octahedronOuter[:], octahedronFaces[:], smoothness)
	default:
		g = emitFaces(bevelPositions(dims, percentage), bevelNormals[:], bevelOuter[:], bevelFaces[:], smoothness)
	}
	g.ObjectDimensions = dims
	return g
}

// outer face normals of a box: top, back, right, front, left, bottom.
var boxOuter = [6]Vec3{
	{0, 1, 0}, {0, 0, -1}, {1, 0, 0}, {0, 0, 1}, {-1, 0, 0}, {0, -1, 0},
}

// noBlend marks a face vertex that keeps the plain face normal.
const noBlend = -1

// faceWinding selects how a face's vertices are split into triangles.
type faceWinding uint8

const (
	triangle faceWinding = iota // 0 1 2
	fan                         // 0 1 2, 0 2 3
	strip                       // 0 1 2, 1 2 3
)

// face is one row of a solid's face table. pos indexes the position table
// and outer the outer normal table (or noBlend), one entry per vertex.
// normal indexes the face normal table.
type face struct {
	normal  int
	pos     []int
	outer   []int
	winding faceWinding
}

// emitFaces builds geometry from a face table. Vertices are emitted face by
// face in table order and every vertex normal is
// outer*smoothness + face*(1-smoothness), or the face normal for noBlend.
func emitFaces(positions, normals, outer []Vec3, faces []face, smoothness float32) Geometry {
	var g Geometry
	for _, f := range faces {
		base := uint16(len(g.Vertices))
		n := normals[f.normal]
		for k, p := range f.pos {
			v := Vertex{Position: positions[p], Normal: n}
			if f.outer != nil && f.outer[k] != noBlend {
				v.Normal = blend(outer[f.outer[k]], n, smoothness)
			}
			g.Vertices = append(g.Vertices, v)
		}
		switch f.winding {
		case triangle:
			g.Indices = append(g.Indices, base, base+1, base+2)
		case fan:
			g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
		case strip:
			g.Indices = append(g.Indices, base, base+1, base+2, base+1, base+2, base+3)
		}
	}
	return g
}

// Cube: eight corners, four vertices per face. The top and bottom faces are
// emitted first and last; the side faces are emitted as a ring of top
// edges followed by a ring of bottom edges.
var cubeVertexTable = [24]struct{ pos, normal int }{
	{0, 0}, {1, 0}, {2, 0}, {3, 0},
	{0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 3}, {3, 4}, {0, 4},
	{4, 1}, {5, 1}, {5, 2}, {6, 2}, {6, 3}, {7, 3}, {7, 4}, {4, 4},
	{4, 5}, {5, 5}, {6, 5}, {7, 5},
}

var cubeIndexTable = [36]uint16{
	0, 1, 2, 2, 3, 0,
	4, 13, 5, 4, 12, 13,
	6, 15, 7, 6, 14, 15,
	8, 17, 9, 8, 16, 17,
	10, 19, 11, 10, 18, 19,
	20, 21, 22, 22, 23, 20,
}

func cubeGeometry(dims Vec3) Geometry {
	x, y, z := 0.5*dims.X, 0.5*dims.Y, 0.5*dims.Z
	corners := [8]Vec3{
		{-x, y, -z}, {x, y, -z}, {x, y, z}, {-x, y, z},
		{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z},
	}
	g := Geometry{
		Vertices: make([]Vertex, len(cubeVertexTable)),
		Indices:  append([]uint16(nil), cubeIndexTable[:]...),
	}
	for i, e := range cubeVertexTable {
		g.Vertices[i] = Vertex{Position: corners[e.pos], Normal: boxOuter[e.normal]}
	}
	return g
}

// Octahedron: six apexes, whose outer normals share their index.
var octahedronNormals = [8]Vec3{
	{-1, 1, -1}, {1, 1, -1}, {1, 1, 1}, {-1, 1, 1},
	{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
}

var octahedronOuter = [6]Vec3{
	{0, 1, 0}, {-1, 0, 0}, {0, 0, -1}, {1, 0, 0}, {0, 0, 1}, {0, -1, 0},
}

var octahedronFaces = [8]face{
	{0, []int{0, 1, 2}, []int{0, 1, 2}, triangle},
	{1, []int{0, 2, 3}, []int{0, 2, 3}, triangle},
	{2, []int{0, 3, 4}, []int{0, 3, 4}, triangle},
	{3, []int{0, 4, 1}, []int{0, 4, 1}, triangle},
	{4, []int{5, 1, 2}, []int{5, 1, 2}, triangle},
	{5, []int{5, 2, 3}, []int{5, 2, 3}, triangle},
	{6, []int{5, 3, 4}, []int{5, 3, 4}, triangle},
	{7, []int{5, 4, 1}, []int{5, 4, 1}, triangle},
}

func octahedronPositions(dims Vec3) []Vec3 {
	x, y, z := 0.5*dims.X, 0.5*dims.Y, 0.5*dims.Z
	return []Vec3{
		{0, y, 0},
		{-x, 0, 0}, {0, 0, -z}, {x, 0, 0}, {0, 0, z},
		{0, -y, 0},
	}
}

// Bevelled cube: 24 positions in four layers of the box (top face, upper
// bevel ring, lower bevel ring, bottom face) and 26 face normals.
var bevelNormals = [26]Vec3{
	{0, 1, 0},
	{-1, 1, -1}, {0, 1, -1}, {1, 1, -1}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}, {-1, 1, 1}, {-1, 1, 0},
	{-1, 0, -1}, {0, 0, -1}, {1, 0, -1}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}, {-1, 0, 1}, {-1, 0, 0},
	{-1, -1, -1}, {0, -1, -1}, {1, -1, -1}, {1, -1, 0}, {1, -1, 1}, {0, -1, 1}, {-1, -1, 1}, {-1, -1, 0},
	{0, -1, 0},
}

var bevelOuter = boxOuter

var bevelFaces = [26]face{
	// Top face.
	{0, []int{0, 1, 2, 3}, nil, fan},

	// Top slopes: corner triangle then edge rectangle, per top edge.
	{1, []int{0, 4, 5}, []int{0, 4, 1}, triangle},
	{2, []int{0, 1, 5, 6}, []int{0, 0, 1, 1}, strip},
	{3, []int{1, 6, 7}, []int{0, 1, 2}, triangle},
	{4, []int{1, 2, 7, 8}, []int{0, 0, 2, 2}, strip},
	{5, []int{2, 8, 9}, []int{0, 2, 3}, triangle},
	{6, []int{2, 3, 9, 10}, []int{0, 0, 3, 3}, strip},
	{7, []int{3, 10, 11}, []int{0, 3, 4}, triangle},
	{8, []int{3, 0, 11, 4}, []int{0, 0, 4, 4}, strip},

	// Sides: vertical corner bevels alternate with the flat outer faces.
	{9, []int{4, 5, 12, 13}, []int{4, 1, 4, 1}, strip},
	{10, []int{5, 6, 13, 14}, nil, strip},
	{11, []int{6, 7, 14, 15}, []int{1, 2, 1, 2}, strip},
	{12, []int{7, 8, 15, 16}, nil, strip},
	{13, []int{8, 9, 16, 17}, []int{2, 3, 2, 3}, strip},
	{14, []int{9, 10, 17, 18}, nil, strip},
	{15, []int{10, 11, 18, 19}, []int{3, 4, 3, 4}, strip},
	{16, []int{11, 4, 19, 12}, nil, strip},

	// Bottom slopes.
	{17, []int{12, 13, 20}, []int{4, 1, 5}, triangle},
	{18, []int{13, 14, 20, 21}, []int{1, 1, 5, 5}, strip},
	{19, []int{14, 15, 21}, []int{1, 2, 5}, triangle},
	{20, []int{15, 16, 21, 22}, []int{2, 2, 5, 5}, strip},
	{21, []int{16, 17, 22}, []int{2, 3, 5}, triangle},
	{22, []int{17, 18, 22, 23}, []int{3, 3, 5, 5}, strip},
	{23, []int{18, 19, 23}, []int{3, 4, 5}, triangle},
	{24, []int{19, 12, 23, 20}, []int{4, 4, 5, 5}, strip},

	// Bottom face.
	{25, []int{20, 21, 22, 23}, nil, fan},
}

func bevelPositions(dims Vec3, percentage float32) []Vec3 {
	minDim := min(dims.X, dims.Y, dims.Z)
	amount := 0.5 * (1 - percentage) * minDim
	inset := 0.5*minDim - amount

	ox, oy, oz := 0.5*dims.X, 0.5*dims.Y, 0.5*dims.Z
	bx, by, bz := ox-inset, oy-inset, oz-inset

	return []Vec3{
		// Top face.
		{-bx, oy, -bz}, {bx, oy, -bz}, {bx, oy, bz}, {-bx, oy, bz},
		// Upper bevel ring.
		{-ox, by, -bz}, {-bx, by, -oz}, {bx, by, -oz}, {ox, by, -bz},
		{ox, by, bz}, {bx, by, oz}, {-bx, by, oz}, {-ox, by, bz},
		// Lower bevel ring.
		{-ox, -by, -bz}, {-bx, -by, -oz}, {bx, -by, -oz}, {ox, -by, -bz},
		{ox, -by, bz}, {bx, -by, oz}, {-bx, -by, oz}, {-ox, -by, bz},
		// Bottom face.
		{-bx, -oy, -bz}, {bx, -oy, -bz}, {bx, -oy, bz}, {-bx, -oy, bz},
	}
}
