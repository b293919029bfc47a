package mesh

import (
	"encoding/binary"
	"math"
	"testing"
)

var testLayout = Layout{AtlasWidth: 512, AtlasHeight: 512, BlockWidth: 16, BlockHeight: 16}

func TestBlocksFor(t *testing.T) {
	tests := []struct {
		dim, block, want int
	}{
		{0, 16, 0},
		{1, 16, 1},
		{16, 16, 1},
		{17, 16, 2},
		{40, 16, 3},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := BlocksFor(tt.dim, tt.block); got != tt.want {
			t.Errorf("BlocksFor(%d, %d) = %d, want %d", tt.dim, tt.block, got, tt.want)
		}
	}
}

func TestCreate_SingleBlock(t *testing.T) {
	m := Create(testLayout, []int{0}, 14, 14, Vec2{10, 20}, 1, 1)

	if m.VertexCount() != 4 {
		t.Fatalf("VertexCount = %d, want 4", m.VertexCount())
	}
	want := []uint32{1, 0, 2, 2, 3, 1}
	for i, idx := range want {
		if m.Indices[i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], idx)
		}
	}

	texel := float32(1) / 512
	tl := m.Vertices[0]
	if tl.Position != (Vec2{10, 20}) {
		t.Errorf("top-left position = %v, want (10, 20)", tl.Position)
	}
	if tl.TexCoords != (Vec2{texel, texel}) {
		t.Errorf("top-left texcoord = %v, want one texel inset", tl.TexCoords)
	}
	br := m.Vertices[3]
	if br.Position != (Vec2{24, 34}) {
		t.Errorf("bottom-right position = %v, want (24, 34)", br.Position)
	}
}

func TestCreate_BlockTexCoords(t *testing.T) {
	// Block 33 sits in column 1, row 1 of a 32-blocks-wide atlas.
	m := Create(testLayout, []int{33}, 16, 16, Vec2{}, 1, 1)
	texel := float32(1) / 512
	want := Vec2{16*texel + texel, 16*texel + texel}
	if m.Vertices[0].TexCoords != want {
		t.Errorf("TexCoords = %v, want %v", m.Vertices[0].TexCoords, want)
	}
}

func TestCreate_ClippedBounds(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"2x2 blocks", 20, 30},
		{"3x1 blocks", 40, 5},
		{"exact multiple", 32, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := BlocksFor(tt.w, testLayout.BlockWidth)
			hb := BlocksFor(tt.h, testLayout.BlockHeight)
			blocks := make([]int, wb*hb)
			for i := range blocks {
				blocks[i] = i + 1
			}
			pos := Vec2{5, 7}
			m := Create(testLayout, blocks, tt.w, tt.h, pos, wb, hb)

			minPos, maxPos := m.Bounds()
			if minPos != pos {
				t.Errorf("min = %v, want %v", minPos, pos)
			}
			if maxPos.X != pos.X+float32(tt.w) {
				t.Errorf("max X = %v, want %v", maxPos.X, pos.X+float32(tt.w))
			}
			if maxPos.Y != pos.Y+float32(tt.h) {
				t.Errorf("max Y = %v, want %v", maxPos.Y, pos.Y+float32(tt.h))
			}
			if m.TriangleCount() != 2*wb*hb {
				t.Errorf("TriangleCount = %d, want %d", m.TriangleCount(), 2*wb*hb)
			}
		})
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	if m := Create(testLayout, nil, 14, 14, Vec2{}, 1, 1); !m.IsEmpty() {
		t.Error("Create with no blocks should return an empty mesh")
	}
	if m := Create(Layout{}, []int{0}, 14, 14, Vec2{}, 1, 1); !m.IsEmpty() {
		t.Error("Create with zero layout should return an empty mesh")
	}
}

func TestOptimize_MergesSharedEdges(t *testing.T) {
	// Two adjacent quads that sample contiguous blocks share an edge.
	raw := Mesh2D{
		Vertices: []Vertex2D{
			{Vec2{0, 0}, Vec2{0, 0}}, {Vec2{1, 0}, Vec2{1, 0}}, {Vec2{0, 1}, Vec2{0, 1}}, {Vec2{1, 1}, Vec2{1, 1}},
			{Vec2{1, 0}, Vec2{1, 0}}, {Vec2{2, 0}, Vec2{2, 0}}, {Vec2{1, 1}, Vec2{1, 1}}, {Vec2{2, 1}, Vec2{2, 1}},
		},
		Indices: []uint32{1, 0, 2, 2, 3, 1, 5, 4, 6, 6, 7, 5},
	}
	m := Optimize(raw)

	if m.VertexCount() != 6 {
		t.Errorf("VertexCount = %d, want 6", m.VertexCount())
	}
	if len(m.Indices) != len(raw.Indices) {
		t.Fatalf("len(Indices) = %d, want %d", len(m.Indices), len(raw.Indices))
	}
	for i := range raw.Indices {
		if m.Vertices[m.Indices[i]] != raw.Vertices[raw.Indices[i]] {
			t.Errorf("index %d resolves to %v, want %v", i, m.Vertices[m.Indices[i]], raw.Vertices[raw.Indices[i]])
		}
	}
	seen := make(map[Vertex2D]bool)
	for _, v := range m.Vertices {
		if seen[v] {
			t.Errorf("duplicate vertex %v after Optimize", v)
		}
		seen[v] = true
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	blocks := []int{1, 2, 3, 33, 34, 35}
	m := Create(testLayout, blocks, 40, 20, Vec2{}, 3, 2)
	m = StitchInto(m, m, false)

	once := Optimize(m)
	twice := Optimize(once)

	if once.VertexCount() != twice.VertexCount() || len(once.Indices) != len(twice.Indices) {
		t.Fatalf("Optimize not idempotent: %d/%d vs %d/%d",
			once.VertexCount(), len(once.Indices), twice.VertexCount(), len(twice.Indices))
	}
	for i := range once.Vertices {
		if once.Vertices[i] != twice.Vertices[i] {
			t.Errorf("Vertices[%d] changed: %v -> %v", i, once.Vertices[i], twice.Vertices[i])
		}
	}
	for i := range once.Indices {
		if once.Indices[i] != twice.Indices[i] {
			t.Errorf("Indices[%d] changed: %d -> %d", i, once.Indices[i], twice.Indices[i])
		}
	}
}

func TestOptimize_DropsOutOfRangeTriangles(t *testing.T) {
	in := Mesh2D{
		Vertices: []Vertex2D{{}, {Position: Vec2{1, 0}}, {Position: Vec2{0, 1}}},
		Indices:  []uint32{0, 1, 2, 0, 1, 9},
	}
	out := Optimize(in)
	if len(out.Indices) != 3 {
		t.Errorf("len(Indices) = %d, want 3", len(out.Indices))
	}
}

func quad(x float32) Mesh2D {
	return Create(testLayout, []int{1}, 10, 10, Vec2{x, 0}, 1, 1)
}

func TestStitch_RebasesIndices(t *testing.T) {
	a := quad(0)
	b := quad(100)
	Stitch(&a, b, false)

	if a.VertexCount() != 8 {
		t.Errorf("VertexCount = %d, want 8", a.VertexCount())
	}
	want := []uint32{1, 0, 2, 2, 3, 1, 5, 4, 6, 6, 7, 5}
	for i, idx := range want {
		if a.Indices[i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", i, a.Indices[i], idx)
		}
	}
}

func TestStitchInto_LeavesInputsUntouched(t *testing.T) {
	a := quad(0)
	b := quad(0)
	out := StitchInto(a, b, true)

	if a.VertexCount() != 4 || b.VertexCount() != 4 {
		t.Error("StitchInto modified its inputs")
	}
	// Identical quads collapse to one after optimization.
	if out.VertexCount() != 4 {
		t.Errorf("VertexCount = %d, want 4", out.VertexCount())
	}
	if len(out.Indices) != 12 {
		t.Errorf("len(Indices) = %d, want 12", len(out.Indices))
	}
}

func TestStitch_CountAssociativity(t *testing.T) {
	a, b, c := quad(0), quad(20), quad(40)
	c = StitchInto(c, quad(60), false)

	left := StitchInto(StitchInto(a, b, false), c, false)
	right := StitchInto(a, StitchInto(b, c, false), false)

	if left.VertexCount() != right.VertexCount() {
		t.Errorf("vertex counts differ: %d vs %d", left.VertexCount(), right.VertexCount())
	}
	if len(left.Indices) != len(right.Indices) {
		t.Errorf("index counts differ: %d vs %d", len(left.Indices), len(right.Indices))
	}
	for i := range left.Indices {
		if left.Indices[i] != right.Indices[i] {
			t.Errorf("Indices[%d]: %d vs %d", i, left.Indices[i], right.Indices[i])
		}
	}
}

func TestMesh2D_Bytes(t *testing.T) {
	m := quad(3)
	vb := m.VertexBytes()
	if len(vb) != 4*VertexStride {
		t.Fatalf("len(VertexBytes) = %d, want %d", len(vb), 4*VertexStride)
	}
	if x := math.Float32frombits(binary.LittleEndian.Uint32(vb)); x != 3 {
		t.Errorf("first position X = %v, want 3", x)
	}
	ib := m.IndexBytes()
	if len(ib) != 6*4 {
		t.Fatalf("len(IndexBytes) = %d, want 24", len(ib))
	}
	if idx := binary.LittleEndian.Uint32(ib); idx != 1 {
		t.Errorf("first index = %d, want 1", idx)
	}
}

func TestVertexLayout(t *testing.T) {
	l := VertexLayout()
	if len(l) != 1 || l[0].ArrayStride != VertexStride || len(l[0].Attributes) != 2 {
		t.Fatalf("unexpected layout %+v", l)
	}
	if l[0].Attributes[1].Offset != 8 {
		t.Errorf("tex_coord offset = %d, want 8", l[0].Attributes[1].Offset)
	}
}
