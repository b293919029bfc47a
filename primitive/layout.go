package primitive

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size in bytes of one packed Vertex:
// position (vec3<f32>) followed by normal (vec3<f32>).
const VertexStride = 24

// IndexFormat is the index buffer format matching [Geometry.IndexBytes].
const IndexFormat = gputypes.IndexFormatUint16

// VertexLayout returns the vertex buffer layout for [Geometry.VertexBytes].
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1}, // normal
			},
		},
	}
}

// VertexBytes packs the vertices little-endian in [VertexLayout] order.
func (g *Geometry) VertexBytes() []byte {
	buf := make([]byte, len(g.Vertices)*VertexStride)
	for i, v := range g.Vertices {
		off := i * VertexStride
		for j, f := range [6]float32{
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		} {
			binary.LittleEndian.PutUint32(buf[off+j*4:], math.Float32bits(f))
		}
	}
	return buf
}

// IndexBytes packs the indices as little-endian uint16 values.
func (g *Geometry) IndexBytes() []byte {
	buf := make([]byte, len(g.Indices)*2)
	for i, idx := range g.Indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}
