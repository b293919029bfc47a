package mesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size in bytes of one packed Vertex2D:
// position (vec2<f32>) followed by texture coordinate (vec2<f32>).
const VertexStride = 16

// IndexFormat is the index buffer format matching [Mesh2D.IndexBytes].
const IndexFormat = gputypes.IndexFormatUint32

// VertexLayout returns the vertex buffer layout for [Mesh2D.VertexBytes].
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
			},
		},
	}
}

// VertexBytes packs the vertices little-endian in [VertexLayout] order.
func (m *Mesh2D) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*VertexStride)
	for i, v := range m.Vertices {
		off := i * VertexStride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v.Position.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(v.Position.Y))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(v.TexCoords.X))
		binary.LittleEndian.PutUint32(buf[off+12:], math.Float32bits(v.TexCoords.Y))
	}
	return buf
}

// IndexBytes packs the indices as little-endian uint32 values.
func (m *Mesh2D) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
