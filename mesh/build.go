package mesh

// Layout describes the block grid of the atlas an image is packed into.
type Layout struct {
	AtlasWidth, AtlasHeight int
	BlockWidth, BlockHeight int
}

// BlocksPerRow returns the number of whole blocks across the atlas.
func (l Layout) BlocksPerRow() int {
	if l.BlockWidth <= 0 {
		return 0
	}
	return l.AtlasWidth / l.BlockWidth
}

// BlocksFor returns how many blocks of size blockDim are needed to cover dim.
func BlocksFor(dim, blockDim int) int {
	if dim <= 0 || blockDim <= 0 {
		return 0
	}
	return (dim + blockDim - 1) / blockDim
}

// Create builds the quad mesh for an image of imageWidth × imageHeight pixels
// occupying the given atlas blocks.
//
// Blocks are consumed row-major, top row first, left to right; blocks must
// hold at least widthInBlocks*heightInBlocks entries. Each block emits four
// vertices (top-left, top-right, bottom-left, bottom-right) and two
// counter-clockwise triangles. The last column and row are clipped to the
// remainder imageWidth % BlockWidth and imageHeight % BlockHeight when it is
// non-zero, so the mesh covers exactly the image size starting at pos.
//
// Texture coordinates are offset one texel inward, past the padding border
// written around every packed image. Meshes spanning more than one block are
// passed through [Optimize].
func Create(layout Layout, blocks []int, imageWidth, imageHeight int, pos Vec2, widthInBlocks, heightInBlocks int) Mesh2D {
	var m Mesh2D
	perRow := layout.BlocksPerRow()
	if perRow == 0 || layout.AtlasHeight <= 0 || layout.BlockHeight <= 0 ||
		widthInBlocks <= 0 || heightInBlocks <= 0 || len(blocks) < widthInBlocks*heightInBlocks {
		return m
	}

	blockW := float32(layout.BlockWidth)
	blockH := float32(layout.BlockHeight)

	texelX := 1 / float32(layout.AtlasWidth)
	texelY := 1 / float32(layout.AtlasHeight)
	texBlockW := texelX * blockW
	texBlockH := texelY * blockH

	edgeW := float32(imageWidth % layout.BlockWidth)
	edgeH := float32(imageHeight % layout.BlockHeight)

	m.Vertices = make([]Vertex2D, 0, 4*widthInBlocks*heightInBlocks)
	m.Indices = make([]uint32, 0, 6*widthInBlocks*heightInBlocks)

	var face uint32
	next := 0
	topLeft := pos
	for y := range heightInBlocks {
		vh, th := blockH, texBlockH
		if y == heightInBlocks-1 && edgeH > 0 {
			vh, th = edgeH, edgeH*texelY
		}

		for x := range widthInBlocks {
			block := blocks[next]
			next++

			u := texBlockW*float32(block%perRow) + texelX
			v := texBlockH*float32(block/perRow) + texelY

			vw, tw := blockW, texBlockW
			if x == widthInBlocks-1 && edgeW > 0 {
				vw, tw = edgeW, edgeW*texelX
			}

			m.Vertices = append(m.Vertices,
				Vertex2D{Position: topLeft, TexCoords: Vec2{u, v}},
				Vertex2D{Position: Vec2{topLeft.X + vw, topLeft.Y}, TexCoords: Vec2{u + tw, v}},
				Vertex2D{Position: Vec2{topLeft.X, topLeft.Y + vh}, TexCoords: Vec2{u, v + th}},
				Vertex2D{Position: Vec2{topLeft.X + vw, topLeft.Y + vh}, TexCoords: Vec2{u + tw, v + th}},
			)
			m.Indices = append(m.Indices,
				face+1, face, face+2,
				face+2, face+3, face+1,
			)
			face += 4
			topLeft.X += vw
		}

		topLeft.X = pos.X
		topLeft.Y += blockH
	}

	if widthInBlocks*heightInBlocks > 1 {
		return Optimize(m)
	}
	return m
}
