package atlas

// filledPixel is the opaque value written at (0, 0) of every atlas.
// Hosts sample it as a solid texture for underlines and rectangles.
const filledPixel = 0xFF

// atlas is one texture-sized pixel buffer and its block allocator.
type atlas struct {
	size   Size
	format PixelFormat
	blocks blockAllocator
	pixels *Bitmap

	// dirty marks that pixels changed since the host last uploaded them.
	dirty bool
}

func newAtlas(size Size, format PixelFormat) *atlas {
	a := &atlas{
		size:   size,
		format: format,
		blocks: newBlockAllocator(size.TotalBlocks()),
		pixels: NewBitmap(size.Width, size.Height, format),
	}
	for i := range format.BytesPerPixel() {
		a.pixels.Pix[i] = filledPixel
	}
	a.dirty = true
	return a
}

// blockOrigin returns the top-left pixel of a block.
func (a *atlas) blockOrigin(block int) (x, y int) {
	perRow := a.size.Width / a.size.BlockWidth
	return (block % perRow) * a.size.BlockWidth, (block / perRow) * a.size.BlockHeight
}

// upload writes bmp into block, offset one pixel right and down, then
// clears the one-pixel border around it.
//
// Block 0 keeps its top and left border untouched so the filled pixel at
// (0, 0) survives. The bottom and right border rows are skipped where they
// would fall outside the atlas.
func (a *atlas) upload(bmp *Bitmap, block int) error {
	if bmp.Format != a.format {
		return ErrPixelFormatMismatch
	}

	bx, by := a.blockOrigin(block)
	bw, bh := a.size.BlockWidth, a.size.BlockHeight

	a.pixels.blit(bmp, bx+singlePixelPadding, by+singlePixelPadding)

	if block != 0 {
		a.pixels.clear(bx, by, bw, singlePixelPadding)                                       // top
		a.pixels.clear(bx, by+singlePixelPadding, singlePixelPadding, bh-doublePixelPadding) // left
	}
	if by+bmp.Height+doublePixelPadding <= a.size.Height {
		a.pixels.clear(bx, by+bmp.Height+singlePixelPadding, bw, singlePixelPadding) // bottom
	}
	if bx+bmp.Width+doublePixelPadding <= a.size.Width {
		a.pixels.clear(bx+bmp.Width+singlePixelPadding, by+singlePixelPadding, singlePixelPadding, bh-doublePixelPadding) // right
	}

	a.dirty = true
	return nil
}

// memory returns the size in bytes of the backing texture.
func (a *atlas) memory() int {
	return a.size.Width * a.size.Height * a.format.BytesPerPixel()
}
