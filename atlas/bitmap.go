package atlas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Bitmap is a tightly packed pixel buffer.
// Pix holds Height rows of Width*Format.BytesPerPixel() bytes.
type Bitmap struct {
	Width  int
	Height int
	Format PixelFormat
	Pix    []byte
}

// NewBitmap allocates a zeroed bitmap.
func NewBitmap(width, height int, format PixelFormat) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Format: format,
		Pix:    make([]byte, width*height*format.BytesPerPixel()),
	}
}

// FromImage converts img to a bitmap in the requested format.
// L8 takes the image's luminance, or its alpha for *image.Alpha sources
// such as rasterized glyph masks.
func FromImage(img image.Image, format PixelFormat) *Bitmap {
	b := img.Bounds()
	bmp := NewBitmap(b.Dx(), b.Dy(), format)
	dst := image.Rect(0, 0, b.Dx(), b.Dy())

	switch format {
	case L8:
		if a, ok := img.(*image.Alpha); ok {
			for y := 0; y < bmp.Height; y++ {
				off := a.PixOffset(b.Min.X, b.Min.Y+y)
				copy(bmp.Pix[y*bmp.Width:(y+1)*bmp.Width], a.Pix[off:off+bmp.Width])
			}
			return bmp
		}
		gray := &image.Gray{Pix: bmp.Pix, Stride: bmp.Width, Rect: dst}
		draw.Draw(gray, dst, img, b.Min, draw.Src)
	default:
		rgba := &image.RGBA{Pix: bmp.Pix, Stride: bmp.Width * 4, Rect: dst}
		draw.Draw(rgba, dst, img, b.Min, draw.Src)
		if format == BGRA8888 {
			swapRB(bmp.Pix)
		}
	}
	return bmp
}

// Image returns the bitmap as an image.Image for encoding or inspection.
// L8 bitmaps share Pix; BGRA8888 bitmaps are copied with channels swapped.
func (b *Bitmap) Image() image.Image {
	r := image.Rect(0, 0, b.Width, b.Height)
	switch b.Format {
	case L8:
		return &image.Gray{Pix: b.Pix, Stride: b.Width, Rect: r}
	case BGRA8888:
		pix := append([]byte(nil), b.Pix...)
		swapRB(pix)
		return &image.RGBA{Pix: pix, Stride: b.Width * 4, Rect: r}
	default:
		return &image.RGBA{Pix: b.Pix, Stride: b.Width * 4, Rect: r}
	}
}

// At returns the raw bytes of the pixel at (x, y).
func (b *Bitmap) At(x, y int) []byte {
	bpp := b.Format.BytesPerPixel()
	off := (y*b.Width + x) * bpp
	return b.Pix[off : off+bpp]
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c color.Color) {
	px := b.pixel(c)
	bpp := len(px)
	for i := 0; i+bpp <= len(b.Pix); i += bpp {
		copy(b.Pix[i:], px)
	}
}

func (b *Bitmap) pixel(c color.Color) []byte {
	switch b.Format {
	case L8:
		g := color.GrayModel.Convert(c).(color.Gray)
		return []byte{g.Y}
	case BGRA8888:
		n := color.RGBAModel.Convert(c).(color.RGBA)
		return []byte{n.B, n.G, n.R, n.A}
	default:
		n := color.RGBAModel.Convert(c).(color.RGBA)
		return []byte{n.R, n.G, n.B, n.A}
	}
}

func (b *Bitmap) empty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0 ||
		len(b.Pix) < b.Width*b.Height*b.Format.BytesPerPixel()
}

// blit copies src into b with its top-left corner at (x, y).
// Pixels falling outside b are skipped. Formats must match.
func (b *Bitmap) blit(src *Bitmap, x, y int) {
	bpp := b.Format.BytesPerPixel()
	for sy := 0; sy < src.Height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= b.Height {
			continue
		}
		x0, x1 := max(x, 0), min(x+src.Width, b.Width)
		if x0 >= x1 {
			return
		}
		so := (sy*src.Width + (x0 - x)) * bpp
		do := (dy*b.Width + x0) * bpp
		copy(b.Pix[do:do+(x1-x0)*bpp], src.Pix[so:])
	}
}

// clear zeroes the w × h rectangle at (x, y), clipped to b.
func (b *Bitmap) clear(x, y, w, h int) {
	bpp := b.Format.BytesPerPixel()
	x0, x1 := max(x, 0), min(x+w, b.Width)
	if x0 >= x1 {
		return
	}
	for dy := max(y, 0); dy < min(y+h, b.Height); dy++ {
		row := b.Pix[(dy*b.Width+x0)*bpp : (dy*b.Width+x1)*bpp]
		clear(row)
	}
}

func swapRB(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}
