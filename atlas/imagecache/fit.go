package imagecache

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/toolkit/atlas"
)

// Fit scales img down, preserving its aspect ratio, so it fits within
// maxW x maxH. Images that already fit are returned unchanged.
func Fit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxW <= 0 || maxH <= 0 || w == 0 || h == 0 {
		return img
	}
	if w <= maxW && h <= maxH {
		return img
	}
	// Compare w/maxW with h/maxH without floating point.
	if w*maxH >= h*maxW {
		h = max(1, h*maxW/w)
		w = maxW
	} else {
		w = max(1, w*maxH/h)
		h = maxH
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// BlockFit returns the largest image size that packs into one block of size.
func BlockFit(size atlas.Size) (w, h int) {
	return size.BlockWidth - 2, size.BlockHeight - 2
}
