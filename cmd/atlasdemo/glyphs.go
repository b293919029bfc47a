package main

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/toolkit/atlas"
	"github.com/gogpu/toolkit/atlas/imagecache"
	"github.com/gogpu/toolkit/mesh"
)

// glyph is a rasterized rune and where its mask sits relative to the pen.
type glyph struct {
	mask    *image.Alpha
	offset  image.Point
	advance int
}

func newFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// rasterize draws r into a mask cropped to its bounds. Runes with no ink,
// such as spaces, return a nil mask.
func rasterize(face font.Face, r rune) glyph {
	bounds, advance, ok := face.GlyphBounds(r)
	g := glyph{advance: advance.Ceil()}
	if !ok {
		return g
	}
	rect := image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(), bounds.Max.X.Ceil(), bounds.Max.Y.Ceil())
	if rect.Empty() {
		return g
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(-rect.Min.X, -rect.Min.Y),
	}
	d.DrawString(string(r))

	g.mask = mask
	g.offset = rect.Min
	return g
}

// layoutText packs every glyph of text through the cache and stitches
// their quads into one mesh along a baseline at origin. It returns the
// mesh and the image IDs it referenced.
func layoutText(c *imagecache.Cache, face font.Face, text string, origin mesh.Vec2, maxW, maxH int) (mesh.Mesh2D, []atlas.ImageID, error) {
	var (
		out mesh.Mesh2D
		ids []atlas.ImageID
		pen = origin
	)
	for _, r := range text {
		g := rasterize(face, r)
		if g.mask != nil {
			bmp := atlas.FromImage(imagecache.Fit(g.mask, maxW, maxH), atlas.L8)
			slot, err := c.Add(bmp)
			if err != nil {
				return mesh.Mesh2D{}, ids, err
			}
			ids = append(ids, slot.ImageID)

			pos := pen.Add(mesh.Vec2{X: float32(g.offset.X), Y: float32(g.offset.Y)})
			quad, ok := c.GenerateMeshData(slot.ImageID, pos)
			if ok {
				mesh.Stitch(&out, quad, true)
			}
		}
		pen.X += float32(g.advance)
	}
	return out, ids, nil
}
