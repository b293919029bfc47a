package atlas

import (
	"image"
	"image/color"
	"testing"
)

func TestPixelFormat(t *testing.T) {
	tests := []struct {
		format PixelFormat
		name   string
		bpp    int
	}{
		{L8, "L8", 1},
		{BGRA8888, "BGRA8888", 4},
		{RGBA8888, "RGBA8888", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.format.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.format.String(), tt.name)
			}
			if tt.format.BytesPerPixel() != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", tt.format.BytesPerPixel(), tt.bpp)
			}
			parsed, err := ParsePixelFormat(tt.name)
			if err != nil || parsed != tt.format {
				t.Errorf("ParsePixelFormat(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
	if _, err := ParsePixelFormat("RGB565"); err == nil {
		t.Error("ParsePixelFormat(RGB565) should fail")
	}
}

func TestFromImage_BGRA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})

	bmp := FromImage(src, BGRA8888)
	if bmp.Width != 2 || bmp.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", bmp.Width, bmp.Height)
	}
	want := []byte{30, 20, 10, 255, 60, 50, 40, 255}
	for i, b := range want {
		if bmp.Pix[i] != b {
			t.Errorf("Pix[%d] = %d, want %d", i, bmp.Pix[i], b)
		}
	}

	// Round trip through Image restores RGBA order.
	back := bmp.Image().(*image.RGBA)
	if got := back.RGBAAt(1, 0); got != (color.RGBA{R: 40, G: 50, B: 60, A: 255}) {
		t.Errorf("Image().At(1,0) = %v", got)
	}
	if bmp.Pix[0] != 30 {
		t.Error("Image() modified the bitmap")
	}
}

func TestFromImage_L8FromAlpha(t *testing.T) {
	src := image.NewAlpha(image.Rect(5, 5, 8, 7))
	src.SetAlpha(6, 6, color.Alpha{A: 200})

	bmp := FromImage(src, L8)
	if bmp.Width != 3 || bmp.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", bmp.Width, bmp.Height)
	}
	if got := bmp.At(1, 1)[0]; got != 200 {
		t.Errorf("At(1,1) = %d, want 200", got)
	}
	if got := bmp.At(0, 0)[0]; got != 0 {
		t.Errorf("At(0,0) = %d, want 0", got)
	}
}

func TestFromImage_L8FromGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 0, color.Gray{Y: 77})

	bmp := FromImage(src, L8)
	if got := bmp.At(1, 0)[0]; got != 77 {
		t.Errorf("At(1,0) = %d, want 77", got)
	}
}

func TestBitmap_Fill(t *testing.T) {
	bmp := NewBitmap(2, 2, BGRA8888)
	bmp.Fill(color.RGBA{R: 1, G: 2, B: 3, A: 4})
	for i := 0; i < len(bmp.Pix); i += 4 {
		if bmp.Pix[i] != 3 || bmp.Pix[i+2] != 1 || bmp.Pix[i+3] != 4 {
			t.Fatalf("pixel %d = %v, want BGRA order", i/4, bmp.Pix[i:i+4])
		}
	}
}

func TestBitmap_BlitClips(t *testing.T) {
	dst := NewBitmap(4, 4, L8)
	src := NewBitmap(3, 3, L8)
	src.Fill(color.Gray{Y: 9})

	dst.blit(src, 2, 2)
	if got := dst.At(3, 3)[0]; got != 9 {
		t.Errorf("At(3,3) = %d, want 9", got)
	}
	if got := dst.At(1, 1)[0]; got != 0 {
		t.Errorf("At(1,1) = %d, want 0", got)
	}

	dst.clear(3, 0, 5, 10)
	if got := dst.At(3, 3)[0]; got != 0 {
		t.Errorf("At(3,3) after clear = %d, want 0", got)
	}
	if got := dst.At(2, 2)[0]; got != 9 {
		t.Errorf("At(2,2) after clear = %d, want 9", got)
	}
}
