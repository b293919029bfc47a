package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/toolkit/atlas"
	"github.com/gogpu/toolkit/primitive"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Atlas != atlas.DefaultConfig() {
		t.Errorf("Atlas = %+v, want defaults", cfg.Atlas)
	}
	if len(cfg.Primitives) != 7 {
		t.Errorf("len(Primitives) = %d, want one per kind", len(cfg.Primitives))
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
[atlas]
policy = "fail"
[atlas.size]
width = 256
height = 128

[viewport]
width = 1024

[[primitive]]
shape = "CONE"
slices = 24
shapeColor = [1.0, 0.5, 0.25, 1.0]
scaleDimensions = [1, 2, 3]
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Atlas.Policy != atlas.FailOnAddFails {
		t.Errorf("Policy = %v, want fail", cfg.Atlas.Policy)
	}
	want := atlas.Size{Width: 256, Height: 128, BlockWidth: 16, BlockHeight: 16}
	if cfg.Atlas.NewAtlasSize != want {
		t.Errorf("NewAtlasSize = %+v, want %+v", cfg.Atlas.NewAtlasSize, want)
	}
	if cfg.Viewport.Width != 1024 || cfg.Viewport.Height != 600 {
		t.Errorf("Viewport = %+v, want 1024x600", cfg.Viewport)
	}
	if len(cfg.Primitives) != 1 {
		t.Fatalf("len(Primitives) = %d, want 1", len(cfg.Primitives))
	}

	d := primitive.FromProperties(cfg.Primitives[0], cfg.Viewport.primitive())
	if d.Kind != primitive.Cone || d.Slices != 24 {
		t.Errorf("descriptor = %v/%d, want CONE/24", d.Kind, d.Slices)
	}
	if d.Color != (primitive.Color{R: 1, G: 0.5, B: 0.25, A: 1}) {
		t.Errorf("Color = %+v", d.Color)
	}
	if d.ScaleDimensions != (primitive.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("ScaleDimensions = %+v", d.ScaleDimensions)
	}
	if d.LightPosition != (primitive.Vec3{X: 512, Y: 300, Z: 5120}) {
		t.Errorf("LightPosition = %+v", d.LightPosition)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `
[atlas.size]
width = 8
height = 8
`)
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig() should reject an atlas smaller than a block")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loadConfig() should fail for a missing file")
	}
}
