package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/toolkit/atlas"
	"github.com/gogpu/toolkit/primitive"
)

// demoConfig is the TOML file read with -config.
//
//	[atlas]
//	policy = "create"
//	[atlas.size]
//	width = 256
//	height = 256
//	block_width = 16
//	block_height = 16
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[[primitive]]
//	shape = "BEVELLED_CUBE"
//	bevelPercentage = 0.3
type demoConfig struct {
	Atlas      atlas.Config     `toml:"atlas"`
	Viewport   viewport         `toml:"viewport"`
	Primitives []map[string]any `toml:"primitive"`
}

type viewport struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

func defaultConfig() demoConfig {
	cfg := demoConfig{
		Atlas:    atlas.DefaultConfig(),
		Viewport: viewport{Width: 800, Height: 600},
	}
	for _, k := range []primitive.Kind{
		primitive.Sphere, primitive.Cone, primitive.ConicalFrustum, primitive.Cylinder,
		primitive.Cube, primitive.Octahedron, primitive.BevelledCube,
	} {
		cfg.Primitives = append(cfg.Primitives, map[string]any{
			primitive.PropShape:           k.String(),
			primitive.PropSlices:          32,
			primitive.PropStacks:          16,
			primitive.PropBevelPercentage: 0.3,
			primitive.PropBevelSmoothness: 0.5,
		})
	}
	return cfg
}

// loadConfig reads path over the defaults. Keys missing from the file keep
// their default values; a file with [[primitive]] tables replaces the
// default primitive list.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	cfg.Primitives = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return demoConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	if !md.IsDefined("primitive") {
		cfg.Primitives = defaultConfig().Primitives
	}
	if err := cfg.Atlas.Validate(); err != nil {
		return demoConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (v viewport) primitive() primitive.Viewport {
	return primitive.Viewport{Width: v.Width, Height: v.Height}
}
