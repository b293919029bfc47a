// Command atlasdemo packs text glyphs and images into atlases and
// generates primitive solids.
//
// It writes every atlas as atlas-N.png, the stitched text quads as
// text.obj and each configured primitive as primitive-N-KIND.obj into the
// output directory, then logs atlas metrics.
//
// Usage:
//
//	atlasdemo [-config demo.toml] [-text "Hello"] [-out dir] [-v] [image.png ...]
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/toolkit"
	"github.com/gogpu/toolkit/atlas"
	"github.com/gogpu/toolkit/atlas/imagecache"
	"github.com/gogpu/toolkit/mesh"
	"github.com/gogpu/toolkit/primitive"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		text       = flag.String("text", "Hello, atlas!", "text to pack")
		fontSize   = flag.Float64("size", 12, "font size in pixels")
		outDir     = flag.String("out", ".", "output directory")
		verbose    = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		toolkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		toolkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	m, err := atlas.NewManagerWithConfig(cfg.Atlas)
	if err != nil {
		log.Fatalf("Failed to create atlas manager: %v", err)
	}
	cache, err := imagecache.New(m, 0)
	if err != nil {
		log.Fatalf("Failed to create image cache: %v", err)
	}
	maxW, maxH := imagecache.BlockFit(cfg.Atlas.NewAtlasSize)

	face, err := newFace(*fontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() {
		_ = face.Close()
	}()

	textMesh, ids, err := layoutText(cache, face, *text, mesh.Vec2{X: 0, Y: float32(*fontSize)}, maxW, maxH)
	if err != nil {
		log.Fatalf("Failed to pack text: %v", err)
	}
	log.Printf("Text %q: %d vertices, %d triangles", *text, textMesh.VertexCount(), textMesh.TriangleCount())
	if err := createFile(filepath.Join(*outDir, "text.obj"), func(w io.Writer) error {
		return writeMeshOBJ(w, "text", textMesh)
	}); err != nil {
		log.Fatalf("Failed to write text mesh: %v", err)
	}

	for _, path := range flag.Args() {
		slot, err := packImage(cache, path, maxW, maxH)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		ids = append(ids, slot.ImageID)
		log.Printf("Packed %s as image %d in atlas %d", path, slot.ImageID, slot.AtlasID)
	}

	st := cache.Stats()
	log.Printf("Image cache: %d images, %d hits, %d misses", st.Entries, st.Hits, st.Misses)

	cache.Do(func(m *atlas.Manager) {
		if err := saveAtlases(m, *outDir); err != nil {
			log.Fatalf("Failed to save atlases: %v", err)
		}
		logMetrics(m.Metrics())
	})

	for i, props := range cfg.Primitives {
		d := primitive.FromProperties(props, cfg.Viewport.primitive())
		g := primitive.Generate(d)
		if err := g.Validate(); err != nil {
			log.Fatalf("Invalid %s geometry: %v", d.Kind, err)
		}
		name := fmt.Sprintf("primitive-%d-%s", i+1, strings.ToLower(d.Kind.String()))
		if err := createFile(filepath.Join(*outDir, name+".obj"), func(w io.Writer) error {
			return writeGeometryOBJ(w, name, g)
		}); err != nil {
			log.Fatalf("Failed to write %s: %v", name, err)
		}
		log.Printf("%s: %d vertices, %d triangles", name, len(g.Vertices), len(g.Indices)/3)
	}

	for _, id := range ids {
		cache.Remove(id)
	}
}

func packImage(c *imagecache.Cache, path string, maxW, maxH int) (atlas.Slot, error) {
	f, err := os.Open(path)
	if err != nil {
		return atlas.Slot{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return atlas.Slot{}, err
	}
	return c.Add(atlas.FromImage(imagecache.Fit(img, maxW, maxH), atlas.RGBA8888))
}

func saveAtlases(m *atlas.Manager, dir string) error {
	for i := 1; i <= m.AtlasCount(); i++ {
		id := atlas.AtlasID(i)
		path := filepath.Join(dir, fmt.Sprintf("atlas-%d.png", i))
		if err := createFile(path, func(w io.Writer) error {
			return png.Encode(w, m.Pixels(id).Image())
		}); err != nil {
			return err
		}
		m.MarkClean(id)
		log.Printf("Atlas saved to %s (%s, %s)", path, m.Size(id), m.PixelFormat(id))
	}
	return nil
}

func logMetrics(mt atlas.Metrics) {
	log.Printf("Atlases: %d, texture memory: %d bytes", mt.AtlasCount, mt.TextureMemoryUsed)
	for i, a := range mt.Atlases {
		log.Printf("  atlas %d: %d/%d blocks used (%.1f%%), %s",
			i+1, a.BlocksUsed, a.TotalBlocks, a.Utilization()*100, a.PixelFormat)
	}
}
