// Package toolkit provides the rendering-independent core of a UI toolkit
// that runs on top of a retained-mode scene-graph engine.
//
// # Overview
//
// The host engine owns actors, shaders and GPU submission. toolkit owns the
// parts with real algorithmic content that the host consumes:
//
//   - atlas: block-based texture atlas packing with reference-counted image
//     slots and free-list reuse of blocks and image IDs
//   - mesh: quad meshes generated from an image's block layout, vertex
//     deduplication and mesh stitching
//   - primitive: vertex/index buffers for spheres, cones, conical frustums,
//     cylinders, cubes, octahedra and bevelled cubes
//   - atlas/imagecache: a concurrency-safe, content-deduplicating front end
//     for an atlas manager
//
// # Quick Start
//
//	m := atlas.NewManager()
//	bmp := atlas.NewBitmap(14, 14, atlas.L8)
//	slot, err := m.Add(bmp, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	quad, _ := m.GenerateMeshData(slot.ImageID, mesh.Vec2{X: 10, Y: 20})
//	upload(quad.VertexBytes(), quad.IndexBytes(), m.Pixels(slot.AtlasID))
//
//	sphere := primitive.Generate(primitive.DefaultDescriptor())
//
// # Identifiers
//
// Atlas and image identifiers are positive integers; 0 is reserved as
// "invalid". Failed operations return 0 (or false) and log the reason
// through the logger configured with [SetLogger].
//
// # Concurrency
//
// atlas.Manager, mesh and primitive are synchronous and do no locking.
// Use atlas/imagecache, or external synchronization, when several
// goroutines share a manager.
package toolkit
