// Package primitive generates vertex and index buffers for parametric solids.
//
// Seven shapes are supported: sphere, cone, conical frustum, cylinder, cube,
// octahedron and bevelled cube. Every shape fits a unit bounding box centred
// on the origin and comes with an ObjectDimensions vector the shading stage
// uses to scale it to its actor.
//
// Geometry is described by a [Descriptor], built either directly or from a
// host property map with [FromProperties], and produced by [Generate]:
//
//	d := primitive.DefaultDescriptor()
//	d.Kind = primitive.BevelledCube
//	d.BevelPercentage = 0.3
//	g := primitive.Generate(d)
//	upload(g.VertexBytes(), g.IndexBytes())
//
// Out-of-range parameters are clamped rather than rejected, and degenerate
// requests (a sphere with one stack, a conic with no radius) return a
// placeholder triangle that draws nothing.
package primitive
