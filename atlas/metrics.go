package atlas

// AtlasMetrics describes the occupancy of one atlas.
type AtlasMetrics struct {
	Size        Size
	TotalBlocks int
	BlocksUsed  int
	PixelFormat PixelFormat
}

// Utilization returns the fraction of blocks in use, in [0, 1].
func (a AtlasMetrics) Utilization() float64 {
	if a.TotalBlocks == 0 {
		return 0
	}
	return float64(a.BlocksUsed) / float64(a.TotalBlocks)
}

// Metrics is an occupancy and memory snapshot of a Manager.
type Metrics struct {
	AtlasCount int

	// TextureMemoryUsed is the total size in bytes of all atlas textures.
	TextureMemoryUsed int

	Atlases []AtlasMetrics
}

// Metrics returns a snapshot of every atlas.
func (m *Manager) Metrics() Metrics {
	out := Metrics{
		AtlasCount: len(m.atlases),
		Atlases:    make([]AtlasMetrics, 0, len(m.atlases)),
	}
	for _, a := range m.atlases {
		out.Atlases = append(out.Atlases, AtlasMetrics{
			Size:        a.size,
			TotalBlocks: a.blocks.total,
			BlocksUsed:  a.blocks.used(),
			PixelFormat: a.format,
		})
		out.TextureMemoryUsed += a.memory()
	}
	return out
}
