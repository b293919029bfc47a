// Package imagecache deduplicates images packed into an atlas.Manager.
//
// Adding a bitmap whose pixels are already packed returns the existing slot
// and takes another reference instead of using another block. Content is
// identified by an xxhash digest of the bitmap; the digest index is an LRU
// of bounded size, so rarely re-added images eventually stop being matched
// but are never freed while referenced.
//
// A Cache serializes every call, and Manager access through it, with one
// mutex.
package imagecache

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/gogpu/toolkit"
	"github.com/gogpu/toolkit/atlas"
	"github.com/gogpu/toolkit/mesh"
)

// DefaultCapacity is the digest index size used when New is given 0.
const DefaultCapacity = 1024

// ErrNilManager is returned by New without a manager.
var ErrNilManager = errors.New("imagecache: nil manager")

type entry struct {
	key  uint64
	slot atlas.Slot
	refs int

	// meshes counts the manager references taken by GenerateMeshData.
	meshes int
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int // live images added through the cache
}

// Cache is a deduplicating, synchronized front end to an atlas.Manager.
type Cache struct {
	mu    sync.Mutex
	m     *atlas.Manager
	index *lru.Cache // digest -> atlas.ImageID
	live  map[atlas.ImageID]*entry

	hits   uint64
	misses uint64
}

// New wraps m. capacity bounds the number of digests remembered; 0 means
// DefaultCapacity.
func New(m *atlas.Manager, capacity int) (*Cache, error) {
	if m == nil {
		return nil, ErrNilManager
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	index, err := lru.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{
		m:     m,
		index: index,
		live:  make(map[atlas.ImageID]*entry),
	}, nil
}

// Digest returns the content key of bmp.
func Digest(bmp *atlas.Bitmap) uint64 {
	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(bmp.Width))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(bmp.Height))
	binary.LittleEndian.PutUint32(hdr[8:], uint32(bmp.Format))

	d := xxhash.New()
	_, _ = d.Write(hdr[:])
	_, _ = d.Write(bmp.Pix)
	return d.Sum64()
}

// Add packs bmp, or takes another reference on an identical image packed
// earlier. Every successful Add must be balanced by one Remove.
func (c *Cache) Add(bmp *atlas.Bitmap) (atlas.Slot, error) {
	if bmp == nil {
		return atlas.Slot{}, atlas.ErrNilBitmap
	}
	key := Digest(bmp)

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.index.Get(key); ok {
		if e, live := c.live[v.(atlas.ImageID)]; live {
			e.refs++
			c.hits++
			return e.slot, nil
		}
		c.index.Remove(key)
	}

	c.misses++
	slot, err := c.m.Add(bmp, 0)
	if err != nil {
		return atlas.Slot{}, err
	}
	c.live[slot.ImageID] = &entry{key: key, slot: slot, refs: 1}
	c.index.Add(key, slot.ImageID)
	toolkit.Logger().Debug("imagecache: packed", "image", slot.ImageID, "atlas", slot.AtlasID,
		"key", key)
	return slot, nil
}

// Remove drops one reference. The image is removed from the manager when
// the last reference goes, and Remove then reports true.
// IDs the cache did not hand out are passed to the manager directly.
func (c *Cache) Remove(id atlas.ImageID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live[id]
	if !ok {
		return c.m.Remove(id)
	}
	e.refs--
	if e.refs > 0 {
		return false
	}
	delete(c.live, id)
	if v, ok := c.index.Peek(e.key); ok && v.(atlas.ImageID) == id {
		c.index.Remove(e.key)
	}
	// The manager holds one reference for Add plus one per mesh.
	for range e.meshes + 1 {
		if c.m.Remove(id) {
			return true
		}
	}
	return false
}

// Refs returns the number of cache references held on id.
func (c *Cache) Refs(id atlas.ImageID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.live[id]; ok {
		return e.refs
	}
	return 0
}

// GenerateMeshData returns the quad mesh of a packed image placed at pos.
// The reference it takes on the image is dropped with the image's last
// cache reference.
func (c *Cache) GenerateMeshData(id atlas.ImageID, pos mesh.Vec2) (mesh.Mesh2D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, ok := c.m.GenerateMeshData(id, pos)
	if ok {
		if e, live := c.live[id]; live {
			e.meshes++
		}
	}
	return out, ok
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Entries: len(c.live)}
}

// Do runs fn with exclusive access to the wrapped manager.
// fn must not call back into the cache.
func (c *Cache) Do(fn func(m *atlas.Manager)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.m)
}
