package atlas

import (
	"fmt"

	"github.com/gogpu/toolkit"
	"github.com/gogpu/toolkit/mesh"
)

// Manager packs small images into block-partitioned atlases.
//
// Each atlas is divided into equal blocks and every image occupies one block,
// with a one-pixel cleared border on each side. Images are addressed by
// reference-counted image IDs that are reused, lowest first, once released.
//
// Manager is not safe for concurrent use; see the imagecache package for a
// synchronized front end.
type Manager struct {
	atlases    []*atlas
	images     []imageSlot
	freeImages idHeap

	newAtlasSize Size
	policy       AddPolicy
}

// NewManager creates a manager with the default configuration.
func NewManager() *Manager {
	return &Manager{
		newAtlasSize: DefaultSize(),
		policy:       FailOnAddCreates,
	}
}

// NewManagerWithConfig creates a manager with a custom configuration.
func NewManagerWithConfig(cfg Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		newAtlasSize: cfg.NewAtlasSize,
		policy:       cfg.Policy,
	}, nil
}

// CreateAtlas adds an empty atlas and returns its ID.
//
// The atlas starts with an opaque pixel at (0, 0). CreateAtlas returns 0
// and an error wrapping ErrAtlasTooSmall when one block does not fit.
func (m *Manager) CreateAtlas(size Size, format PixelFormat) (AtlasID, error) {
	if err := size.Validate(); err != nil {
		toolkit.Logger().Error("atlas: cannot create atlas", "size", size, "err", err)
		return 0, err
	}
	m.atlases = append(m.atlases, newAtlas(size, format))
	id := AtlasID(len(m.atlases))
	toolkit.Logger().Debug("atlas: created", "id", id, "size", size, "format", format,
		"blocks", size.TotalBlocks())
	return id, nil
}

// SetAddPolicy selects what Add does when every atlas is full.
func (m *Manager) SetAddPolicy(p AddPolicy) {
	m.policy = p
}

// SetNewAtlasSize sets the size of atlases created by Add.
// The block dimensions name the largest image a block holds; the padding
// border is added on top.
func (m *Manager) SetNewAtlasSize(size Size) {
	size.BlockWidth += doublePixelPadding
	size.BlockHeight += doublePixelPadding
	m.newAtlasSize = size
}

// NewAtlasSize returns the size of atlases created by Add, padding included.
func (m *Manager) NewAtlasSize() Size {
	return m.newAtlasSize
}

// CheckAtlas reports whether atlas id can take a width × height image.
//
// found is id when the format matches, a block is free and the image plus
// padding fits in one block; otherwise 0. blockArea is the number of blocks
// the image needs. totalBlocks is set whenever the format matches.
func (m *Manager) CheckAtlas(id AtlasID, width, height int, format PixelFormat) (found AtlasID, blockArea, totalBlocks int) {
	a := m.atlas(id)
	if a == nil {
		toolkit.Logger().Error("atlas: check of unknown atlas", "atlas", id)
		return 0, 0, 0
	}
	if a.format != format {
		return 0, 0, 0
	}
	totalBlocks = a.blocks.total
	if !a.blocks.available() || !a.size.fits(width, height) {
		return 0, 0, totalBlocks
	}
	return id, 1, totalBlocks
}

// Add packs bmp and returns its slot with a reference count of one.
//
// The preferred atlas is tried first when non-zero, then every atlas in
// creation order. When none has room, FailOnAddCreates creates an atlas of
// NewAtlasSize in the bitmap's format and retries; FailOnAddFails returns
// ErrNoSpace.
//
// A bitmap that cannot fit one block of NewAtlasSize returns
// ErrImageTooLarge without creating an atlas, so AtlasCount does not grow.
func (m *Manager) Add(bmp *Bitmap, preferred AtlasID) (Slot, error) {
	if bmp.empty() {
		return Slot{}, ErrNilBitmap
	}
	log := toolkit.Logger()

	var found AtlasID
	if preferred != 0 && m.atlas(preferred) != nil {
		found, _, _ = m.CheckAtlas(preferred, bmp.Width, bmp.Height, bmp.Format)
	}
	for i := 0; found == 0 && i < len(m.atlases); i++ {
		found, _, _ = m.CheckAtlas(AtlasID(i+1), bmp.Width, bmp.Height, bmp.Format)
	}

	if found == 0 {
		if m.policy != FailOnAddCreates {
			log.Warn("atlas: no room for image", "width", bmp.Width, "height", bmp.Height,
				"format", bmp.Format, "policy", m.policy)
			return Slot{}, ErrNoSpace
		}
		if !m.newAtlasSize.fits(bmp.Width, bmp.Height) {
			log.Warn("atlas: image larger than a block", "width", bmp.Width, "height", bmp.Height,
				"size", m.newAtlasSize)
			return Slot{}, fmt.Errorf("%w: %dx%d in %s", ErrImageTooLarge, bmp.Width, bmp.Height, m.newAtlasSize)
		}
		id, err := m.CreateAtlas(m.newAtlasSize, bmp.Format)
		if err != nil {
			return Slot{}, err
		}
		if found, _, _ = m.CheckAtlas(id, bmp.Width, bmp.Height, bmp.Format); found == 0 {
			return Slot{}, ErrNoSpace
		}
	}

	ai := int(found) - 1
	a := m.atlases[ai]
	block, _ := a.blocks.allocate()
	if err := a.upload(bmp, block); err != nil {
		a.blocks.release(block)
		log.Error("atlas: upload failed", "atlas", found, "err", err)
		return Slot{}, err
	}

	i := m.store(imageSlot{
		atlas:  ai,
		blocks: []int{block},
		width:  bmp.Width,
		height: bmp.Height,
		count:  1,
	})
	slot := Slot{ImageID: ImageID(i + 1), AtlasID: found}
	log.Debug("atlas: image added", "image", slot.ImageID, "atlas", slot.AtlasID, "block", block)
	return slot, nil
}

// Upload replaces the pixels of a live image in place.
// The bitmap must match the atlas format and fit in one block.
func (m *Manager) Upload(id ImageID, bmp *Bitmap) error {
	if bmp.empty() {
		return ErrNilBitmap
	}
	i, ok := m.slotAt(id)
	if !ok {
		toolkit.Logger().Error("atlas: upload to invalid image", "image", id)
		return ErrInvalidImage
	}
	s := &m.images[i]
	a := m.atlases[s.atlas]
	if bmp.Format != a.format {
		toolkit.Logger().Error("atlas: cannot upload image with a different pixel format",
			"image", id, "format", bmp.Format, "atlas_format", a.format)
		return ErrPixelFormatMismatch
	}
	if !a.size.fits(bmp.Width, bmp.Height) {
		return ErrImageTooLarge
	}
	if err := a.upload(bmp, s.blocks[0]); err != nil {
		return err
	}
	s.width, s.height = bmp.Width, bmp.Height
	return nil
}

// Remove drops one reference to an image.
//
// When fewer than two references remain the image is released: its count
// becomes zero, its blocks return to the atlas free list and its ID becomes
// reusable. Remove reports whether the image was released. Unknown or
// already released IDs are logged and return false.
func (m *Manager) Remove(id ImageID) bool {
	if id == 0 || int(id) > len(m.images) {
		toolkit.Logger().Error("atlas: asked to free an invalid image", "image", id)
		return false
	}
	i := int(id) - 1
	s := &m.images[i]
	if s.count == 0 {
		toolkit.Logger().Error("atlas: asked to free an image that is already freed", "image", id)
		return false
	}
	s.count--
	if s.count < 2 {
		m.release(i)
		return true
	}
	return false
}

// GenerateMeshData builds the quad mesh for an image placed at pos and
// takes a reference on the image. It returns false for unknown or
// released images.
func (m *Manager) GenerateMeshData(id ImageID, pos mesh.Vec2) (mesh.Mesh2D, bool) {
	i, ok := m.slotAt(id)
	if !ok {
		toolkit.Logger().Error("atlas: mesh requested for invalid image", "image", id)
		return mesh.Mesh2D{}, false
	}
	s := &m.images[i]
	a := m.atlases[s.atlas]

	layout := mesh.Layout{
		AtlasWidth:  a.size.Width,
		AtlasHeight: a.size.Height,
		BlockWidth:  a.size.BlockWidth,
		BlockHeight: a.size.BlockHeight,
	}
	wb := mesh.BlocksFor(s.width, a.size.BlockWidth)
	hb := mesh.BlocksFor(s.height, a.size.BlockHeight)
	out := mesh.Create(layout, s.blocks, s.width, s.height, pos, wb, hb)

	s.count++
	return out, true
}

// Atlas returns the atlas holding an image, or 0 for an unknown or
// released ID.
func (m *Manager) Atlas(id ImageID) AtlasID {
	i, ok := m.slotAt(id)
	if !ok {
		return 0
	}
	return AtlasID(m.images[i].atlas + 1)
}

// Size returns the size of an atlas, or the zero Size for an unknown ID.
func (m *Manager) Size(id AtlasID) Size {
	a := m.atlas(id)
	if a == nil {
		toolkit.Logger().Error("atlas: size of unknown atlas", "atlas", id)
		return Size{}
	}
	return a.size
}

// FreeBlocks returns the number of blocks available in an atlas.
func (m *Manager) FreeBlocks(id AtlasID) int {
	a := m.atlas(id)
	if a == nil {
		toolkit.Logger().Error("atlas: free blocks of unknown atlas", "atlas", id)
		return 0
	}
	return a.blocks.freeCount()
}

// AtlasCount returns the number of atlases created so far.
func (m *Manager) AtlasCount() int {
	return len(m.atlases)
}

// PixelFormat returns the format of an atlas, or L8 for an unknown ID.
func (m *Manager) PixelFormat(id AtlasID) PixelFormat {
	a := m.atlas(id)
	if a == nil {
		toolkit.Logger().Error("atlas: pixel format of unknown atlas", "atlas", id)
		return L8
	}
	return a.format
}

// Pixels returns the backing store of an atlas for upload by the host,
// or nil for an unknown ID. The bitmap is owned by the manager and must
// not be modified.
func (m *Manager) Pixels(id AtlasID) *Bitmap {
	a := m.atlas(id)
	if a == nil {
		return nil
	}
	return a.pixels
}

// DirtyAtlases returns the atlases modified since their last MarkClean.
func (m *Manager) DirtyAtlases() []AtlasID {
	var ids []AtlasID
	for i, a := range m.atlases {
		if a.dirty {
			ids = append(ids, AtlasID(i+1))
		}
	}
	return ids
}

// MarkClean records that the host has uploaded an atlas.
func (m *Manager) MarkClean(id AtlasID) {
	if a := m.atlas(id); a != nil {
		a.dirty = false
	}
}

func (m *Manager) atlas(id AtlasID) *atlas {
	if id == 0 || int(id) > len(m.atlases) {
		return nil
	}
	return m.atlases[id-1]
}
