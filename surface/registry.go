package surface

import (
	"sync"

	"github.com/gogpu/easel"
)

// Registry owns every live surface, keyed by a caller-assigned 32-bit id.
//
// An id maps to at most one live surface at a time. Destroying a surface
// frees its id for immediate reuse; a stale id simply resolves to
// ErrNotFound. One mutex over the table serializes all mutating access,
// which satisfies the per-surface exclusion requirement since every
// operation goes through the registry.
type Registry struct {
	mu       sync.Mutex
	surfaces map[uint32]*Surface
	ras      Rasterizer
}

// NewRegistry creates an empty registry whose surfaces draw through the
// given rasterizer.
func NewRegistry(ras Rasterizer) *Registry {
	return &Registry{
		surfaces: make(map[uint32]*Surface),
		ras:      ras,
	}
}

// Create allocates a new surface under id with a zeroed pixel buffer.
// It returns ErrAlreadyExists if id is currently live (the existing
// surface is untouched) and ErrInvalidSize for non-positive dimensions.
func (r *Registry) Create(id uint32, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.surfaces[id]; ok {
		return ErrAlreadyExists
	}
	r.surfaces[id] = newSurface(width, height, r.ras)

	easel.Logger().Info("surface created", "id", id, "width", width, "height", height)
	return nil
}

// Destroy releases the surface under id and frees the id for reuse.
// Returns ErrNotFound if id is not live.
func (r *Registry) Destroy(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.surfaces[id]; !ok {
		return ErrNotFound
	}
	delete(r.surfaces, id)

	easel.Logger().Info("surface destroyed", "id", id)
	return nil
}

// Update runs fn against the surface under id while holding the registry
// lock, serializing it against every other operation. Returns ErrNotFound
// without calling fn if id is not live.
func (r *Registry) Update(id uint32, fn func(*Surface) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.surfaces[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

// Size returns the dimensions of the surface under id.
func (r *Registry) Size(id uint32) (width, height int, err error) {
	err = r.Update(id, func(s *Surface) error {
		width, height = s.Width(), s.Height()
		return nil
	})
	return width, height, err
}

// Pixels returns a copy of the packed premultiplied ARGB pixel buffer of
// the surface under id.
func (r *Registry) Pixels(id uint32) ([]uint32, error) {
	var out []uint32
	err := r.Update(id, func(s *Surface) error {
		data := s.Pixmap().Data()
		out = make([]uint32, len(data))
		copy(out, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Snapshot returns a deep copy of the pixmap of the surface under id.
func (r *Registry) Snapshot(id uint32) (*Pixmap, error) {
	var pm *Pixmap
	err := r.Update(id, func(s *Surface) error {
		pm = s.Pixmap().Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

// Count returns the number of live surfaces.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.surfaces)
}
