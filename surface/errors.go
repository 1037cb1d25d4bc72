package surface

import "errors"

// Errors reported by the surface registry and surface state machine.
// Boundary callers map these onto command statuses; none of them is fatal
// to the registry.
var (
	// ErrNotFound is returned when a surface id does not resolve to a
	// live surface.
	ErrNotFound = errors.New("surface: not found")

	// ErrAlreadyExists is returned when creating a surface with an id
	// that is already live.
	ErrAlreadyExists = errors.New("surface: id already exists")

	// ErrInvalidSize is returned when creating a surface with
	// non-positive width or height.
	ErrInvalidSize = errors.New("surface: width and height must be positive")

	// ErrClipStackEmpty is returned by PopClip on an empty clip stack.
	ErrClipStackEmpty = errors.New("surface: clip stack is empty")

	// ErrLayerStackEmpty is returned by PopLayer on an empty layer stack.
	ErrLayerStackEmpty = errors.New("surface: layer stack is empty")
)
