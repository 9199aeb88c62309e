// Package display answers "where is the cursor, and how big is the screen"
// in physical pixels, across display server backends.
package display

// Point is a cursor position. Whether it is in layout space (compositor
// global coordinates, post-scale) or physical space (device pixels) depends
// on where it came from; the two must not be mixed.
type Point struct {
	X int
	Y int
}

// DisplayInfo describes the configured real resolution and scale factor of
// a single monitor. Width and Height are physical pixels; Scale is the
// compositor scale factor, 1 meaning no scaling.
type DisplayInfo struct {
	Width  int
	Height int
	Scale  float64
}

// Display is the capability every backend provides.
type Display interface {
	// CursorPosition returns the cursor position in physical pixels.
	CursorPosition() (Point, error)

	// ScreenInfo returns the resolution and scale of the primary monitor.
	ScreenInfo() (DisplayInfo, error)
}

// Cacheable is implemented only by backends that keep a cached copy of
// their screen info. Backends without a cache simply don't expose it.
type Cacheable interface {
	// RefreshScreenInfo replaces the cached screen info with a fresh
	// fetch. On failure the old cache is left intact.
	RefreshScreenInfo() error
}

// MaybeRefreshScreenInfo refreshes d's cached screen info if d caches one,
// and is a no-op otherwise. It reports whether a refresh actually ran.
func MaybeRefreshScreenInfo(d Display) (bool, error) {
	c, ok := d.(Cacheable)
	if !ok {
		return false, nil
	}
	if err := c.RefreshScreenInfo(); err != nil {
		return true, err
	}
	return true, nil
}
