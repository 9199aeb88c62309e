package display

import (
	"fmt"

	"github.com/bnema/screenpos/internal/robot"
)

// genericBackend serves X11, Windows and macOS through the native queries
// in the robot package. Those report physical pixels directly, so no layout
// conversion happens and the scale is always 1. It keeps no cache and
// therefore does not implement Cacheable.
type genericBackend struct{}

func newGenericBackend() (Display, error) {
	return genericBackend{}, nil
}

func (genericBackend) ScreenInfo() (DisplayInfo, error) {
	w, h, err := robot.ScreenSize()
	if err != nil {
		return DisplayInfo{}, fmt.Errorf("query screen size: %w", err)
	}
	return DisplayInfo{Width: w, Height: h, Scale: 1}, nil
}

func (genericBackend) CursorPosition() (Point, error) {
	x, y, err := robot.CursorPosition()
	if err != nil {
		return Point{}, fmt.Errorf("query cursor position: %w", err)
	}
	return Point{X: x, Y: y}, nil
}
