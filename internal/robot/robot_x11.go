//go:build linux

package robot

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// On Linux the generic path is only selected for X11 sessions, so both
// queries go straight to the X server. A connection is opened per call; these
// are not hot-path operations.

// ScreenSize returns the root window dimensions in pixels.
func ScreenSize() (width, height int, err error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return 0, 0, fmt.Errorf("connect to X server: %w", err)
	}
	defer xu.Conn().Close()

	screen := xu.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

// CursorPosition returns the pointer position relative to the root window.
func CursorPosition() (x, y int, err error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return 0, 0, fmt.Errorf("connect to X server: %w", err)
	}
	defer xu.Conn().Close()

	pointer, err := xproto.QueryPointer(xu.Conn(), xu.RootWin()).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), nil
}
