//go:build windows

package robot

import (
	"fmt"

	"github.com/lxn/win"
)

// ScreenSize returns the primary display dimensions in pixels.
func ScreenSize() (width, height int, err error) {
	w := win.GetSystemMetrics(win.SM_CXSCREEN)
	h := win.GetSystemMetrics(win.SM_CYSCREEN)
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("GetSystemMetrics returned %dx%d", w, h)
	}
	return int(w), int(h), nil
}

// CursorPosition returns the cursor position in screen coordinates.
func CursorPosition() (x, y int, err error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, fmt.Errorf("GetCursorPos failed")
	}
	return int(pt.X), int(pt.Y), nil
}
