//go:build darwin

package robot

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

static CGPoint cursorLocation(void) {
	CGEventRef event = CGEventCreate(NULL);
	CGPoint loc = CGEventGetLocation(event);
	CFRelease(event);
	return loc;
}
*/
import "C"
import "fmt"

// ScreenSize returns the main display dimensions in pixels.
func ScreenSize() (width, height int, err error) {
	display := C.CGMainDisplayID()
	w := int(C.CGDisplayPixelsWide(display))
	h := int(C.CGDisplayPixelsHigh(display))
	if w == 0 || h == 0 {
		return 0, 0, fmt.Errorf("main display reported %dx%d", w, h)
	}
	return w, h, nil
}

// CursorPosition returns the cursor position in global display coordinates.
func CursorPosition() (x, y int, err error) {
	loc := C.cursorLocation()
	return int(loc.x), int(loc.y), nil
}
