//go:build !linux && !windows && !darwin

package robot

import "fmt"

func ScreenSize() (width, height int, err error) {
	return 0, 0, fmt.Errorf("screen queries not supported on this platform")
}

func CursorPosition() (x, y int, err error) {
	return 0, 0, fmt.Errorf("cursor queries not supported on this platform")
}
