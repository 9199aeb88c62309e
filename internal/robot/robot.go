// Package robot queries screen size and cursor position through the native
// windowing API of the build platform. All results are physical pixels.
package robot
