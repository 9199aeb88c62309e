package display

import "errors"

var (
	// ErrUnsupported means the platform/session combination has no backend.
	ErrUnsupported = errors.New("no display backend for this platform")

	// ErrConnect means the control socket could not be dialed.
	ErrConnect = errors.New("cannot connect to control socket")

	// ErrExchange means a write or read on an established control socket
	// connection failed.
	ErrExchange = errors.New("control socket exchange failed")

	// ErrMonitorNotFound means the compositor reported no monitor with id 0.
	ErrMonitorNotFound = errors.New("no monitor with id 0")

	// ErrAmbiguousMonitor means more than one monitor claimed id 0, which
	// the compositor should never produce.
	ErrAmbiguousMonitor = errors.New("multiple monitors with id 0")

	// ErrBadPoint means a cursor position reply was not an "<x>, <y>" pair.
	ErrBadPoint = errors.New("malformed cursor position")
)
