package display

import (
	"fmt"
	"runtime"

	"github.com/bnema/screenpos/internal/logger"
)

// New picks the backend for the current platform and session:
//
//	linux + x11 session      -> generic backend
//	linux + wayland + hypr   -> Hyprland backend
//	linux + wayland, no hypr -> ErrUnsupported
//	linux, other session     -> ErrUnsupported
//	windows, darwin          -> generic backend
//	anything else            -> ErrUnsupported
//
// Hyprland is recognized by a non-empty instance signature in cfg.
func New(cfg Config) (Display, error) {
	return newBackend(runtime.GOOS, cfg)
}

func newBackend(goos string, cfg Config) (Display, error) {
	switch goos {
	case "linux":
		switch cfg.SessionType {
		case "x11":
			logger.Debug("selecting generic backend", "session", "x11")
			return newGenericBackend()
		case "wayland":
			if cfg.InstanceSignature == "" {
				return nil, fmt.Errorf("%w: wayland compositors other than Hyprland", ErrUnsupported)
			}
			logger.Debug("selecting hyprland backend", "signature", cfg.InstanceSignature)
			return NewHyprland(cfg)
		default:
			return nil, fmt.Errorf("%w: unrecognized session type %q", ErrUnsupported, cfg.SessionType)
		}
	case "windows", "darwin":
		logger.Debug("selecting generic backend", "platform", goos)
		return newGenericBackend()
	default:
		return nil, fmt.Errorf("%w: platform %s", ErrUnsupported, goos)
	}
}
