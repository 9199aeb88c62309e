package display

import (
	"os"
	"path/filepath"
)

// Config carries the session signals the backend selector and the Hyprland
// backend consume. Constructors take a Config instead of reading the
// process environment themselves, so tests can build deterministic
// instances without mutating env vars.
type Config struct {
	// SessionType is the windowing session on Linux, "x11" or "wayland".
	SessionType string

	// RuntimeDir and InstanceSignature locate the Hyprland control
	// socket: ${RuntimeDir}/hypr/${InstanceSignature}/.socket.sock.
	RuntimeDir        string
	InstanceSignature string

	// SocketPath, when set, overrides the derived Hyprland socket path.
	SocketPath string
}

// ConfigFromEnv builds a Config from the process environment. Unset
// variables become empty strings, which for the Hyprland socket path yields
// a nonexistent path and a dial failure at construction.
func ConfigFromEnv() Config {
	return Config{
		SessionType:       os.Getenv("XDG_SESSION_TYPE"),
		RuntimeDir:        os.Getenv("XDG_RUNTIME_DIR"),
		InstanceSignature: os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"),
	}
}

func (c Config) hyprlandSocketPath() string {
	if c.SocketPath != "" {
		return c.SocketPath
	}
	return filepath.Join(c.RuntimeDir, "hypr", c.InstanceSignature, ".socket.sock")
}
