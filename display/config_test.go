package display

import (
	"path/filepath"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123")

	cfg := ConfigFromEnv()

	if cfg.SessionType != "wayland" {
		t.Errorf("SessionType = %q, want wayland", cfg.SessionType)
	}
	if cfg.RuntimeDir != "/run/user/1000" {
		t.Errorf("RuntimeDir = %q, want /run/user/1000", cfg.RuntimeDir)
	}
	if cfg.InstanceSignature != "abc123" {
		t.Errorf("InstanceSignature = %q, want abc123", cfg.InstanceSignature)
	}
}

func TestHyprlandSocketPath(t *testing.T) {
	cfg := Config{RuntimeDir: "/run/user/1000", InstanceSignature: "abc123"}

	want := filepath.Join("/run/user/1000", "hypr", "abc123", ".socket.sock")
	if got := cfg.hyprlandSocketPath(); got != want {
		t.Errorf("hyprlandSocketPath() = %q, want %q", got, want)
	}
}

func TestHyprlandSocketPathOverride(t *testing.T) {
	cfg := Config{
		RuntimeDir:        "/run/user/1000",
		InstanceSignature: "abc123",
		SocketPath:        "/tmp/test.sock",
	}

	if got := cfg.hyprlandSocketPath(); got != "/tmp/test.sock" {
		t.Errorf("hyprlandSocketPath() = %q, want /tmp/test.sock", got)
	}
}

// Unset environment yields empty path components, which produces a path
// that cannot exist and therefore a dial failure rather than a panic.
func TestConfigFromEnvUnset(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	cfg := ConfigFromEnv()
	if got := cfg.hyprlandSocketPath(); got != filepath.Join("hypr", ".socket.sock") {
		t.Errorf("hyprlandSocketPath() = %q", got)
	}
}
