package config

import "testing"

func TestGetDefaultsToEnvironment(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123")

	Set(nil)
	got := Get().DisplayConfig()

	if got.SessionType != "wayland" {
		t.Errorf("SessionType = %q, want wayland", got.SessionType)
	}
	if got.RuntimeDir != "/run/user/1000" {
		t.Errorf("RuntimeDir = %q, want /run/user/1000", got.RuntimeDir)
	}
	if got.InstanceSignature != "abc123" {
		t.Errorf("InstanceSignature = %q, want abc123", got.InstanceSignature)
	}
}

func TestDisplayConfigConversion(t *testing.T) {
	c := &Config{
		Display: DisplayConfig{
			SessionType:       "x11",
			RuntimeDir:        "/run/user/1000",
			InstanceSignature: "sig",
			SocketPath:        "/tmp/ctl.sock",
		},
	}

	got := c.DisplayConfig()
	if got.SessionType != "x11" || got.RuntimeDir != "/run/user/1000" ||
		got.InstanceSignature != "sig" || got.SocketPath != "/tmp/ctl.sock" {
		t.Errorf("DisplayConfig() = %+v", got)
	}
}
