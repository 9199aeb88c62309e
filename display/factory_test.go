package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendSelection(t *testing.T) {
	srv, socketPath := newFakeHyprServer(t)
	srv.set(monitorsReply, "")

	t.Run("linux x11 picks generic", func(t *testing.T) {
		d, err := newBackend("linux", Config{SessionType: "x11"})
		require.NoError(t, err)
		_, caching := d.(Cacheable)
		assert.False(t, caching, "generic backend must not expose a cache")
	})

	t.Run("linux wayland with hyprland signature picks hyprland", func(t *testing.T) {
		cfg := Config{SessionType: "wayland", InstanceSignature: "sig0123", SocketPath: socketPath}
		d, err := newBackend("linux", cfg)
		require.NoError(t, err)
		_, ok := d.(*HyprlandBackend)
		assert.True(t, ok)
	})

	t.Run("linux wayland without signature is unsupported", func(t *testing.T) {
		_, err := newBackend("linux", Config{SessionType: "wayland"})
		require.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("linux with unknown session is unsupported", func(t *testing.T) {
		_, err := newBackend("linux", Config{SessionType: "tty"})
		require.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("windows picks generic", func(t *testing.T) {
		d, err := newBackend("windows", Config{})
		require.NoError(t, err)
		_, caching := d.(Cacheable)
		assert.False(t, caching)
	})

	t.Run("darwin picks generic", func(t *testing.T) {
		d, err := newBackend("darwin", Config{})
		require.NoError(t, err)
		_, caching := d.(Cacheable)
		assert.False(t, caching)
	})

	t.Run("everything else is unsupported", func(t *testing.T) {
		_, err := newBackend("plan9", Config{})
		require.ErrorIs(t, err, ErrUnsupported)
	})
}
