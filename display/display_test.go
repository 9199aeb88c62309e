package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDisplay implements only the Display capability.
type fakeDisplay struct{}

func (fakeDisplay) CursorPosition() (Point, error) { return Point{}, nil }
func (fakeDisplay) ScreenInfo() (DisplayInfo, error) { return DisplayInfo{}, nil }

// fakeCachingDisplay additionally implements Cacheable.
type fakeCachingDisplay struct {
	fakeDisplay
	refreshed  int
	refreshErr error
}

func (f *fakeCachingDisplay) RefreshScreenInfo() error {
	f.refreshed++
	return f.refreshErr
}

func TestMaybeRefreshScreenInfo(t *testing.T) {
	t.Run("no-op for backends without a cache", func(t *testing.T) {
		ran, err := MaybeRefreshScreenInfo(fakeDisplay{})
		require.NoError(t, err)
		assert.False(t, ran)
	})

	t.Run("refreshes caching backends", func(t *testing.T) {
		d := &fakeCachingDisplay{}
		ran, err := MaybeRefreshScreenInfo(d)
		require.NoError(t, err)
		assert.True(t, ran)
		assert.Equal(t, 1, d.refreshed)
	})

	t.Run("propagates refresh failure", func(t *testing.T) {
		refreshErr := errors.New("compositor went away")
		d := &fakeCachingDisplay{refreshErr: refreshErr}
		ran, err := MaybeRefreshScreenInfo(d)
		assert.True(t, ran)
		require.ErrorIs(t, err, refreshErr)
	})
}
