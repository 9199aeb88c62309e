package display

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/screenpos/internal/logger"
)

const (
	// Commands understood by the Hyprland control socket. The "j" prefix
	// selects JSON output, mirroring `hyprctl monitors -j`.
	cursorPosCommand = "/cursorpos"
	monitorsCommand  = "j/monitors"

	// Reply buffer sizes per command. See sendCommand for truncation behavior.
	cursorPosBufSize = 512
	monitorsBufSize  = 4096
)

// hyprMonitor matches one element of the `j/monitors` reply. Only id,
// width, height and scale are load-bearing; whatever other fields Hyprland
// sends are ignored.
type hyprMonitor struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Scale     float64 `json:"scale"`
	Transform int     `json:"transform"`
	Focused   bool    `json:"focused"`
}

// HyprlandBackend talks to the Hyprland compositor over its control socket.
//
// Hyprland reports the cursor in layout coordinates, so conversion to
// physical pixels needs the monitor scale. To avoid a second socket round
// trip on every cursor query, the scale is cached at construction and only
// updated when RefreshScreenInfo is called; CursorPosition keeps using the
// stale cache if the monitor configuration changed in between.
type HyprlandBackend struct {
	socketPath string

	mu     sync.RWMutex
	cached DisplayInfo
}

// NewHyprland connects to the Hyprland instance described by cfg and seeds
// the screen info cache with one blocking fetch. If the compositor is
// unreachable or its monitor list violates the single-id-0 invariant, no
// backend is returned.
func NewHyprland(cfg Config) (*HyprlandBackend, error) {
	b := &HyprlandBackend{socketPath: cfg.hyprlandSocketPath()}

	info, err := b.ScreenInfo()
	if err != nil {
		return nil, fmt.Errorf("hyprland backend: %w", err)
	}
	b.cached = info

	logger.Debug("hyprland backend ready",
		"socket", b.socketPath,
		"width", info.Width, "height", info.Height, "scale", info.Scale)
	return b, nil
}

// ScreenInfo fetches the monitor list and returns the resolution and scale
// of the monitor with id 0. It does not touch the cache; callers that want
// the cache updated use RefreshScreenInfo.
func (b *HyprlandBackend) ScreenInfo() (DisplayInfo, error) {
	reply, err := sendCommand(b.socketPath, monitorsCommand, monitorsBufSize)
	if err != nil {
		return DisplayInfo{}, err
	}

	var monitors []hyprMonitor
	if err := json.Unmarshal([]byte(reply), &monitors); err != nil {
		return DisplayInfo{}, fmt.Errorf("parse monitor list: %w", err)
	}

	var matched []hyprMonitor
	for _, m := range monitors {
		if m.ID == 0 {
			matched = append(matched, m)
		}
	}
	switch len(matched) {
	case 0:
		return DisplayInfo{}, ErrMonitorNotFound
	case 1:
	default:
		return DisplayInfo{}, fmt.Errorf("%w: got %d", ErrAmbiguousMonitor, len(matched))
	}

	m := matched[0]
	return DisplayInfo{Width: m.Width, Height: m.Height, Scale: m.Scale}, nil
}

// CursorPosition queries the cursor and converts it to physical pixels
// using the cached screen info. The cache may be stale; callers that need
// an up-to-date scale call RefreshScreenInfo first.
func (b *HyprlandBackend) CursorPosition() (Point, error) {
	reply, err := sendCommand(b.socketPath, cursorPosCommand, cursorPosBufSize)
	if err != nil {
		return Point{}, err
	}

	p, err := ParsePoint(reply)
	if err != nil {
		return Point{}, err
	}

	b.mu.RLock()
	info := b.cached
	b.mu.RUnlock()
	return p.ToPhysical(info), nil
}

// RefreshScreenInfo replaces the cached screen info with a fresh fetch.
// On failure the previous cache stays in place.
func (b *HyprlandBackend) RefreshScreenInfo() error {
	info, err := b.ScreenInfo()
	if err != nil {
		return fmt.Errorf("refresh screen info: %w", err)
	}

	b.mu.Lock()
	b.cached = info
	b.mu.Unlock()
	return nil
}

var (
	_ Display   = (*HyprlandBackend)(nil)
	_ Cacheable = (*HyprlandBackend)(nil)
)
