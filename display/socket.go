package display

import (
	"fmt"
	"net"

	"github.com/bnema/screenpos/internal/logger"
)

// sendCommand performs one request/response exchange with the Hyprland
// control socket: dial, write the command, read a single reply, close.
// Every call opens its own connection; Hyprland serves one request per
// connection.
//
// The reply is read with a single receive into a bufSize buffer. A reply
// larger than bufSize is silently truncated rather than read to EOF; the
// buffer sizes in hyprland.go are large enough that this never matters in
// practice, and a bounded read cannot block on a lingering connection.
func sendCommand(socketPath, command string, bufSize int) (string, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrConnect, socketPath, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(command)); err != nil {
		return "", fmt.Errorf("%w: write %q: %w", ErrExchange, command, err)
	}

	buf := make([]byte, bufSize)
	n, err := conn.Read(buf)
	if err != nil {
		return "", fmt.Errorf("%w: read %q reply: %w", ErrExchange, command, err)
	}

	logger.Debug("control socket exchange", "command", command, "reply_bytes", n)
	return string(buf[:n]), nil
}
