// Package logging builds the charmbracelet/log loggers used across tuidesk.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const logRelPath = "tuidesk/tuidesk.log"

// New returns a timestamped stderr logger, for servers and CLI commands.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// NewFile returns a debug-level logger appending to the tuidesk log file in
// the XDG state directory. The desktop owns the terminal, so it cannot log
// to stderr. The returned closer closes the file.
func NewFile(prefix string) (*log.Logger, io.Closer, error) {
	path, err := Path()
	if err != nil {
		return nil, nil, err
	}

	// #nosec G304 - path is derived from the XDG state directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// Path returns the log file location, creating its directory.
func Path() (string, error) {
	path, err := xdg.StateFile(logRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to get log path: %w", err)
	}
	return path, nil
}
