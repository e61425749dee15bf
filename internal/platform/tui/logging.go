package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w at the named level
// (debug, info, warn, error).
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}
