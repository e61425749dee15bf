// Package tui runs particle scenes on terminal streams: the local frame
// loop, static previews and the SSH server for remote viewing.
package tui

import (
	"time"

	"github.com/vovakirdan/tui-particles/internal/core"
)

// frameTicker returns a ticker that fires once per frame at the configured rate.
// Missed ticks are dropped, so a slow frame never causes a catch-up burst.
func frameTicker(cfg core.RuntimeConfig) *time.Ticker {
	return time.NewTicker(cfg.FrameInterval())
}
