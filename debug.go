package vantage

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Tour debug flag so that
// controllers (which lack a Tour pointer) can check it cheaply. Only valid
// with a single Tour; multiple Tours with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// transitionStats holds per-transition timing metrics. Only meaningful when
// debug mode is on; the fields are cheap enough to track regardless.
type transitionStats struct {
	started time.Time
	frames  int
}

// debugLogStaleSignal reports a signal that arrived in a phase with no
// transition for it. Non-fatal diagnostic, never surfaced to the caller.
func debugLogStaleSignal(id HotspotID, kind SignalKind, phase Phase) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[vantage] stale %v on hotspot %q ignored (phase %v)\n",
		kind, string(id), phase)
}

// debugLogRejected reports a teleport request the teleporter refused.
func debugLogRejected(id HotspotID, err error) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[vantage] teleport from hotspot %q rejected: %v\n",
		string(id), err)
}

// debugLogDropped reports a signal the tour router discarded before it
// reached a controller.
func debugLogDropped(sig Signal, reason string) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[vantage] %v on hotspot %q dropped: %s\n",
		sig.Kind, string(sig.Hotspot), reason)
}

// debugLogTransition prints timing for a completed transition sequence.
func debugLogTransition(req TransitionRequest, stats transitionStats) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[vantage] transition %q -> %q: %d frames, %v\n",
		string(req.Source), string(req.Destination), stats.frames, time.Since(stats.started))
}
