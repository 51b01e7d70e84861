package vantage

import "time"

// TransitionRequest asks the teleporter to move the viewer from one room to
// another. Ephemeral: created when a select is confirmed, consumed by the
// teleporter, discarded after the sequence completes or is rejected.
type TransitionRequest struct {
	Source      RoomID
	Destination RoomID
	Hotspot     HotspotID
	IssuedAt    time.Time
}

// Teleporter sequences the full room transition: fade out, reposition the
// viewer, refresh pointer devices inside the blackout window, fade in, and
// notify the originating controller. At most one transition is in flight
// system-wide; there is only one logical thread, so the Busy rejection is
// the whole mutual-exclusion story.
type Teleporter struct {
	graph   *NavigationGraph
	fade    *FadeCoordinator
	refresh *PointerRefresh
	rig     ViewerRig

	// FadeOutDuration and FadeInDuration are the ramp lengths for the two
	// halves of the blackout window, in time-units.
	FadeOutDuration float32
	FadeInDuration  float32

	// OnArrive fires inside the blackout window, right after the viewer
	// pose is applied. The Tour uses it to track the current room.
	OnArrive func(room *Room)

	// OnComplete fires when the fade-in finishes and the sequence is done.
	OnComplete func(req TransitionRequest)

	// OnAbort fires when a host interruption forces the abort path.
	OnAbort func(req TransitionRequest)

	active  *Sequence
	request TransitionRequest
	origin  *HotspotController
	stats   transitionStats
}

// NewTeleporter wires a teleporter to its collaborators. rig may be nil
// (headless tests); refresh may be nil to skip the pointer protocol.
func NewTeleporter(graph *NavigationGraph, fade *FadeCoordinator, refresh *PointerRefresh, rig ViewerRig) *Teleporter {
	return &Teleporter{
		graph:           graph,
		fade:            fade,
		refresh:         refresh,
		rig:             rig,
		FadeOutDuration: DefaultFadeOutDuration,
		FadeInDuration:  DefaultFadeInDuration,
	}
}

// InFlight reports whether a transition sequence is currently running.
func (t *Teleporter) InFlight() bool {
	return t.active != nil
}

// Request validates and, if possible, begins a transition. origin may be
// nil for requests issued outside a hotspot controller.
//
// The destination must resolve in the graph; otherwise the request is
// rejected with an UnknownRoomError and nothing else happens (overlay stays
// clear, no cooldown is charged). If another transition is in flight the
// request returns Busy and the running sequence is unaffected.
func (t *Teleporter) Request(req TransitionRequest, origin *HotspotController) (Result, error) {
	dest, err := t.graph.Resolve(req.Destination)
	if err != nil {
		return Rejected, err
	}
	if t.active != nil {
		return Busy, nil
	}

	t.request = req
	t.origin = origin
	t.stats = transitionStats{started: time.Now()}

	var blackout []Step
	if t.refresh != nil {
		blackout = t.refresh.Steps()
	}
	t.active = t.fade.FadeOutThenIn(t.FadeOutDuration, t.FadeInDuration, func() {
		if t.rig != nil {
			t.rig.SetPose(dest.Pose)
		}
		if t.OnArrive != nil {
			t.OnArrive(dest)
		}
	}, blackout...)

	return Accepted, nil
}

// Update advances the active sequence by one frame. No-op when idle.
func (t *Teleporter) Update(dt float32) {
	if t.active == nil {
		return
	}
	t.stats.frames++
	if !t.active.Update(dt) {
		return
	}

	req, origin := t.request, t.origin
	t.active = nil
	t.origin = nil

	debugLogTransition(req, t.stats)
	if origin != nil {
		origin.transitionCompleted()
	}
	if t.OnComplete != nil {
		t.OnComplete(req)
	}
}

// Abort recovers from a host-level interruption (e.g. the application lost
// focus mid-fade). The overlay is forced clear, any devices left disabled
// by an interrupted refresh are restored, and the originating controller is
// reset so nothing is left stuck in Pending or Cooldown. Emits OnAbort in
// place of OnComplete. No-op when idle.
//
// There is no user-facing cancel: a cooldown is a timeout, not a
// cancellation, and it never reaches this path.
func (t *Teleporter) Abort() {
	if t.active == nil {
		return
	}

	req, origin := t.request, t.origin
	t.active = nil
	t.origin = nil

	t.fade.ForceClear()
	if t.refresh != nil {
		t.refresh.Restore()
	}
	if origin != nil {
		origin.transitionAborted()
	}
	if t.OnAbort != nil {
		t.OnAbort(req)
	}
}
