package vantage

import "time"

// HotspotController runs the interaction state machine for one hotspot. It
// consumes hover and select signals, gates re-selection with a cooldown, and
// issues a [TransitionRequest] to the teleporter on a confirmed selection.
//
// The state record is owned exclusively by its controller and never shared.
// A pointing device's hover/select events can arrive out of order or be
// duplicated across frame boundaries; the state machine's job is to make at
// most one teleport result from any burst of such signals.
type HotspotController struct {
	// Hotspot is the identity this controller is bound to.
	Hotspot HotspotID

	// Connection is the graph link this hotspot activates.
	Connection ConnectionPoint

	// Cooldown is how long the hotspot stays unselectable after a confirmed
	// selection, in time-units.
	Cooldown float32

	visual     HotspotVisual
	teleporter *Teleporter

	phase             Phase
	cooldownRemaining float32
	completed         bool
}

// NewHotspotController binds a hotspot identity to a connection point.
// visual may be nil. Prefer [Tour.BindHotspot] unless you are wiring
// components by hand.
func NewHotspotController(id HotspotID, conn ConnectionPoint, teleporter *Teleporter, visual HotspotVisual) *HotspotController {
	return &HotspotController{
		Hotspot:    id,
		Connection: conn,
		Cooldown:   DefaultCooldown,
		visual:     visual,
		teleporter: teleporter,
	}
}

// Phase returns the controller's current interaction phase.
func (c *HotspotController) Phase() Phase {
	return c.phase
}

// HoverEnter moves an idle hotspot to Hovered and applies the hover visual.
// Ignored in any other phase.
func (c *HotspotController) HoverEnter() {
	if c.phase != PhaseIdle {
		return
	}
	c.phase = PhaseHovered
	c.setVisual(VisualHover)
}

// HoverExit reverts a hovered hotspot to Idle. Ignored in any other phase:
// a Pending or Cooldown hotspot keeps its activated visual until the
// transition completes.
func (c *HotspotController) HoverExit() {
	if c.phase != PhaseHovered {
		return
	}
	c.phase = PhaseIdle
	c.setVisual(VisualIdle)
}

// Select confirms a selection with the given source room. Only a Hovered
// hotspot can be selected; anything else is a stale or duplicate signal
// (e.g. a device still "pressed" across a viewpoint jump) and is dropped
// with a diagnostic, returning Ignored.
//
// On acceptance the controller enters Cooldown immediately. On Busy the
// in-flight transition is unaffected and the controller returns to Hovered.
// On rejection (unknown destination) the controller returns straight to
// Idle: no cooldown is charged for a request that did nothing.
func (c *HotspotController) Select(source RoomID) Result {
	if c.phase != PhaseHovered {
		debugLogStaleSignal(c.Hotspot, SignalSelectConfirmed, c.phase)
		return Ignored
	}

	c.phase = PhasePending
	c.setVisual(VisualActivated)

	result, err := c.teleporter.Request(TransitionRequest{
		Source:      source,
		Destination: c.Connection.Target,
		Hotspot:     c.Hotspot,
		IssuedAt:    time.Now(),
	}, c)

	switch result {
	case Accepted:
		c.phase = PhaseCooldown
		c.cooldownRemaining = c.Cooldown
		c.completed = false
	case Busy:
		c.phase = PhaseHovered
		c.setVisual(VisualHover)
	default:
		debugLogRejected(c.Hotspot, err)
		c.phase = PhaseIdle
		c.setVisual(VisualIdle)
	}
	return result
}

// Update advances the cooldown timer. The controller returns to Idle only
// when the timer has expired AND the teleporter has signalled completion,
// whichever is later, so a re-selection can never fire into a
// still-transitioning view.
func (c *HotspotController) Update(dt float32) {
	if c.phase != PhaseCooldown {
		return
	}
	if c.cooldownRemaining > 0 {
		c.cooldownRemaining -= dt
	}
	if c.cooldownRemaining <= 0 && c.completed {
		c.release()
	}
}

// transitionCompleted is called by the teleporter when the fade-in finishes.
func (c *HotspotController) transitionCompleted() {
	c.completed = true
	if c.phase == PhaseCooldown && c.cooldownRemaining <= 0 {
		c.release()
	}
}

// transitionAborted is called by the teleporter's abort path. The controller
// must never be left stuck in Pending or Cooldown.
func (c *HotspotController) transitionAborted() {
	c.completed = true
	c.cooldownRemaining = 0
	if c.phase == PhaseCooldown || c.phase == PhasePending {
		c.release()
	}
}

func (c *HotspotController) release() {
	c.phase = PhaseIdle
	c.setVisual(VisualIdle)
}

func (c *HotspotController) setVisual(state VisualState) {
	if c.visual != nil {
		c.visual.SetVisualState(state)
	}
}
