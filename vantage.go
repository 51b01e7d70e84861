package vantage

// RoomID identifies a room (a fixed vantage point) within a NavigationGraph.
// Stable for the lifetime of a session.
type RoomID string

// HotspotID identifies a selectable hotspot. The scene graph owns the visual
// object; vantage only keys controllers and connection back-references by it.
type HotspotID string

// DeviceID identifies a pointer/interaction device reported by the host
// input layer.
type DeviceID string

// Vec3 is a 3D vector used for positions and anchor offsets.
type Vec3 struct {
	X, Y, Z float64
}

// Pose is a viewer placement: a position plus an orientation as Euler angles
// (pitch, yaw, roll in radians). Vantage never does math on poses; it hands
// them to the host [ViewerRig] verbatim.
type Pose struct {
	Position    Vec3
	Orientation Vec3
}

// Phase is the interaction state of a single hotspot.
type Phase uint8

const (
	PhaseIdle     Phase = iota // selectable, no pointer over it
	PhaseHovered               // pointer over it, select would fire
	PhasePending               // select issued, waiting for the teleporter's verdict
	PhaseCooldown              // transition running or recently finished
)

// String returns the phase name for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseHovered:
		return "Hovered"
	case PhasePending:
		return "Pending"
	case PhaseCooldown:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// VisualState is the visual treatment a hotspot's host object should show.
type VisualState uint8

const (
	VisualIdle      VisualState = iota // resting appearance
	VisualHover                        // pointer-over highlight
	VisualActivated                    // selected, transition pending or running
)

// Result is the teleporter's verdict on a transition request.
type Result uint8

const (
	Accepted Result = iota // transition sequence started
	Busy                   // another transition is in flight; request dropped
	Rejected               // request invalid (see the accompanying error)
	Ignored                // stale signal, dropped without side effects
)

// String returns the result name for diagnostics.
func (r Result) String() string {
	switch r {
	case Accepted:
		return "Accepted"
	case Busy:
		return "Busy"
	case Rejected:
		return "Rejected"
	case Ignored:
		return "Ignored"
	default:
		return "Unknown"
	}
}

// SignalKind identifies a kind of hotspot interaction signal from the host
// input layer.
type SignalKind uint8

const (
	SignalHoverEnter      SignalKind = iota // pointer moved onto the hotspot
	SignalHoverExit                         // pointer moved off the hotspot
	SignalSelectConfirmed                   // user confirmed a selection
)

// String returns the signal kind name for diagnostics.
func (k SignalKind) String() string {
	switch k {
	case SignalHoverEnter:
		return "HoverEnter"
	case SignalHoverExit:
		return "HoverExit"
	case SignalSelectConfirmed:
		return "SelectConfirmed"
	default:
		return "Unknown"
	}
}

// Signal is one hotspot interaction signal, tagged with the hotspot it
// targets. Host input layers construct these; tests inject them.
type Signal struct {
	Kind    SignalKind
	Hotspot HotspotID
}

// --- Host interfaces ---

// Overlay is the host's fullscreen dimming surface. SetOpacity is called
// once per frame while a fade is running, with values in [0, 1].
type Overlay interface {
	SetOpacity(opacity float64)
}

// ViewerRig repositions the host's viewer entity. SetPose is called exactly
// once per transition, while the overlay is fully opaque.
type ViewerRig interface {
	SetPose(pose Pose)
}

// InputDevices is the host's pointer device registry, used by the pointer
// refresh protocol. SetDeviceEnabled returns false if the device no longer
// exists (e.g. unplugged mid-protocol); such devices are skipped.
type InputDevices interface {
	ListActiveDevices() []DeviceID
	SetDeviceEnabled(id DeviceID, enabled bool) bool
}

// HotspotVisual receives visual state changes for one hotspot. Implemented
// by the host scene object representing the hotspot. May be nil.
type HotspotVisual interface {
	SetVisualState(state VisualState)
}

// --- Event bridge ---

// EventStore is the interface for optional ECS integration. When set on a
// Tour, interaction and transition events are forwarded to it. The donburi
// adapter lives in vantage/ecs.
type EventStore interface {
	EmitEvent(event TourEvent)
}

// TourEventKind identifies a kind of tour event.
type TourEventKind uint8

const (
	EventHoverEnter        TourEventKind = iota // hotspot entered hover
	EventHoverExit                              // hotspot left hover
	EventSelect                                 // selection confirmed on a hovered hotspot
	EventTeleportAccepted                       // transition sequence started
	EventTeleportCompleted                      // fade-in finished
	EventTeleportAborted                        // host interruption forced the abort path
	EventSignalDropped                          // stale/duplicate signal discarded
)

// TourEvent carries tour interaction data for the event bridge.
type TourEvent struct {
	Kind    TourEventKind
	Hotspot HotspotID
	From    RoomID
	To      RoomID
}

// --- Defaults ---

const (
	// DefaultCooldown is how long a hotspot stays unselectable after a
	// confirmed selection, in time-units (seconds under a real clock).
	DefaultCooldown float32 = 2.0

	// DefaultFadeOutDuration and DefaultFadeInDuration are the dimming ramp
	// lengths in time-units.
	DefaultFadeOutDuration float32 = 0.4
	DefaultFadeInDuration  float32 = 0.4

	// DefaultSettleFrames is how many frames the screen holds fully opaque
	// after the blackout action before anything else runs.
	DefaultSettleFrames = 2

	// DefaultDisabledFrames is how many frames pointer devices stay disabled
	// during the refresh protocol. Enough for the host's interaction
	// bookkeeping to clear; tune per host.
	DefaultDisabledFrames = 2

	// DefaultRebuildFrames is how many frames the refresh protocol waits
	// after re-enabling devices, so visual rays rebuild against the new
	// geometry.
	DefaultRebuildFrames = 1
)
