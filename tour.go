package vantage

// Tour is the top-level object that owns the navigation graph, the fade
// coordinator, the teleporter, the pointer refresh protocol, and the
// hotspot controller registry. Hosts construct one Tour, author the graph,
// bind hotspots, and call [Tour.Update] once per frame.
//
// All collaborators are constructed here and passed to dependents
// explicitly; there is no global discovery.
type Tour struct {
	graph       *NavigationGraph
	fade        *FadeCoordinator
	refresh     *PointerRefresh
	teleporter  *Teleporter
	controllers map[HotspotID]*HotspotController

	rig     ViewerRig
	store   EventStore
	current RoomID

	signalQueue []Signal
	script      *ScriptRunner
	debug       bool
}

// TourConfig carries the host collaborators for a Tour. Any field may be
// nil: a nil Overlay still tracks opacity, a nil Rig skips repositioning,
// and a nil Devices layer makes the refresh protocol a pure frame wait.
type TourConfig struct {
	Overlay Overlay
	Rig     ViewerRig
	Devices InputDevices
}

// NewTour creates a tour with an empty graph and wires the transition
// pipeline to the given host collaborators.
func NewTour(cfg TourConfig) *Tour {
	t := &Tour{
		graph:       NewNavigationGraph(),
		controllers: make(map[HotspotID]*HotspotController),
		rig:         cfg.Rig,
	}
	t.fade = NewFadeCoordinator(cfg.Overlay)
	t.refresh = NewPointerRefresh(cfg.Devices)
	t.teleporter = NewTeleporter(t.graph, t.fade, t.refresh, cfg.Rig)

	t.teleporter.OnArrive = func(room *Room) {
		t.current = room.ID
	}
	t.teleporter.OnComplete = func(req TransitionRequest) {
		t.emitEvent(TourEvent{Kind: EventTeleportCompleted, Hotspot: req.Hotspot, From: req.Source, To: req.Destination})
	}
	t.teleporter.OnAbort = func(req TransitionRequest) {
		t.emitEvent(TourEvent{Kind: EventTeleportAborted, Hotspot: req.Hotspot, From: req.Source, To: req.Destination})
	}
	return t
}

// Graph returns the tour's navigation graph for authoring.
func (t *Tour) Graph() *NavigationGraph {
	return t.graph
}

// Fade returns the tour's fade coordinator.
func (t *Tour) Fade() *FadeCoordinator {
	return t.fade
}

// Refresh returns the tour's pointer refresh protocol.
func (t *Tour) Refresh() *PointerRefresh {
	return t.refresh
}

// Teleporter returns the tour's teleporter.
func (t *Tour) Teleporter() *Teleporter {
	return t.teleporter
}

// CurrentRoom returns the id of the room the viewer is in, or "" before
// EnterRoom has been called.
func (t *Tour) CurrentRoom() RoomID {
	return t.current
}

// EnterRoom places the viewer in a room without a transition. Initial
// placement at tour start; returns an UnknownRoomError if the id does not
// resolve.
func (t *Tour) EnterRoom(id RoomID) error {
	room, err := t.graph.Resolve(id)
	if err != nil {
		return err
	}
	if t.rig != nil {
		t.rig.SetPose(room.Pose)
	}
	t.current = room.ID
	return nil
}

// BindHotspot creates and registers a controller for the given hotspot
// identity. The stored connection carries the hotspot id as its
// back-reference. visual may be nil. Rebinding an id replaces the previous
// controller.
func (t *Tour) BindHotspot(id HotspotID, conn ConnectionPoint, visual HotspotVisual) *HotspotController {
	conn.Hotspot = id
	ctrl := NewHotspotController(id, conn, t.teleporter, visual)
	t.controllers[id] = ctrl
	return ctrl
}

// AddConnection authors a graph connection and binds its hotspot in one
// call. conn.Hotspot must be set; it becomes the controller's identity.
func (t *Tour) AddConnection(from RoomID, conn ConnectionPoint, visual HotspotVisual) (*HotspotController, error) {
	if err := t.graph.AddConnection(from, conn); err != nil {
		return nil, err
	}
	return t.BindHotspot(conn.Hotspot, conn, visual), nil
}

// Controller returns the controller bound to a hotspot id, or nil.
func (t *Tour) Controller(id HotspotID) *HotspotController {
	return t.controllers[id]
}

// Dispatch routes one signal to its hotspot controller immediately. Signals
// are dropped (with a diagnostic, never an error) when the overlay is
// intercepting pointer interaction or when the hotspot is unknown: during a
// blackout window the host input layer may still be emitting events against
// stale geometry.
func (t *Tour) Dispatch(sig Signal) {
	if t.fade.Intercepting() {
		debugLogDropped(sig, "overlay intercepting")
		t.emitEvent(TourEvent{Kind: EventSignalDropped, Hotspot: sig.Hotspot, From: t.current})
		return
	}
	ctrl, ok := t.controllers[sig.Hotspot]
	if !ok {
		debugLogDropped(sig, "unknown hotspot")
		t.emitEvent(TourEvent{Kind: EventSignalDropped, Hotspot: sig.Hotspot, From: t.current})
		return
	}

	switch sig.Kind {
	case SignalHoverEnter:
		ctrl.HoverEnter()
		t.emitEvent(TourEvent{Kind: EventHoverEnter, Hotspot: sig.Hotspot, From: t.current})
	case SignalHoverExit:
		ctrl.HoverExit()
		t.emitEvent(TourEvent{Kind: EventHoverExit, Hotspot: sig.Hotspot, From: t.current})
	case SignalSelectConfirmed:
		source := t.current
		t.emitEvent(TourEvent{Kind: EventSelect, Hotspot: sig.Hotspot, From: source})
		if ctrl.Select(source) == Accepted {
			t.emitEvent(TourEvent{
				Kind:    EventTeleportAccepted,
				Hotspot: sig.Hotspot,
				From:    source,
				To:      ctrl.Connection.Target,
			})
		}
	}
}

// Update advances the tour by one frame: the script runner takes a step,
// queued signals are delivered, the active transition (if any) advances,
// and hotspot cooldowns tick down.
func (t *Tour) Update(dt float32) {
	if t.script != nil {
		t.script.step(t)
	}
	t.drainSignals()
	t.teleporter.Update(dt)
	for _, ctrl := range t.controllers {
		ctrl.Update(dt)
	}
}

// Abort recovers from a host-level interruption; see [Teleporter.Abort].
func (t *Tour) Abort() {
	t.teleporter.Abort()
}

// SetEventStore sets the optional ECS bridge.
func (t *Tour) SetEventStore(store EventStore) {
	t.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, dropped
// signals and per-transition timing stats are logged to stderr.
func (t *Tour) SetDebugMode(enabled bool) {
	t.debug = enabled
	globalDebug = enabled
}

func (t *Tour) emitEvent(event TourEvent) {
	if t.store != nil {
		t.store.EmitEvent(event)
	}
}
