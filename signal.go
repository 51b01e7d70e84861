package vantage

// Synthetic signal injection. Injected signals are queued and delivered at
// the start of the next [Tour.Update], all within that one frame, exactly
// like signals a host input layer would deliver in a frame burst. This is
// the deterministic path for automated walkthroughs and tests.

// InjectSignal queues an arbitrary signal for the next frame.
func (t *Tour) InjectSignal(sig Signal) {
	t.signalQueue = append(t.signalQueue, sig)
}

// InjectHoverEnter queues a hover-enter signal for the given hotspot.
func (t *Tour) InjectHoverEnter(id HotspotID) {
	t.InjectSignal(Signal{Kind: SignalHoverEnter, Hotspot: id})
}

// InjectHoverExit queues a hover-exit signal for the given hotspot.
func (t *Tour) InjectHoverExit(id HotspotID) {
	t.InjectSignal(Signal{Kind: SignalHoverExit, Hotspot: id})
}

// InjectSelect queues a select-confirmed signal for the given hotspot.
// Queueing two selects before one Update delivers both in the same frame;
// the controller's state machine guarantees at most one of them produces a
// transition.
func (t *Tour) InjectSelect(id HotspotID) {
	t.InjectSignal(Signal{Kind: SignalSelectConfirmed, Hotspot: id})
}

// drainSignals dispatches every queued signal in order. Called once per
// frame from Tour.Update. Signals injected during dispatch are deferred to
// the next frame.
func (t *Tour) drainSignals() {
	if len(t.signalQueue) == 0 {
		return
	}
	pending := t.signalQueue
	t.signalQueue = nil
	for _, sig := range pending {
		t.Dispatch(sig)
	}
}
