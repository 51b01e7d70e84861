package vantage

// PointerRefresh discards stale pointer targeting state after an
// instantaneous viewpoint jump. Devices that were mid-hover or mid-select
// against the old geometry are disabled, held off for a fixed number of
// frames while the host's interaction bookkeeping clears, re-enabled, and
// given one further frame for visual rays to rebuild against the new
// geometry.
//
// Best effort: a device that disappears between disable and re-enable (e.g.
// unplugged) is skipped, not an error. With no input layer or no active
// devices the protocol still runs its fixed waits and completes.
type PointerRefresh struct {
	devices InputDevices

	// DisabledFrames is how many frames devices stay disabled. Tunable per
	// host; the default is empirically enough for interaction bookkeeping
	// to clear.
	DisabledFrames int

	// RebuildFrames is how many frames to wait after re-enabling before
	// the protocol reports complete.
	RebuildFrames int

	disabled []DeviceID
}

// NewPointerRefresh creates a refresh protocol over the given device layer.
// devices may be nil.
func NewPointerRefresh(devices InputDevices) *PointerRefresh {
	return &PointerRefresh{
		devices:        devices,
		DisabledFrames: DefaultDisabledFrames,
		RebuildFrames:  DefaultRebuildFrames,
	}
}

// Steps returns the protocol as an ordered list of steps for embedding in a
// larger sequence: disable, wait, re-enable, wait.
func (p *PointerRefresh) Steps() []Step {
	return []Step{
		Do(p.disableAll),
		WaitFrames(p.DisabledFrames),
		Do(p.enableAll),
		WaitFrames(p.RebuildFrames),
	}
}

// Run returns the protocol as a standalone sequence. Advance it with
// Update(dt) once per frame until done.
func (p *PointerRefresh) Run() *Sequence {
	return NewSequence(p.Steps()...)
}

// Restore re-enables any devices left disabled by an interrupted run.
// Called from the teleporter's abort path.
func (p *PointerRefresh) Restore() {
	p.enableAll()
}

func (p *PointerRefresh) disableAll() {
	p.disabled = p.disabled[:0]
	if p.devices == nil {
		return
	}
	for _, id := range p.devices.ListActiveDevices() {
		if p.devices.SetDeviceEnabled(id, false) {
			p.disabled = append(p.disabled, id)
		}
	}
}

func (p *PointerRefresh) enableAll() {
	if p.devices != nil {
		for _, id := range p.disabled {
			// Vanished devices report false here; skip them.
			p.devices.SetDeviceEnabled(id, true)
		}
	}
	p.disabled = p.disabled[:0]
}
