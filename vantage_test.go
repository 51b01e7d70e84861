package vantage

// Shared test doubles for the host interfaces.

// recordOverlay records every opacity write.
type recordOverlay struct {
	opacity float64
	writes  []float64
}

func (o *recordOverlay) SetOpacity(opacity float64) {
	o.opacity = opacity
	o.writes = append(o.writes, opacity)
}

// recordRig records pose applications and can observe state at apply time.
type recordRig struct {
	poses   []Pose
	onApply func()
}

func (r *recordRig) SetPose(pose Pose) {
	r.poses = append(r.poses, pose)
	if r.onApply != nil {
		r.onApply()
	}
}

func (r *recordRig) last() (Pose, bool) {
	if len(r.poses) == 0 {
		return Pose{}, false
	}
	return r.poses[len(r.poses)-1], true
}

// fakeDevices is an in-memory device registry. Removing an id simulates a
// device unplugged mid-protocol.
type fakeDevices struct {
	active  []DeviceID
	enabled map[DeviceID]bool
	calls   []string
}

func newFakeDevices(ids ...DeviceID) *fakeDevices {
	d := &fakeDevices{active: ids, enabled: make(map[DeviceID]bool)}
	for _, id := range ids {
		d.enabled[id] = true
	}
	return d
}

func (d *fakeDevices) ListActiveDevices() []DeviceID {
	return append([]DeviceID(nil), d.active...)
}

func (d *fakeDevices) SetDeviceEnabled(id DeviceID, enabled bool) bool {
	if _, ok := d.enabled[id]; !ok {
		return false
	}
	d.enabled[id] = enabled
	if enabled {
		d.calls = append(d.calls, "enable:"+string(id))
	} else {
		d.calls = append(d.calls, "disable:"+string(id))
	}
	return true
}

func (d *fakeDevices) unplug(id DeviceID) {
	for i, a := range d.active {
		if a == id {
			d.active = append(d.active[:i], d.active[i+1:]...)
			break
		}
	}
	delete(d.enabled, id)
}

// recordVisual records visual state changes for one hotspot.
type recordVisual struct {
	state   VisualState
	changes []VisualState
}

func (v *recordVisual) SetVisualState(state VisualState) {
	v.state = state
	v.changes = append(v.changes, state)
}

// recordStore records emitted tour events.
type recordStore struct {
	events []TourEvent
}

func (s *recordStore) EmitEvent(event TourEvent) {
	s.events = append(s.events, event)
}

// buildTestGraph authors a three-room chain: A linked both ways with B,
// B linked both ways with C.
func buildTestGraph() *NavigationGraph {
	g := NewNavigationGraph()
	_ = g.AddRoom(&Room{ID: "A", Pose: Pose{Position: Vec3{X: 1}}})
	_ = g.AddRoom(&Room{ID: "B", Pose: Pose{Position: Vec3{X: 2}}})
	_ = g.AddRoom(&Room{ID: "C", Pose: Pose{Position: Vec3{X: 3}}})
	_ = g.AddConnection("A", ConnectionPoint{Target: "B", Hotspot: "a-b"})
	_ = g.AddConnection("B", ConnectionPoint{Target: "A", Hotspot: "b-a"})
	_ = g.AddConnection("B", ConnectionPoint{Target: "C", Hotspot: "b-c"})
	_ = g.AddConnection("C", ConnectionPoint{Target: "B", Hotspot: "c-b"})
	return g
}

// runFrames advances the tour a fixed number of frames at the given dt.
func runFrames(t *Tour, frames int, dt float32) {
	for i := 0; i < frames; i++ {
		t.Update(dt)
	}
}
