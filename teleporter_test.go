package vantage

import (
	"errors"
	"fmt"
	"testing"
)

// journal records the interleaving of host-facing effects so sequence
// ordering can be asserted.
type journal struct {
	entries []string
}

func (j *journal) add(entry string) {
	j.entries = append(j.entries, entry)
}

func (j *journal) indexOf(entry string) int {
	for i, e := range j.entries {
		if e == entry {
			return i
		}
	}
	return -1
}

type journalOverlay struct{ j *journal }

func (o journalOverlay) SetOpacity(opacity float64) {
	o.j.add(fmt.Sprintf("opacity:%.2f", opacity))
}

type journalRig struct{ j *journal }

func (r journalRig) SetPose(pose Pose) {
	r.j.add("pose")
}

type journalDevices struct {
	j   *journal
	ids []DeviceID
}

func (d journalDevices) ListActiveDevices() []DeviceID { return d.ids }

func (d journalDevices) SetDeviceEnabled(id DeviceID, enabled bool) bool {
	if enabled {
		d.j.add("enable:" + string(id))
	} else {
		d.j.add("disable:" + string(id))
	}
	return true
}

func TestTeleporterSequenceOrdering(t *testing.T) {
	j := &journal{}
	fade := NewFadeCoordinator(journalOverlay{j})
	fade.SettleFrames = 1
	refresh := NewPointerRefresh(journalDevices{j: j, ids: []DeviceID{"wand"}})
	tp := NewTeleporter(buildTestGraph(), fade, refresh, journalRig{j})
	tp.FadeOutDuration = 0.2
	tp.FadeInDuration = 0.2

	result, err := tp.Request(TransitionRequest{Source: "A", Destination: "B"}, nil)
	if result != Accepted || err != nil {
		t.Fatalf("Request = %v, %v", result, err)
	}

	for frame := 0; tp.InFlight(); frame++ {
		tp.Update(0.1)
		if frame > 100 {
			t.Fatal("transition never completed")
		}
	}

	// Strict order: fully opaque -> reposition -> disable -> enable ->
	// opacity dropping -> fully clear.
	opaque := j.indexOf("opacity:1.00")
	pose := j.indexOf("pose")
	disable := j.indexOf("disable:wand")
	enable := j.indexOf("enable:wand")
	clear := j.indexOf("opacity:0.00")
	for name, idx := range map[string]int{
		"opaque": opaque, "pose": pose, "disable": disable, "enable": enable, "clear": clear,
	} {
		if idx < 0 {
			t.Fatalf("journal missing %s entry: %v", name, j.entries)
		}
	}
	if !(opaque < pose && pose < disable && disable < enable && enable < clear) {
		t.Errorf("out-of-order transition journal: %v", j.entries)
	}

	// No opacity below 1 between blackout start and device re-enable.
	for i := opaque + 1; i < enable; i++ {
		var v float64
		if n, _ := fmt.Sscanf(j.entries[i], "opacity:%f", &v); n == 1 && v < 1 {
			t.Errorf("opacity dropped to %v during blackout: %v", v, j.entries)
		}
	}
}

func TestTeleporterUnknownDestination(t *testing.T) {
	fade := NewFadeCoordinator(nil)
	tp := NewTeleporter(buildTestGraph(), fade, nil, nil)

	result, err := tp.Request(TransitionRequest{Source: "A", Destination: "Z"}, nil)
	if result != Rejected {
		t.Errorf("result = %v, want Rejected", result)
	}
	var unknown UnknownRoomError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownRoomError, got %v", err)
	}
	if fade.Opacity() != 0 {
		t.Errorf("opacity = %v after rejection, want 0", fade.Opacity())
	}
	if tp.InFlight() {
		t.Error("rejected request left a sequence in flight")
	}
}

func TestTeleporterBusyLeavesFirstUnaffected(t *testing.T) {
	rig := &recordRig{}
	fade := NewFadeCoordinator(nil)
	fade.SettleFrames = 0
	tp := NewTeleporter(buildTestGraph(), fade, nil, rig)
	tp.FadeOutDuration = 0.1
	tp.FadeInDuration = 0.1

	if result, _ := tp.Request(TransitionRequest{Source: "A", Destination: "B"}, nil); result != Accepted {
		t.Fatalf("first request = %v, want Accepted", result)
	}

	result, err := tp.Request(TransitionRequest{Source: "B", Destination: "C"}, nil)
	if result != Busy || err != nil {
		t.Fatalf("second request = %v, %v, want Busy, nil", result, err)
	}

	for frame := 0; tp.InFlight(); frame++ {
		tp.Update(0.1)
		if frame > 100 {
			t.Fatal("first transition never completed")
		}
	}

	pose, ok := rig.last()
	if !ok {
		t.Fatal("viewer never repositioned")
	}
	roomB, _ := tp.graph.Resolve("B")
	if pose != roomB.Pose {
		t.Errorf("viewer pose = %+v, want room B pose %+v", pose, roomB.Pose)
	}
	if len(rig.poses) != 1 {
		t.Errorf("viewer repositioned %d times, want 1", len(rig.poses))
	}
}

func TestTeleporterPoseAppliedWhileOpaque(t *testing.T) {
	fade := NewFadeCoordinator(nil)
	fade.SettleFrames = 2
	rig := &recordRig{}
	var opacityAtPose float64 = -1
	rig.onApply = func() { opacityAtPose = fade.Opacity() }

	tp := NewTeleporter(buildTestGraph(), fade, nil, rig)
	tp.FadeOutDuration = 0.3
	tp.FadeInDuration = 0.3
	tp.Request(TransitionRequest{Source: "A", Destination: "B"}, nil)

	for frame := 0; tp.InFlight(); frame++ {
		tp.Update(0.1)
		if frame > 100 {
			t.Fatal("transition never completed")
		}
	}

	if opacityAtPose != 1.0 {
		t.Errorf("opacity at reposition = %v, want exactly 1.0", opacityAtPose)
	}
}

func TestTeleporterCompletionCallback(t *testing.T) {
	fade := NewFadeCoordinator(nil)
	fade.SettleFrames = 0
	tp := NewTeleporter(buildTestGraph(), fade, nil, nil)
	tp.FadeOutDuration = 0.1
	tp.FadeInDuration = 0.1

	var completed []TransitionRequest
	tp.OnComplete = func(req TransitionRequest) { completed = append(completed, req) }

	tp.Request(TransitionRequest{Source: "A", Destination: "B", Hotspot: "a-b"}, nil)
	for frame := 0; tp.InFlight(); frame++ {
		tp.Update(0.1)
		if frame > 100 {
			t.Fatal("transition never completed")
		}
	}

	if len(completed) != 1 {
		t.Fatalf("OnComplete fired %d times, want 1", len(completed))
	}
	if completed[0].Destination != "B" || completed[0].Hotspot != "a-b" {
		t.Errorf("completed request = %+v", completed[0])
	}
	if fade.Opacity() != 0 {
		t.Errorf("opacity = %v after completion, want 0", fade.Opacity())
	}
}

func TestTeleporterAbort(t *testing.T) {
	devices := newFakeDevices("wand")
	fade := NewFadeCoordinator(nil)
	fade.SettleFrames = 0
	refresh := NewPointerRefresh(devices)
	tp := NewTeleporter(buildTestGraph(), fade, refresh, nil)
	tp.FadeOutDuration = 0.2
	tp.FadeInDuration = 0.2

	ctrl := NewHotspotController("a-b", ConnectionPoint{Target: "B", Hotspot: "a-b"}, tp, nil)
	ctrl.HoverEnter()
	ctrl.Select("A")

	var aborted int
	tp.OnAbort = func(req TransitionRequest) { aborted++ }

	// Interrupt mid-blackout, with the device disabled.
	tp.Update(0.1)
	tp.Update(0.1)
	tp.Update(0.1)
	tp.Abort()

	if tp.InFlight() {
		t.Error("Abort left the transition in flight")
	}
	if fade.Opacity() != 0 {
		t.Errorf("opacity = %v after Abort, want 0", fade.Opacity())
	}
	if !devices.enabled["wand"] {
		t.Error("Abort left a device disabled")
	}
	if ctrl.Phase() != PhaseIdle {
		t.Errorf("controller phase = %v after Abort, want Idle", ctrl.Phase())
	}
	if aborted != 1 {
		t.Errorf("OnAbort fired %d times, want 1", aborted)
	}
}

func TestTeleporterAbortWhenIdle(t *testing.T) {
	fade := NewFadeCoordinator(nil)
	tp := NewTeleporter(buildTestGraph(), fade, nil, nil)

	tp.OnAbort = func(TransitionRequest) { t.Error("OnAbort fired with nothing in flight") }
	tp.Abort()
}
