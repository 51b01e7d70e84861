package vantage

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a tour script.
type scriptStep struct {
	Action  string `json:"action"`
	Hotspot string `json:"hotspot,omitempty"`
	Frames  int    `json:"frames,omitempty"`
}

// tourScript is the top-level JSON structure for a tour script.
type tourScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences hover/select signals and frame waits across frames
// for automated walkthrough testing. Attach to a Tour via SetScriptRunner.
//
// Supported actions: "hover", "unhover", "select" (each with a "hotspot"),
// and "wait" (with "frames").
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON tour script and returns a ScriptRunner ready to
// be attached to a Tour via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script tourScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse tour script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse tour script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the tour. The runner's step
// method is called from Tour.Update before queued signals are delivered
// each frame.
func (t *Tour) SetScriptRunner(runner *ScriptRunner) {
	t.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the script runner by one frame. Called from Tour.Update.
func (r *ScriptRunner) step(t *Tour) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "hover":
		t.InjectHoverEnter(HotspotID(st.Hotspot))
	case "unhover":
		t.InjectHoverExit(HotspotID(st.Hotspot))
	case "select":
		t.InjectSelect(HotspotID(st.Hotspot))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
