package vantage

// Step is one stage of a frame-stepped sequence. Update is called once per
// frame with the frame's delta time and returns true when the step has
// completed. A step that returns true on its first call consumes no frames;
// the sequence moves on within the same frame.
type Step interface {
	Update(dt float32) bool
}

// StepFunc adapts a plain function to the Step interface.
type StepFunc func(dt float32) bool

// Update calls f.
func (f StepFunc) Update(dt float32) bool {
	return f(dt)
}

// Do returns a Step that runs fn once and completes within the same frame.
func Do(fn func()) Step {
	return StepFunc(func(dt float32) bool {
		fn()
		return true
	})
}

// WaitFrames returns a Step that consumes n frame boundaries before
// completing. WaitFrames(0) completes immediately.
func WaitFrames(n int) Step {
	remaining := n
	return StepFunc(func(dt float32) bool {
		if remaining <= 0 {
			return true
		}
		remaining--
		return false
	})
}

// Sequence runs an ordered list of steps, one after another, advanced once
// per frame. No step begins before its predecessor fully completes; steps
// that finish without consuming the frame let their successor run in the
// same frame.
//
// There is no global sequence manager: owners call Update themselves.
type Sequence struct {
	steps  []Step
	cursor int
	done   bool
}

// NewSequence creates a sequence from the given steps. An empty sequence is
// immediately done.
func NewSequence(steps ...Step) *Sequence {
	return &Sequence{steps: steps, done: len(steps) == 0}
}

// Append adds steps to the end of the sequence. Appending to a finished
// sequence revives it.
func (s *Sequence) Append(steps ...Step) {
	s.steps = append(s.steps, steps...)
	if len(steps) > 0 {
		s.done = false
	}
}

// Update advances the sequence by one frame and reports whether it has
// finished. The current step receives this frame's dt; if it completes
// without consuming the frame, following steps run with dt = 0 until one
// suspends or the sequence ends.
func (s *Sequence) Update(dt float32) bool {
	if s.done {
		return true
	}
	frameDT := dt
	for s.cursor < len(s.steps) {
		if !s.steps[s.cursor].Update(frameDT) {
			return false
		}
		s.cursor++
		// The frame's dt belongs to the step that consumed it.
		frameDT = 0
	}
	s.done = true
	return true
}

// Done reports whether every step has completed.
func (s *Sequence) Done() bool {
	return s.done
}
