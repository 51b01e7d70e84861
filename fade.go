package vantage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeCoordinator drives the host overlay's opacity between 0 (clear) and 1
// (fully opaque) over configurable durations. It owns the opacity value
// exclusively; nothing else writes it.
//
// Fades are [Step] values advanced by the owning sequence once per frame,
// sampled linearly. On completion the opacity is snapped exactly to the
// target, so a fade-out followed by a fade-in returns to exactly 0.
type FadeCoordinator struct {
	overlay Overlay
	opacity float64

	// SettleFrames is how many frames FadeOutThenIn holds fully opaque
	// after the blackout action before fading back in.
	SettleFrames int
}

// NewFadeCoordinator creates a coordinator for the given overlay. The
// overlay may be nil (headless tests); the opacity value is still tracked.
func NewFadeCoordinator(overlay Overlay) *FadeCoordinator {
	return &FadeCoordinator{
		overlay:      overlay,
		SettleFrames: DefaultSettleFrames,
	}
}

// Opacity returns the current overlay opacity in [0, 1].
func (f *FadeCoordinator) Opacity() float64 {
	return f.opacity
}

// Intercepting reports whether the overlay is consuming pointer interaction.
// Any opacity above zero blocks scene-directed input, so events generated
// during the black-screen window can never trigger a teleport.
func (f *FadeCoordinator) Intercepting() bool {
	return f.opacity > 0
}

// ForceClear snaps the opacity to 0 immediately. Abort path only; normal
// transitions always ramp.
func (f *FadeCoordinator) ForceClear() {
	f.setOpacity(0)
}

// FadeOut returns a Step that ramps opacity from its current value to 1
// over duration time-units.
func (f *FadeCoordinator) FadeOut(duration float32) Step {
	return f.fadeTo(1, duration)
}

// FadeIn returns a Step that ramps opacity from its current value to 0
// over duration time-units.
func (f *FadeCoordinator) FadeIn(duration float32) Step {
	return f.fadeTo(0, duration)
}

// FadeOutThenIn composes a full blackout window: fade out over outDuration,
// invoke action once while fully opaque, hold for SettleFrames, run any
// blackout steps (still opaque), then fade in over inDuration.
//
// The action runs in the same frame the fade-out completes and must be fast
// (repositioning, not loading): it executes at the head of a visually blank
// window.
func (f *FadeCoordinator) FadeOutThenIn(outDuration, inDuration float32, action func(), blackout ...Step) *Sequence {
	steps := make([]Step, 0, 4+len(blackout))
	steps = append(steps, f.FadeOut(outDuration))
	if action != nil {
		steps = append(steps, Do(action))
	}
	steps = append(steps, WaitFrames(f.SettleFrames))
	steps = append(steps, blackout...)
	steps = append(steps, f.FadeIn(inDuration))
	return NewSequence(steps...)
}

// fadeTo builds a Step interpolating opacity toward target. The tween is
// created on the step's first Update so it starts from the opacity current
// at run time, not at construction time.
func (f *FadeCoordinator) fadeTo(target float64, duration float32) Step {
	var tw *gween.Tween
	return StepFunc(func(dt float32) bool {
		if tw == nil {
			if f.opacity == target {
				return true
			}
			tw = gween.New(float32(f.opacity), float32(target), duration, ease.Linear)
		}
		value, finished := tw.Update(dt)
		if finished {
			// Snap to the exact target; float32 interpolation drifts.
			f.setOpacity(target)
			return true
		}
		f.setOpacity(float64(value))
		return false
	})
}

func (f *FadeCoordinator) setOpacity(value float64) {
	f.opacity = value
	if f.overlay != nil {
		f.overlay.SetOpacity(value)
	}
}
