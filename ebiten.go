package vantage

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// blackPixel is a 1x1 black image scaled to cover the screen by
// EbitenOverlay.
var blackPixel *ebiten.Image

func init() {
	blackPixel = ebiten.NewImage(1, 1)
	blackPixel.Fill(color.Black)
}

// EbitenOverlay is a ready-made [Overlay] for Ebitengine hosts: a
// fullscreen black fill at the coordinator's opacity. Call Draw at the end
// of your Draw pass, after all scene content.
type EbitenOverlay struct {
	opacity float64
}

// NewEbitenOverlay creates a fully transparent overlay.
func NewEbitenOverlay() *EbitenOverlay {
	return &EbitenOverlay{}
}

// SetOpacity implements [Overlay]. Values are clamped to [0, 1].
func (o *EbitenOverlay) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	o.opacity = opacity
}

// Opacity returns the current overlay opacity.
func (o *EbitenOverlay) Opacity() float64 {
	return o.opacity
}

// Draw fills the screen with black at the current opacity. No-op while
// fully transparent.
func (o *EbitenOverlay) Draw(screen *ebiten.Image) {
	if o.opacity <= 0 {
		return
	}
	bounds := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()), float64(bounds.Dy()))
	op.ColorScale.ScaleAlpha(float32(o.opacity))
	screen.DrawImage(blackPixel, op)
}

// FrameDT returns the frame delta time derived from the current Ebitengine
// tick rate, for passing to [Tour.Update].
func FrameDT() float32 {
	return float32(1.0 / float64(ebiten.TPS()))
}
