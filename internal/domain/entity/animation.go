package entity

import "math"

// Frames per direction in every character sheet
const FramesPerDirection = 3

// Animator selects the frame to display from a real-valued phase.
// It holds no images; callers index their own frame tables with the result.
type Animator struct {
	Phase     float64
	IdleFrame int
}

// Advance returns the frame for this tick.
// While idle the phase resets and IdleFrame is shown. While moving the
// current floor(Phase) is shown, then Phase grows by step and wraps at frameCount.
func (a *Animator) Advance(moving bool, frameCount int, step float64) int {
	if !moving || frameCount <= 0 {
		a.Phase = 0
		return a.IdleFrame
	}

	frame := int(math.Floor(a.Phase))
	if frame >= frameCount {
		frame = 0
	}
	a.Phase += step
	if a.Phase >= float64(frameCount) {
		a.Phase = 0
	}
	return frame
}
