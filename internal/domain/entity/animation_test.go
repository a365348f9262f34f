package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimator_IdleResetsPhase(t *testing.T) {
	tests := []struct {
		name string
		idle int
	}{
		{"player idles on frame 0", 0},
		{"enemy idles on frame 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Animator{Phase: 1.6, IdleFrame: tt.idle}

			frame := a.Advance(false, 3, 0.2)

			assert.Equal(t, tt.idle, frame)
			assert.Equal(t, 0.0, a.Phase)
		})
	}
}

func TestAnimator_CyclesFrames(t *testing.T) {
	a := Animator{}

	var frames []int
	for i := 0; i < 31; i++ {
		frames = append(frames, a.Advance(true, 3, 0.2))
	}

	// 0.2 per tick: each frame shows for ~5 ticks and the cycle repeats
	assert.Equal(t, 0, frames[0])
	assert.Contains(t, frames[3:8], 1)
	assert.Contains(t, frames[8:13], 2)
	assert.Equal(t, 0, frames[16])

	seen := map[int]bool{}
	for i, f := range frames {
		assert.GreaterOrEqual(t, f, 0)
		assert.Less(t, f, 3)
		if i > 0 {
			prev := frames[i-1]
			assert.True(t, f == prev || f == (prev+1)%3, "frame jumped from %d to %d", prev, f)
		}
		seen[f] = true
	}
	assert.Len(t, seen, 3)
}

func TestAnimator_PhaseWraps(t *testing.T) {
	a := Animator{Phase: 2.9}

	frame := a.Advance(true, 3, 0.2)

	assert.Equal(t, 2, frame)
	assert.Equal(t, 0.0, a.Phase)
}

func TestAnimator_Deterministic(t *testing.T) {
	pattern := []bool{true, true, false, true, true, true, true, false, true}

	run := func() []int {
		a := Animator{IdleFrame: 1}
		out := make([]int, 0, len(pattern))
		for _, moving := range pattern {
			out = append(out, a.Advance(moving, 3, 0.4))
		}
		return out
	}

	assert.Equal(t, run(), run())
}
