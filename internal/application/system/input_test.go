package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilequest/internal/domain/entity"
)

func createTestInputSystem(down ...ebiten.Key) *InputSystem {
	sys := NewInputSystem(nil)
	sys.pressed = func(k ebiten.Key) bool {
		for _, d := range down {
			if d == k {
				return true
			}
		}
		return false
	}
	return sys
}

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem(nil)

	require.NotNil(t, sys)
	assert.Equal(t, DefaultBinding, sys.binding)
}

func TestInputSystem_GetInput(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want entity.KeyState
	}{
		{"nothing held", nil, entity.KeyState{}},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, entity.KeyState{Left: true}},
		{"wasd right", []ebiten.Key{ebiten.KeyD}, entity.KeyState{Right: true}},
		{"up and down", []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowDown}, entity.KeyState{Up: true, Down: true}},
		{"unbound key", []ebiten.Key{ebiten.KeySpace}, entity.KeyState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestInputSystem(tt.keys...)
			assert.Equal(t, tt.want, sys.GetInput())
		})
	}
}

func TestInputSystem_CustomBinding(t *testing.T) {
	sys := NewInputSystem(KeyBinding{entity.KeyUp: {ebiten.KeyI}})
	sys.pressed = func(k ebiten.Key) bool { return k == ebiten.KeyI || k == ebiten.KeyW }

	got := sys.GetInput()

	assert.True(t, got.Up)
	assert.False(t, got.Left)
}
