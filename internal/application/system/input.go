package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilequest/internal/domain/entity"
)

// InputSource produces one key snapshot per tick
type InputSource interface {
	GetInput() entity.KeyState
}

// KeyBinding maps a logical key to the physical keys that hold it
type KeyBinding map[entity.Key][]ebiten.Key

// DefaultBinding binds both the arrow keys and WASD
var DefaultBinding = KeyBinding{
	entity.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	entity.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	entity.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	entity.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// InputSystem reads the keyboard
type InputSystem struct {
	binding KeyBinding
	pressed func(ebiten.Key) bool
}

// NewInputSystem creates a keyboard input source. A nil binding uses DefaultBinding.
func NewInputSystem(binding KeyBinding) *InputSystem {
	if binding == nil {
		binding = DefaultBinding
	}
	return &InputSystem{
		binding: binding,
		pressed: ebiten.IsKeyPressed,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() entity.KeyState {
	return entity.KeyState{
		Left:  s.held(entity.KeyLeft),
		Right: s.held(entity.KeyRight),
		Up:    s.held(entity.KeyUp),
		Down:  s.held(entity.KeyDown),
	}
}

func (s *InputSystem) held(k entity.Key) bool {
	for _, key := range s.binding[k] {
		if s.pressed(key) {
			return true
		}
	}
	return false
}
