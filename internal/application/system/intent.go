package system

import "github.com/younwookim/tilequest/internal/domain/entity"

// MoveIntent is the displacement a controller requests for one tick
type MoveIntent struct {
	DX, DY float64 // pixels
	Facing entity.Direction
}

// WalkIntent is a step of speed*dt pixels along d
func WalkIntent(d entity.Direction, speed, dt float64) MoveIntent {
	ux, uy := d.Unit()
	return MoveIntent{DX: ux * speed * dt, DY: uy * speed * dt, Facing: d}
}

// KeyIntent turns held keys into a walk. Only one key counts, in the
// priority left, right, up, down. Reports false when no key is held.
func KeyIntent(keys entity.KeyState, speed, dt float64) (MoveIntent, bool) {
	for _, k := range [4]entity.Key{entity.KeyLeft, entity.KeyRight, entity.KeyUp, entity.KeyDown} {
		if keys.IsHeld(k) {
			return WalkIntent(keyDirection(k), speed, dt), true
		}
	}
	return MoveIntent{}, false
}

// ApplyTo sets the body's displacement and facing
func (m MoveIntent) ApplyTo(b *entity.Body) {
	b.DX, b.DY = m.DX, m.DY
	b.Facing = m.Facing
}

func keyDirection(k entity.Key) entity.Direction {
	switch k {
	case entity.KeyLeft:
		return entity.DirLeft
	case entity.KeyRight:
		return entity.DirRight
	case entity.KeyUp:
		return entity.DirUp
	default:
		return entity.DirDown
	}
}
