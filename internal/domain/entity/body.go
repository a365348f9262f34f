package entity

import (
	"image"
	"math"
)

// Body is the movable state shared by the player and enemies.
// Rectangles are whole pixels; motion smaller than a pixel accumulates in
// the remainder and is rounded before it touches the hitbox.
type Body struct {
	Rect   image.Rectangle // draw rectangle
	Hitbox image.Rectangle // collision rectangle, same top-left as Rect after a move
	Facing Direction

	DX, DY     float64 // displacement requested this tick (pixels)
	RemX, RemY float64 // sub-pixel remainder

	Anim  Animator
	Frame int
}

// NewBody places a body with its top-left at pixel (x, y)
func NewBody(x, y, w, h, hitW, hitH int, facing Direction) Body {
	return Body{
		Rect:   image.Rect(x, y, x+w, y+h),
		Hitbox: image.Rect(x, y, x+hitW, y+hitH),
		Facing: facing,
	}
}

// Displacement returns the requested displacement on one axis
func (b *Body) Displacement(axis Axis) float64 {
	if axis == AxisX {
		return b.DX
	}
	return b.DY
}

// Cancel zeroes the displacement and the remainder on one axis
func (b *Body) Cancel(axis Axis) {
	if axis == AxisX {
		b.DX, b.RemX = 0, 0
		return
	}
	b.DY, b.RemY = 0, 0
}

// TakeStep converts the axis displacement into whole pixels, keeping the
// fraction for later ticks. An axis without displacement drops its remainder.
func (b *Body) TakeStep(axis Axis) int {
	d, rem := &b.DX, &b.RemX
	if axis == AxisY {
		d, rem = &b.DY, &b.RemY
	}
	if *d == 0 {
		*rem = 0
		return 0
	}
	*rem += *d
	n := math.Round(*rem)
	*rem -= n
	return int(n)
}

// SyncRect moves the draw rectangle to the hitbox's top-left
func (b *Body) SyncRect() {
	b.Rect = b.Rect.Add(b.Hitbox.Min.Sub(b.Rect.Min))
}

// IsMoving reports whether any displacement survived collision this tick
func (b *Body) IsMoving() bool {
	return b.DX != 0 || b.DY != 0
}

// Cell returns the grid cell holding the hitbox centre
func (b *Body) Cell(tileSize int) image.Point {
	c := b.Hitbox.Min.Add(b.Hitbox.Max).Div(2)
	return image.Pt(c.X/tileSize, c.Y/tileSize)
}

// Player is the user-controlled character
type Player struct {
	Body
	Speed float64 // pixels per second
}

// NewPlayer creates a player whose top-left is at pixel (x, y), facing right
func NewPlayer(x, y, size, hitW, hitH int, speed float64, idleFrame int) *Player {
	p := &Player{
		Body:  NewBody(x, y, size, size, hitW, hitH, DirRight),
		Speed: speed,
	}
	p.Anim.IdleFrame = idleFrame
	p.Frame = idleFrame
	return p
}
