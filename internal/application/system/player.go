package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/sprite"
)

// EnemyLocator exposes the enemy hitboxes the player collides with
type EnemyLocator interface {
	EnemyHitboxes() []image.Rectangle
}

// PlayerController drives the player from key snapshots
type PlayerController struct {
	Player *entity.Player

	resolver  *Resolver
	blocks    []image.Rectangle
	enemies   EnemyLocator
	frames    sprite.FrameTable
	frameStep float64
}

// NewPlayerController creates a controller. enemies may be nil.
func NewPlayerController(p *entity.Player, resolver *Resolver, blocks []image.Rectangle, enemies EnemyLocator, frames sprite.FrameTable, frameStep float64) *PlayerController {
	return &PlayerController{
		Player:    p,
		resolver:  resolver,
		blocks:    blocks,
		enemies:   enemies,
		frames:    frames,
		frameStep: frameStep,
	}
}

// Tick advances the player by dt seconds.
// Blocks are resolved first (move + snap), then enemies (snap only) with
// whatever displacement survived the blocks. An enemy snap that would land
// the hitbox in a block is dropped.
func (c *PlayerController) Tick(dt float64, keys entity.KeyState) {
	p := c.Player
	p.DX, p.DY = 0, 0
	if intent, ok := KeyIntent(keys, p.Speed, dt); ok {
		intent.ApplyTo(&p.Body)
	}

	for _, axis := range Axes {
		c.resolver.Apply(&p.Body, axis, c.blocks)
	}
	if c.enemies != nil {
		boxes := c.enemies.EnemyHitboxes()
		for _, axis := range Axes {
			c.resolver.ResolveClear(&p.Body, axis, boxes, c.blocks)
		}
	}

	p.SyncRect()
	p.Frame = p.Anim.Advance(p.IsMoving(), c.frames.Count(p.Facing), c.frameStep)
}

// Update ticks the player from the shared tick snapshot
func (c *PlayerController) Update(t entity.Tick) {
	c.Tick(t.DT, t.Keys)
}

// Image returns the current animation frame
func (c *PlayerController) Image() *ebiten.Image {
	return c.frames.Frame(c.Player.Facing, c.Player.Frame)
}

// DrawPosition returns the draw rectangle's top-left
func (c *PlayerController) DrawPosition() image.Point {
	return c.Player.Rect.Min
}

// Hitbox returns the collision rectangle
func (c *PlayerController) Hitbox() image.Rectangle {
	return c.Player.Hitbox
}
