package system

import (
	"image"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
	"github.com/younwookim/tilequest/internal/infrastructure/sprite"
)

// NewWanderingEnemy creates an enemy at pixel (x, y) with a random facing
// and a random step budget drawn from cfg
func NewWanderingEnemy(id entity.EntityID, x, y int, cfg config.EnemyConfig, tileSize int, rng *rand.Rand) *entity.Enemy {
	facing := entity.Directions[rng.Intn(len(entity.Directions))]
	budget := cfg.StepBudgets[rng.Intn(len(cfg.StepBudgets))]

	return entity.NewEnemy(id, x, y, entity.EnemyConfig{
		Size:          tileSize,
		Speed:         cfg.Speed,
		Facing:        facing,
		StepBudget:    budget,
		StallTicks:    cfg.StallTicks,
		ReactionTicks: cfg.ReactionTicks,
		IdleFrame:     cfg.IdleFrame,
	})
}

// PlayerLocator exposes the player hitbox enemies collide with
type PlayerLocator interface {
	PlayerHitbox() (image.Rectangle, bool)
}

// EnemyController runs the wandering state machine of one enemy
type EnemyController struct {
	Enemy *entity.Enemy

	resolver  *Resolver
	blocks    []image.Rectangle
	player    PlayerLocator
	frames    sprite.FrameTable
	frameStep float64
	rng       *rand.Rand
}

// NewEnemyController creates a controller. rng picks the facing after each
// stall. player may be nil.
func NewEnemyController(e *entity.Enemy, resolver *Resolver, blocks []image.Rectangle, player PlayerLocator, frames sprite.FrameTable, frameStep float64, rng *rand.Rand) *EnemyController {
	return &EnemyController{
		Enemy:     e,
		resolver:  resolver,
		blocks:    blocks,
		player:    player,
		frames:    frames,
		frameStep: frameStep,
		rng:       rng,
	}
}

// Tick advances the enemy by dt seconds
func (c *EnemyController) Tick(dt float64) {
	e := c.Enemy
	e.DX, e.DY = 0, 0

	switch e.State {
	case entity.EnemyMoving:
		WalkIntent(e.Facing, e.Speed, dt).ApplyTo(&e.Body)
		e.Steps++
		if e.Steps == e.StepBudget {
			e.Stall()
		}
	case entity.EnemyStalling:
		e.Steps++
		if e.Steps == e.StallTicks {
			e.Resume()
			e.Facing = entity.Directions[c.rng.Intn(len(entity.Directions))]
		}
	case entity.EnemyReacting:
		e.Reaction++
		if e.Reaction >= e.ReactionTicks {
			e.Resume()
		}
	}

	for _, axis := range Axes {
		if hit, ok := c.resolver.Apply(&e.Body, axis, c.blocks); ok {
			e.React(hit.Dir)
		}
	}
	// the player stops an enemy but never makes it turn
	if c.player != nil {
		if hb, ok := c.player.PlayerHitbox(); ok {
			for _, axis := range Axes {
				c.resolver.ResolveClear(&e.Body, axis, []image.Rectangle{hb}, c.blocks)
			}
		}
	}

	e.SyncRect()
	e.Frame = e.Anim.Advance(e.State == entity.EnemyMoving, c.frames.Count(e.Facing), c.frameStep)
}

// Update ticks the enemy; keys are ignored
func (c *EnemyController) Update(t entity.Tick) {
	c.Tick(t.DT)
}

// Image returns the current animation frame
func (c *EnemyController) Image() *ebiten.Image {
	return c.frames.Frame(c.Enemy.Facing, c.Enemy.Frame)
}

// DrawPosition returns the draw rectangle's top-left
func (c *EnemyController) DrawPosition() image.Point {
	return c.Enemy.Rect.Min
}

// Hitbox returns the collision rectangle
func (c *EnemyController) Hitbox() image.Rectangle {
	return c.Enemy.Hitbox
}
