package system

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/sprite"
)

const testDT = 1.0 / 60.0

type fakeEnemies []image.Rectangle

func (f fakeEnemies) EnemyHitboxes() []image.Rectangle { return f }

func createTestPlayerController(x, y int, blocks []image.Rectangle, enemies EnemyLocator) *PlayerController {
	p := entity.NewPlayer(x, y, 32, 32, 32, 85, 0)
	return NewPlayerController(p, NewResolver(0.75), blocks, enemies, sprite.FrameTable{}, 0.2)
}

// compact drops consecutive duplicates
func compact(frames []int) []int {
	var out []int
	for _, f := range frames {
		if len(out) == 0 || out[len(out)-1] != f {
			out = append(out, f)
		}
	}
	return out
}

func TestPlayerController_WalkRightForOneSecond(t *testing.T) {
	c := createTestPlayerController(5*32, 5*32, nil, nil)

	var frames []int
	for i := 0; i < 60; i++ {
		c.Tick(testDT, entity.KeyState{Right: true})
		frames = append(frames, c.Player.Frame)
	}

	assert.Equal(t, 5*32+85, c.Player.Rect.Min.X)
	assert.Equal(t, 5*32, c.Player.Rect.Min.Y)
	assert.Equal(t, entity.DirRight, c.Player.Facing)
	assert.Equal(t, c.Player.Hitbox.Min, c.Player.Rect.Min)

	seq := compact(frames)
	require.GreaterOrEqual(t, len(seq), 4)
	assert.Equal(t, []int{0, 1, 2, 0}, seq[:4])
}

func TestPlayerController_AnimatesSheetWidth(t *testing.T) {
	var frames sprite.FrameTable
	for _, d := range entity.Directions {
		frames[d] = make([]*ebiten.Image, 2)
	}
	p := entity.NewPlayer(0, 0, 32, 32, 32, 85, 0)
	c := NewPlayerController(p, NewResolver(0.75), nil, nil, frames, 0.2)

	var seen []int
	for i := 0; i < 40; i++ {
		c.Tick(testDT, entity.KeyState{Right: true})
		require.Less(t, p.Frame, 2, "tick %d", i)
		seen = append(seen, p.Frame)
	}
	assert.Equal(t, []int{0, 1, 0, 1}, compact(seen)[:4])
}

func TestPlayerController_IdleResetsAnimation(t *testing.T) {
	c := createTestPlayerController(0, 0, nil, nil)
	for i := 0; i < 7; i++ {
		c.Tick(testDT, entity.KeyState{Down: true})
	}
	require.NotZero(t, c.Player.Anim.Phase)

	c.Tick(testDT, entity.KeyState{})

	assert.Equal(t, 0, c.Player.Frame)
	assert.Equal(t, 0.0, c.Player.Anim.Phase)
	assert.Equal(t, entity.DirDown, c.Player.Facing, "facing persists while idle")
}

func TestPlayerController_KeyPriority(t *testing.T) {
	c := createTestPlayerController(100, 100, nil, nil)

	c.Tick(testDT, entity.KeyState{Left: true, Up: true})
	assert.Equal(t, entity.DirLeft, c.Player.Facing)
	assert.Equal(t, 100, c.Player.Rect.Min.Y, "only one axis moves")

	c.Tick(testDT, entity.KeyState{Up: true, Down: true})
	assert.Equal(t, entity.DirUp, c.Player.Facing)
}

func TestPlayerController_StopsAtWall(t *testing.T) {
	world, err := entity.NewTileWorld([]string{
		"BBBBBB",
		"B.P..B",
		"BBBBBB",
	}, 32)
	require.NoError(t, err)
	spawn, err := world.PlayerSpawn()
	require.NoError(t, err)

	c := createTestPlayerController(spawn.X*32, spawn.Y*32, world.BlockRects(), nil)
	r := NewResolver(0.75)
	for i := 0; i < 300; i++ {
		c.Tick(testDT, entity.KeyState{Right: true})
		for _, blk := range world.BlockRects() {
			require.False(t, r.Overlaps(c.Player.Hitbox, blk))
		}
	}

	assert.LessOrEqual(t, c.Player.Rect.Max.X, 5*32+8, "within the overlap tolerance of the wall")
	assert.GreaterOrEqual(t, c.Player.Rect.Max.X, 5*32)
}

func TestPlayerController_EnemyPassSnapsWithoutMovingAgain(t *testing.T) {
	enemies := fakeEnemies{image.Rect(40, 0, 72, 32)}
	c := createTestPlayerController(16, 0, nil, enemies)

	c.Tick(testDT, entity.KeyState{Right: true})

	assert.Equal(t, 40, c.Player.Hitbox.Max.X, "snapped flush to the enemy")
	assert.Equal(t, 8, c.Player.Rect.Min.X)
	assert.False(t, c.Player.IsMoving())
	assert.Equal(t, 0, c.Player.Frame)
}

func TestPlayerController_EnemyPassUsesSurvivingDisplacement(t *testing.T) {
	c := createTestPlayerController(0, 0, nil, fakeEnemies{image.Rect(100, 100, 132, 132)})

	c.Tick(testDT, entity.KeyState{Right: true})

	// one translation only: 85/60 rounds to 1 pixel
	assert.Equal(t, 1, c.Player.Rect.Min.X)
	assert.True(t, c.Player.IsMoving())
}

func TestPlayerController_Sprite(t *testing.T) {
	c := createTestPlayerController(64, 96, nil, nil)

	c.Update(entity.Tick{DT: testDT, Keys: entity.KeyState{Up: true}})

	assert.Equal(t, image.Pt(64, 95), c.DrawPosition())
	assert.Equal(t, c.Player.Hitbox, c.Hitbox())
	assert.Nil(t, c.Image(), "empty frame table")
}
