package config

import (
	"errors"
	"fmt"
)

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display   DisplayConfig   `json:"display"`
	World     WorldConfig     `json:"world"`
	Player    PlayerConfig    `json:"player"`
	Enemy     EnemyConfig     `json:"enemy"`
	Collision CollisionConfig `json:"collision"`
	Layers    LayersConfig    `json:"layers"`
	Sprites   SpritesConfig   `json:"sprites"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type WorldConfig struct {
	TileSize int    `json:"tileSize"`
	Level    string `json:"level"` // level file name under levels/, without extension
}

type PlayerConfig struct {
	Speed        float64 `json:"speed"`     // pixels/sec
	FrameStep    float64 `json:"frameStep"` // animation phase per tick
	IdleFrame    int     `json:"idleFrame"`
	HitboxWidth  int     `json:"hitboxWidth,omitempty"` // 0 = tile size
	HitboxHeight int     `json:"hitboxHeight,omitempty"`
}

// Hitbox returns the hitbox size, defaulting to one tile
func (p PlayerConfig) Hitbox(tileSize int) (w, h int) {
	w, h = p.HitboxWidth, p.HitboxHeight
	if w <= 0 {
		w = tileSize
	}
	if h <= 0 {
		h = tileSize
	}
	return w, h
}

type EnemyConfig struct {
	Speed         float64 `json:"speed"` // pixels/sec
	FrameStep     float64 `json:"frameStep"`
	IdleFrame     int     `json:"idleFrame"`
	StepBudgets   []int   `json:"stepBudgets"` // moving ticks before stalling, one drawn per enemy
	StallTicks    int     `json:"stallTicks"`
	ReactionTicks int     `json:"reactionTicks"`
}

type CollisionConfig struct {
	// OverlapRatio scales both rectangles around their centres before the
	// overlap test, so edge-adjacent tiles never collide.
	OverlapRatio float64 `json:"overlapRatio"`
}

// LayersConfig holds the draw order of each layer; higher draws later
type LayersConfig struct {
	Ground int `json:"ground"`
	Block  int `json:"block"`
	Enemy  int `json:"enemy"`
	Player int `json:"player"`
}

type SpritesConfig struct {
	Player  SheetConfig   `json:"player"`
	Enemy   SheetConfig   `json:"enemy"`
	Terrain TerrainConfig `json:"terrain"`
}

// SheetConfig describes a character sheet: one row per direction, Frames columns
type SheetConfig struct {
	Sheet       string         `json:"sheet,omitempty"` // empty = generated placeholder
	FrameWidth  int            `json:"frameWidth"`
	FrameHeight int            `json:"frameHeight"`
	Frames      int            `json:"frames"`
	Rows        map[string]int `json:"rows"` // direction name -> sheet row
}

// TerrainConfig locates the ground and wall tiles in a terrain sheet (pixels)
type TerrainConfig struct {
	Sheet  string   `json:"sheet,omitempty"`
	Ground PixelRef `json:"ground"`
	Wall   PixelRef `json:"wall"`
}

type PixelRef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Validate checks the values the game cannot run without
func (c *SettingsConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate %d", c.Display.Framerate))
	}
	if c.World.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size %d", c.World.TileSize))
	}
	if c.Player.Speed < 0 || c.Enemy.Speed < 0 {
		errs = append(errs, fmt.Errorf("negative speed (player %v, enemy %v)", c.Player.Speed, c.Enemy.Speed))
	}
	if len(c.Enemy.StepBudgets) == 0 {
		errs = append(errs, errors.New("enemy stepBudgets is empty"))
	}
	for _, b := range c.Enemy.StepBudgets {
		if b <= 0 {
			errs = append(errs, fmt.Errorf("enemy step budget %d", b))
		}
	}
	if c.Enemy.StallTicks <= 0 || c.Enemy.ReactionTicks <= 0 {
		errs = append(errs, fmt.Errorf("enemy stall/reaction ticks %d/%d", c.Enemy.StallTicks, c.Enemy.ReactionTicks))
	}
	errs = append(errs, checkFrames("player", c.Sprites.Player, c.Player.IdleFrame)...)
	errs = append(errs, checkFrames("enemy", c.Sprites.Enemy, c.Enemy.IdleFrame)...)
	if c.Collision.OverlapRatio <= 0 || c.Collision.OverlapRatio > 1 {
		errs = append(errs, fmt.Errorf("collision overlapRatio %v not in (0,1]", c.Collision.OverlapRatio))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// checkFrames verifies that the animation and idle frames exist in the sheet
func checkFrames(name string, sheet SheetConfig, idle int) []error {
	if sheet.Frames <= 0 {
		return []error{fmt.Errorf("%s sheet has %d frames", name, sheet.Frames)}
	}
	if idle < 0 || idle >= sheet.Frames {
		return []error{fmt.Errorf("%s idleFrame %d outside sheet of %d frames", name, idle, sheet.Frames)}
	}
	return nil
}

// Default returns the settings the game ships with
func Default() *SettingsConfig {
	rows := map[string]int{"down": 0, "left": 1, "right": 2, "up": 3}
	return &SettingsConfig{
		Display: DisplayConfig{ScreenWidth: 800, ScreenHeight: 600, Scale: 1, Framerate: 60, Title: "Tile Quest"},
		World:   WorldConfig{TileSize: 32, Level: "world"},
		Player:  PlayerConfig{Speed: 85, FrameStep: 0.2, IdleFrame: 0},
		Enemy: EnemyConfig{
			Speed:         80,
			FrameStep:     0.2,
			IdleFrame:     1,
			StepBudgets:   []int{30, 40, 50, 60, 70, 80, 90},
			StallTicks:    120,
			ReactionTicks: 30,
		},
		Collision: CollisionConfig{OverlapRatio: 0.75},
		Layers:    LayersConfig{Ground: 1, Block: 2, Enemy: 3, Player: 5},
		Sprites: SpritesConfig{
			Player: SheetConfig{FrameWidth: 32, FrameHeight: 32, Frames: 3, Rows: rows},
			Enemy:  SheetConfig{FrameWidth: 32, FrameHeight: 32, Frames: 3, Rows: rows},
		},
	}
}
