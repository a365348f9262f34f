// Package sprite turns sprite sheets into per-direction frame tables.
package sprite

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// FrameTable holds a character's animation frames, indexed by direction
type FrameTable [4][]*ebiten.Image

// Frame returns frame i for direction d, or nil when out of range
func (t FrameTable) Frame(d entity.Direction, i int) *ebiten.Image {
	if d < 0 || int(d) >= len(t) {
		return nil
	}
	frames := t[d]
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}

// Count returns the number of frames for direction d. An empty table
// reports the standard sheet width so animation timing stays the same.
func (t FrameTable) Count(d entity.Direction) int {
	if d < 0 || int(d) >= len(t) || len(t[d]) == 0 {
		return entity.FramesPerDirection
	}
	return len(t[d])
}

// Terrain holds the static tile images
type Terrain struct {
	Ground *ebiten.Image
	Wall   *ebiten.Image
}

// Assets are every image the playing scene draws
type Assets struct {
	Player  FrameTable
	Enemy   FrameTable
	Terrain Terrain
}

// Slice cuts a character sheet into a frame table. Every direction must
// have a row and every frame must lie inside the sheet.
func Slice(sheet *ebiten.Image, cfg config.SheetConfig) (FrameTable, error) {
	var table FrameTable
	if cfg.FrameWidth <= 0 || cfg.FrameHeight <= 0 || cfg.Frames <= 0 {
		return table, fmt.Errorf("invalid frame layout %dx%d x%d", cfg.FrameWidth, cfg.FrameHeight, cfg.Frames)
	}

	bounds := sheet.Bounds()
	seen := map[entity.Direction]bool{}
	for name, row := range cfg.Rows {
		dir, ok := entity.ParseDirection(name)
		if !ok {
			return table, fmt.Errorf("unknown direction %q in sheet rows", name)
		}
		frames := make([]*ebiten.Image, cfg.Frames)
		for i := range frames {
			r := image.Rect(i*cfg.FrameWidth, row*cfg.FrameHeight, (i+1)*cfg.FrameWidth, (row+1)*cfg.FrameHeight)
			if !r.Add(bounds.Min).In(bounds) {
				return table, fmt.Errorf("frame %d of %s (%v) is outside sheet %v", i, name, r, bounds)
			}
			frames[i] = sheet.SubImage(r.Add(bounds.Min)).(*ebiten.Image)
		}
		table[dir] = frames
		seen[dir] = true
	}
	for _, d := range entity.Directions {
		if !seen[d] {
			return table, fmt.Errorf("sheet has no row for direction %s", d)
		}
	}
	return table, nil
}

// Load builds the assets from the configured sheets. A sheet with no path
// is replaced by a generated placeholder.
func Load(fsys fs.FS, cfg config.SpritesConfig, tileSize int) (*Assets, error) {
	player, err := loadCharacter(fsys, cfg.Player, Palette.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to load player sheet: %w", err)
	}
	enemy, err := loadCharacter(fsys, cfg.Enemy, Palette.Enemy)
	if err != nil {
		return nil, fmt.Errorf("failed to load enemy sheet: %w", err)
	}

	var terrainSheet *ebiten.Image
	if cfg.Terrain.Sheet == "" {
		terrainSheet = ebiten.NewImageFromImage(TerrainSheet(cfg.Terrain, tileSize))
	} else {
		terrainSheet, _, err = ebitenutil.NewImageFromFileSystem(fsys, cfg.Terrain.Sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to load terrain sheet %s: %w", cfg.Terrain.Sheet, err)
		}
	}
	terrain, err := sliceTerrain(terrainSheet, cfg.Terrain, tileSize)
	if err != nil {
		return nil, err
	}

	return &Assets{Player: player, Enemy: enemy, Terrain: terrain}, nil
}

func loadCharacter(fsys fs.FS, cfg config.SheetConfig, body Colors) (FrameTable, error) {
	var sheet *ebiten.Image
	if cfg.Sheet == "" {
		sheet = ebiten.NewImageFromImage(CharacterSheet(cfg, body))
	} else {
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, cfg.Sheet)
		if err != nil {
			return FrameTable{}, err
		}
		sheet = img
	}
	return Slice(sheet, cfg)
}

func sliceTerrain(sheet *ebiten.Image, cfg config.TerrainConfig, tileSize int) (Terrain, error) {
	bounds := sheet.Bounds()
	cut := func(ref config.PixelRef) (*ebiten.Image, error) {
		r := image.Rect(ref.X, ref.Y, ref.X+tileSize, ref.Y+tileSize).Add(bounds.Min)
		if !r.In(bounds) {
			return nil, fmt.Errorf("terrain tile %v is outside sheet %v", r, bounds)
		}
		return sheet.SubImage(r).(*ebiten.Image), nil
	}

	ground, err := cut(cfg.Ground)
	if err != nil {
		return Terrain{}, err
	}
	wall, err := cut(cfg.Wall)
	if err != nil {
		return Terrain{}, err
	}
	return Terrain{Ground: ground, Wall: wall}, nil
}
