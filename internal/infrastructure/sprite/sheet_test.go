package sprite

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

func createTestSheetConfig() config.SheetConfig {
	return config.SheetConfig{
		FrameWidth:  32,
		FrameHeight: 32,
		Frames:      3,
		Rows:        map[string]int{"down": 0, "left": 1, "right": 2, "up": 3},
	}
}

func TestCharacterSheet_Layout(t *testing.T) {
	sheet := CharacterSheet(createTestSheetConfig(), Palette.Player)

	assert.Equal(t, image.Rect(0, 0, 96, 128), sheet.Bounds())

	// disc centre is filled, corners stay transparent
	assert.Equal(t, Palette.Player.Fill, sheet.RGBAAt(16+32, 16+64+0))
	assert.Equal(t, uint8(0), sheet.RGBAAt(0, 0).A)
}

func TestCharacterSheet_EyeFacesDirection(t *testing.T) {
	sheet := CharacterSheet(createTestSheetConfig(), Palette.Enemy)

	// right row (2), frame 0: eye sits right of centre
	assert.Equal(t, Palette.Eye, sheet.RGBAAt(16+7, 64+16))
	// left row (1), frame 0: eye sits left of centre
	assert.Equal(t, Palette.Eye, sheet.RGBAAt(16-7, 32+16))
}

func TestTerrainSheet(t *testing.T) {
	cfg := config.TerrainConfig{
		Ground: config.PixelRef{X: 0, Y: 0},
		Wall:   config.PixelRef{X: 32, Y: 0},
	}

	sheet := TerrainSheet(cfg, 32)

	assert.Equal(t, image.Rect(0, 0, 64, 32), sheet.Bounds())
	assert.Equal(t, Palette.Ground, sheet.RGBAAt(1, 1))
	assert.Equal(t, Palette.Mortar, sheet.RGBAAt(32, 0))
}

func TestFrameTable_Frame(t *testing.T) {
	var table FrameTable
	table[entity.DirUp] = []*ebiten.Image{nil, nil, nil}

	assert.Nil(t, table.Frame(entity.DirUp, 5))
	assert.Nil(t, table.Frame(entity.DirDown, 0))
	assert.Nil(t, table.Frame(entity.Direction(9), 0))
}

func TestFrameTable_Count(t *testing.T) {
	var table FrameTable
	table[entity.DirLeft] = []*ebiten.Image{nil, nil}

	assert.Equal(t, 2, table.Count(entity.DirLeft))
	assert.Equal(t, entity.FramesPerDirection, table.Count(entity.DirUp))
	assert.Equal(t, entity.FramesPerDirection, table.Count(entity.Direction(-1)))
}

func TestSlice(t *testing.T) {
	cfg := createTestSheetConfig()
	sheet := ebiten.NewImageFromImage(CharacterSheet(cfg, Palette.Player))

	table, err := Slice(sheet, cfg)
	require.NoError(t, err)

	for _, d := range entity.Directions {
		require.Len(t, table[d], 3, d.String())
	}
	assert.Equal(t, image.Rect(32, 64, 64, 96), table.Frame(entity.DirRight, 1).Bounds())
	assert.Equal(t, image.Rect(64, 96, 96, 128), table.Frame(entity.DirUp, 2).Bounds())
}

func TestSlice_Errors(t *testing.T) {
	sheet := ebiten.NewImage(96, 96)

	tests := []struct {
		name string
		cfg  config.SheetConfig
	}{
		{"row outside sheet", createTestSheetConfig()},
		{"missing direction", config.SheetConfig{FrameWidth: 32, FrameHeight: 32, Frames: 3, Rows: map[string]int{"down": 0}}},
		{"unknown direction", config.SheetConfig{FrameWidth: 32, FrameHeight: 32, Frames: 3, Rows: map[string]int{"north": 0}}},
		{"zero frames", config.SheetConfig{FrameWidth: 32, FrameHeight: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Slice(sheet, tt.cfg)
			assert.Error(t, err)
		})
	}
}
