package entity

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRows() []string {
	return []string{
		"BBBBBB",
		"B.P..B",
		"B..E.B",
		"BE...B",
		"BBBBBB",
	}
}

func TestNewTileWorld(t *testing.T) {
	w, err := NewTileWorld(createTestRows(), 32)
	require.NoError(t, err)

	assert.Equal(t, 6, w.Cols())
	assert.Equal(t, 5, w.Rows())
	assert.Equal(t, 32, w.TileSize())

	pw, ph := w.PixelSize()
	assert.Equal(t, 192, pw)
	assert.Equal(t, 160, ph)
}

func TestNewTileWorld_Ragged(t *testing.T) {
	rows := []string{
		"BBBB",
		"B..B",
		"B.B",
		"BBBB",
	}

	_, err := NewTileWorld(rows, 32)
	require.Error(t, err)

	var mfe *MapFormatError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, 2, mfe.Row)
	assert.Contains(t, err.Error(), "row 2")
}

func TestNewTileWorld_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		tileSize int
	}{
		{"empty grid", nil, 32},
		{"empty row", []string{""}, 32},
		{"zero tile size", []string{"BP"}, 0},
		{"two player spawns", []string{"BPB", "BPB"}, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTileWorld(tt.rows, tt.tileSize)
			var mfe *MapFormatError
			assert.True(t, errors.As(err, &mfe), "want MapFormatError, got %v", err)
		})
	}
}

func TestTileWorld_PlayerSpawn(t *testing.T) {
	w, err := NewTileWorld(createTestRows(), 32)
	require.NoError(t, err)

	p, err := w.PlayerSpawn()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2, 1), p)
}

func TestTileWorld_NoPlayerSpawn(t *testing.T) {
	w, err := NewTileWorld([]string{"BBB", "B.B", "BBB"}, 32)
	require.NoError(t, err)

	_, err = w.PlayerSpawn()
	var npe *NoPlayerSpawnError
	require.True(t, errors.As(err, &npe))
	assert.Equal(t, 3, npe.Rows)
}

func TestTileWorld_SpawnPoints(t *testing.T) {
	w, err := NewTileWorld(createTestRows(), 32)
	require.NoError(t, err)

	// row-major order
	assert.Equal(t, []image.Point{{3, 2}, {1, 3}}, w.SpawnPoints(CellEnemy))
	assert.Empty(t, w.SpawnPoints('Z'))
}

func TestTileWorld_IsBlocking(t *testing.T) {
	w, err := NewTileWorld(createTestRows(), 32)
	require.NoError(t, err)

	tests := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"corner wall", 0, 0, true},
		{"ground", 1, 1, false},
		{"player spawn is open", 2, 1, false},
		{"enemy spawn is open", 3, 2, false},
		{"outside left", -1, 2, true},
		{"outside bottom", 2, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.IsBlocking(tt.col, tt.row))
		})
	}
}

func TestTileWorld_BlockRoundTrip(t *testing.T) {
	rows := createTestRows()
	w, err := NewTileWorld(rows, 32)
	require.NoError(t, err)

	want := map[image.Point]bool{}
	for y, row := range rows {
		for x := range row {
			if row[x] == 'B' {
				want[image.Pt(x, y)] = true
			}
		}
	}

	got := map[image.Point]bool{}
	for y := 0; y < w.Rows(); y++ {
		for x := 0; x < w.Cols(); x++ {
			if w.IsBlocking(x, y) {
				got[image.Pt(x, y)] = true
			}
		}
	}
	assert.Equal(t, want, got)

	fromRects := map[image.Point]bool{}
	for _, r := range w.BlockRects() {
		assert.Equal(t, 32, r.Dx())
		assert.Equal(t, 32, r.Dy())
		fromRects[image.Pt(r.Min.X/32, r.Min.Y/32)] = true
	}
	assert.Equal(t, want, fromRects)
}

func TestTileWorld_CellRect(t *testing.T) {
	w, err := NewTileWorld(createTestRows(), 16)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(48, 32, 64, 48), w.CellRect(3, 2))
	assert.Equal(t, byte('E'), w.Cell(3, 2))
	assert.Equal(t, byte(0), w.Cell(30, 2))
}
