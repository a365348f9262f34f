package entity

import (
	"fmt"
	"image"
)

// Cell codes of the level grid
const (
	CellWall   = 'B'
	CellGround = '.'
	CellPlayer = 'P'
	CellEnemy  = 'E'
)

// MapFormatError reports a malformed level grid
type MapFormatError struct {
	Row    int
	Reason string
}

func (e *MapFormatError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("malformed level: %s", e.Reason)
	}
	return fmt.Sprintf("malformed level at row %d: %s", e.Row, e.Reason)
}

// NoPlayerSpawnError is returned when a level has no 'P' cell
type NoPlayerSpawnError struct {
	Rows int
	Cols int
}

func (e *NoPlayerSpawnError) Error() string {
	return fmt.Sprintf("level %dx%d has no player spawn ('P')", e.Cols, e.Rows)
}

// TileWorld is the static terrain grid. It is immutable after construction.
type TileWorld struct {
	cols     int
	rows     int
	tileSize int
	cells    [][]byte
	blocks   []image.Rectangle
}

// NewTileWorld builds the world from equal-length rows of cell codes
func NewTileWorld(rows []string, tileSize int) (*TileWorld, error) {
	if tileSize <= 0 {
		return nil, &MapFormatError{Row: -1, Reason: fmt.Sprintf("invalid tile size %d", tileSize)}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &MapFormatError{Row: -1, Reason: "empty grid"}
	}

	cols := len(rows[0])
	cells := make([][]byte, len(rows))
	players := 0
	for y, row := range rows {
		if len(row) != cols {
			return nil, &MapFormatError{
				Row:    y,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), cols),
			}
		}
		cells[y] = []byte(row)
		for x := 0; x < cols; x++ {
			if row[x] == CellPlayer {
				players++
				if players > 1 {
					return nil, &MapFormatError{
						Row:    y,
						Reason: fmt.Sprintf("second player spawn at column %d", x),
					}
				}
			}
		}
	}

	w := &TileWorld{
		cols:     cols,
		rows:     len(rows),
		tileSize: tileSize,
		cells:    cells,
	}
	for _, p := range w.SpawnPoints(CellWall) {
		w.blocks = append(w.blocks, w.CellRect(p.X, p.Y))
	}
	return w, nil
}

// Cols returns the grid width in cells
func (w *TileWorld) Cols() int { return w.cols }

// Rows returns the grid height in cells
func (w *TileWorld) Rows() int { return w.rows }

// TileSize returns the cell size in pixels
func (w *TileWorld) TileSize() int { return w.tileSize }

// PixelSize returns the world size in pixels
func (w *TileWorld) PixelSize() (int, int) {
	return w.cols * w.tileSize, w.rows * w.tileSize
}

// Cell returns the code at (col,row), or 0 outside the grid
func (w *TileWorld) Cell(col, row int) byte {
	if col < 0 || col >= w.cols || row < 0 || row >= w.rows {
		return 0
	}
	return w.cells[row][col]
}

// IsBlocking reports whether (col,row) is a wall. Cells outside the grid block.
func (w *TileWorld) IsBlocking(col, row int) bool {
	if col < 0 || col >= w.cols || row < 0 || row >= w.rows {
		return true
	}
	return w.cells[row][col] == CellWall
}

// SpawnPoints returns every (col,row) holding code, in row-major order
func (w *TileWorld) SpawnPoints(code byte) []image.Point {
	var points []image.Point
	for y, row := range w.cells {
		for x, c := range row {
			if c == code {
				points = append(points, image.Pt(x, y))
			}
		}
	}
	return points
}

// PlayerSpawn returns the cell of the single 'P'
func (w *TileWorld) PlayerSpawn() (image.Point, error) {
	points := w.SpawnPoints(CellPlayer)
	if len(points) == 0 {
		return image.Point{}, &NoPlayerSpawnError{Rows: w.rows, Cols: w.cols}
	}
	return points[0], nil
}

// CellRect returns the pixel rectangle of a cell
func (w *TileWorld) CellRect(col, row int) image.Rectangle {
	return image.Rect(col*w.tileSize, row*w.tileSize, (col+1)*w.tileSize, (row+1)*w.tileSize)
}

// BlockRects returns the wall rectangles in row-major order.
// The slice is shared and must not be modified.
func (w *TileWorld) BlockRects() []image.Rectangle {
	return w.blocks
}
