package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/rules"
)

// Coordinate addresses a cell by row and column
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board represents the game grid. Its dimensions never change after creation.
type Board struct {
	rows  int
	cols  int
	cells [][]rules.CellState
}

// NewEmptyBoard creates an all-empty board with the specified dimensions
func NewEmptyBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidBoardShape, "[NewEmptyBoard] dimensions: %dx%d", rows, cols)
	}
	return newBoard(rows, cols), nil
}

func newBoard(rows, cols int) *Board {
	cells := make([][]rules.CellState, rows)
	for i := range cells {
		cells[i] = make([]rules.CellState, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// FromRows builds a board from a copy of the given rectangular grid
func FromRows(grid [][]rules.CellState) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidBoardShape, "[FromRows] grid has no rows or columns")
	}
	b := newBoard(len(grid), len(grid[0]))
	for row, line := range grid {
		if len(line) != b.cols {
			return nil, errors.Wrapf(ErrInvalidBoardShape,
				"[FromRows] row %d has %d columns, expected %d", row, len(line), b.cols)
		}
		copy(b.cells[row], line)
	}
	return b, nil
}

// ParseBoard reads one string per row using 'R', 'B' and '.' (any other rune is empty)
func ParseBoard(lines ...string) (*Board, error) {
	grid := make([][]rules.CellState, len(lines))
	for row, line := range lines {
		for _, r := range line {
			grid[row] = append(grid[row], rules.ParseCellState(string(r)))
		}
	}
	b, err := FromRows(grid)
	if err != nil {
		return nil, errors.Wrap(err, "[ParseBoard] failed to build board")
	}
	return b, nil
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.cols
}

// Size returns the total number of cells
func (b *Board) Size() int {
	return b.rows * b.cols
}

// InBounds reports whether the coordinate lies on the board
func (b *Board) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Get returns the normalized state of a cell; out of range reads are Empty
func (b *Board) Get(row, col int) rules.CellState {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return rules.Empty
	}
	return b.cells[row][col].Normalize()
}

// At is Get for a Coordinate
func (b *Board) At(c Coordinate) rules.CellState {
	return b.Get(c.Row, c.Col)
}

// Set writes a cell without any move legality checks; out of range writes are ignored
func (b *Board) Set(row, col int, state rules.CellState) {
	if row >= 0 && row < b.rows && col >= 0 && col < b.cols {
		b.cells[row][col] = state
	}
}

// Place applies a move: color must be Red or Blue and the target cell must be empty
func (b *Board) Place(c Coordinate, color rules.CellState) error {
	if color != rules.Red && color != rules.Blue {
		return errors.Wrapf(ErrInvalidColor, "[Place] color: %+v", color)
	}
	if !b.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "[Place] %v on %dx%d board", c, b.rows, b.cols)
	}
	if b.At(c) != rules.Empty {
		return errors.Wrapf(ErrOccupiedCell, "[Place] %v holds %v", c, b.At(c))
	}
	b.cells[c.Row][c.Col] = color
	return nil
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	next := newBoard(b.rows, b.cols)
	b.CopyTo(next)
	return next
}

// CopyTo overwrites dst, which must have the same dimensions, with this board's cells
func (b *Board) CopyTo(dst *Board) {
	for row := range b.rows {
		copy(dst.cells[row], b.cells[row])
	}
}

// Equal reports whether both boards have the same dimensions and normalized cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for row := range b.rows {
		for col := range b.cols {
			if b.Get(row, col) != other.Get(row, col) {
				return false
			}
		}
	}
	return true
}

// IsFull reports whether no empty cell remains
func (b *Board) IsFull() bool {
	for row := range b.rows {
		for col := range b.cols {
			if !b.cells[row][col].IsAlive() {
				return false
			}
		}
	}
	return true
}

// Reset resizes the board and clears every cell
func (b *Board) Reset(rows, cols int) {
	b.rows = rows
	b.cols = cols

	// Resize cells if needed
	if len(b.cells) != rows {
		b.cells = make([][]rules.CellState, rows)
	}
	for i := range b.cells {
		if len(b.cells[i]) != cols {
			b.cells[i] = make([]rules.CellState, cols)
		} else {
			clear(b.cells[i])
		}
	}
}

// Clear empties all cells
func (b *Board) Clear() {
	for row := range b.cells {
		clear(b.cells[row])
	}
}

// Hash returns an MD5 digest of the normalized board state
func (b *Board) Hash() string {
	h := md5.New()
	for row := range b.rows {
		for col := range b.cols {
			h.Write([]byte{byte(b.Get(row, col))})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the board one row per line using 'R', 'B' and '.'
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			sb.WriteRune(b.Get(row, col).Symbol())
		}
		if row < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
