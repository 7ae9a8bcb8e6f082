package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/rules"
)

// SeedDensity is the fraction of the board, in mirrored pairs, filled at the start
const SeedDensity = 0.25

// NewBoard creates a board seeded with mirrored cells of both colors.
// A random color owns the top half; every cell it gets in row r is matched by the
// other color at row rows-1-r in the same column. floor(rows*cols*SeedDensity) pairs
// are placed, so twice that many cells end up filled.
func NewBoard(rows, cols int, rng Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidBoardShape, "[NewBoard] dimensions: %dx%d", rows, cols)
	}

	var (
		b            = newBoard(rows, cols)
		halfBoundary = rows/2 - 1
		target       = int(float64(rows*cols) * SeedDensity)
		leftCells    = (halfBoundary + 1) * cols
	)
	if target > leftCells {
		return nil, errors.Wrapf(ErrInvalidBoardShape,
			"[NewBoard] %dx%d board cannot hold %d mirrored pairs", rows, cols, target)
	}

	leftColor := rules.Red
	if rng.IntN(2) == 1 {
		leftColor = rules.Blue
	}
	rightColor := leftColor.Opponent()

	for filled := 0; filled < target; {
		row := rng.IntN(halfBoundary + 1)
		col := rng.IntN(cols)
		if b.cells[row][col] != rules.Empty {
			continue
		}
		b.cells[row][col] = leftColor
		b.cells[rows-1-row][col] = rightColor
		filled++
	}

	return b, nil
}
