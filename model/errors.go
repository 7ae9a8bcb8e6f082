package model

import "github.com/pkg/errors"

var (
	// ErrInvalidBoardShape is returned for empty or ragged grids
	ErrInvalidBoardShape = errors.New("invalid board shape")
	// ErrOutOfBounds is returned for coordinates outside the board
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrOccupiedCell is returned when placing on a cell that is not empty
	ErrOccupiedCell = errors.New("cell is occupied")
	// ErrInvalidColor is returned when a move color is neither Red nor Blue
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnknownTopology is returned by ParseTopology for unsupported names
	ErrUnknownTopology = errors.New("unknown topology")
)
