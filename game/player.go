package game

import (
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// Player is one side of a duel
type Player interface {
	// Color returns the color the player places
	Color() rules.CellState
	// Name describes the player for status output
	Name() string
	// NextMove picks an empty cell on b; b must not be modified
	NextMove(b *model.Board) (model.Coordinate, error)
}
