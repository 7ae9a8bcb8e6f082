package ai

import (
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// Computer is a computer-controlled player
type Computer struct {
	color     rules.CellState
	strategy  Strategy
	neighbors model.NeighborFunc
	rng       model.Rand
	pool      *model.BoardPool
}

// NewComputer creates a player for color. pool may be nil.
func NewComputer(
	color rules.CellState,
	strategy Strategy,
	neighbors model.NeighborFunc,
	rng model.Rand,
	pool *model.BoardPool,
) *Computer {
	return &Computer{
		color:     color,
		strategy:  strategy,
		neighbors: neighbors,
		rng:       rng,
		pool:      pool,
	}
}

// Color returns the color this player places
func (c *Computer) Color() rules.CellState {
	return c.color
}

// Name describes the player for status lines
func (c *Computer) Name() string {
	return "computer (" + c.strategy.String() + ")"
}

// NextMove picks a move on b without modifying it
func (c *Computer) NextMove(b *model.Board) (model.Coordinate, error) {
	return ComputerMove(b, c.neighbors, c.strategy, c.color, c.rng, c.pool)
}
