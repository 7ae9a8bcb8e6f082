package ai

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNoLegalMoves is returned when the board has no empty cell left
	ErrNoLegalMoves = errors.New("no legal moves")
	// ErrUnknownStrategy is returned for strategies outside the enum
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Strategy selects how the computer player picks its move
type Strategy int

const (
	// Random picks uniformly among the empty cells
	Random Strategy = iota
	// SingleMaxFlipped looks one generation ahead and picks the move that grows
	// its color the most relative to not moving at all
	SingleMaxFlipped
)

func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case SingleMaxFlipped:
		return "single_max_flipped"
	}
	return "unknown"
}

// ParseStrategy maps a config name to a Strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, nil
	case "single_max_flipped", "singlemaxflipped", "lookahead":
		return SingleMaxFlipped, nil
	}
	return Random, errors.Wrapf(ErrUnknownStrategy, "[ParseStrategy] name: %+v", name)
}
