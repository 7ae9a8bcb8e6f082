package game

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/ai"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// historySize is the number of recent board hashes kept to detect cycles
const historySize = 5

var (
	// ErrGameOver is returned when a round is played after the game was decided
	ErrGameOver = errors.New("game is over")
	// ErrSameColor is returned when both players would place the same color
	ErrSameColor = errors.New("players must use different colors")
)

// WinRule selects how a session decides that the game is over
type WinRule string

const (
	// WinRuleThreshold ends the game when one color fills more than 80% of all cells
	WinRuleThreshold WinRule = "threshold"
	// WinRuleShare ends the game when one color holds at least 80% of the living cells
	WinRuleShare WinRule = "share"
)

// Move records one placement
type Move struct {
	Color rules.CellState
	At    model.Coordinate
}

// RoundResult describes what happened during one round
type RoundResult struct {
	Moves      []Move
	Generation int
	Winner     rules.CellState
	Stagnant   bool
}

// Session owns the live board of one duel. It is not safe for concurrent use.
type Session struct {
	board      *model.Board
	neighbors  model.NeighborFunc
	players    [2]Player
	rule       WinRule
	generation int
	history    []string
	winner     rules.CellState
}

// NewSession starts a duel on board. first moves before second in every round.
func NewSession(board *model.Board, neighbors model.NeighborFunc, rule WinRule, first, second Player) (*Session, error) {
	if board == nil || board.Rows() == 0 || board.Cols() == 0 {
		return nil, errors.Wrap(model.ErrInvalidBoardShape, "[NewSession] board is empty")
	}
	if first.Color() == second.Color() || !first.Color().IsAlive() || !second.Color().IsAlive() {
		return nil, errors.Wrapf(ErrSameColor, "[NewSession] colors: %v, %v", first.Color(), second.Color())
	}
	if rule != WinRuleThreshold && rule != WinRuleShare {
		return nil, errors.Errorf("[NewSession] unknown win rule: %+v", rule)
	}

	s := &Session{
		board:     board,
		neighbors: neighbors,
		players:   [2]Player{first, second},
		rule:      rule,
	}
	s.winner = s.evaluate()
	return s, nil
}

// Board returns the live board; callers must not modify it
func (s *Session) Board() *model.Board {
	return s.board
}

// Generation returns the number of generations advanced so far
func (s *Session) Generation() int {
	return s.generation
}

// Winner returns the winning color, or Empty while the game is undecided
func (s *Session) Winner() rules.CellState {
	return s.winner
}

// Verdict reports the game from color's point of view
func (s *Session) Verdict(color rules.CellState) model.Verdict {
	switch s.winner {
	case rules.Empty:
		return model.Undecided
	case color:
		return model.Win
	}
	return model.Lose
}

// Players returns both players in turn order
func (s *Session) Players() [2]Player {
	return s.players
}

// PlayRound lets each player place one cell, then advances one generation.
// A player facing a full board passes. An illegal move aborts the round
// after any earlier placement in it has been applied.
func (s *Session) PlayRound() (RoundResult, error) {
	if s.winner != rules.Empty {
		return RoundResult{}, errors.Wrapf(ErrGameOver, "[PlayRound] winner: %v", s.winner)
	}

	var result RoundResult
	for _, p := range s.players {
		if s.board.IsFull() {
			continue
		}
		at, err := p.NextMove(s.board)
		if err != nil {
			if errors.Is(err, ai.ErrNoLegalMoves) {
				continue
			}
			return result, errors.Wrapf(err, "[PlayRound] %s failed to pick a move", p.Name())
		}
		if err = s.board.Place(at, p.Color()); err != nil {
			return result, errors.Wrapf(err, "[PlayRound] illegal move by %s", p.Name())
		}
		result.Moves = append(result.Moves, Move{Color: p.Color(), At: at})
	}

	s.Advance()

	result.Generation = s.generation
	result.Winner = s.winner
	result.Stagnant = s.IsStagnant()
	return result, nil
}

// Advance replaces the board with its next generation and re-evaluates the winner
func (s *Session) Advance() {
	s.updateHistory()
	s.board = model.NextGeneration(s.board, s.neighbors)
	s.generation++
	s.winner = s.evaluate()
}

func (s *Session) evaluate() rules.CellState {
	if s.rule == WinRuleShare {
		switch {
		case model.ShareVerdict(s.board, rules.Red) == model.Win:
			return rules.Red
		case model.ShareVerdict(s.board, rules.Blue) == model.Win:
			return rules.Blue
		}
		return rules.Empty
	}
	return model.Winner(s.board)
}

// updateHistory adds the current board to history and maintains size
func (s *Session) updateHistory() {
	s.history = append(s.history, s.board.Hash())

	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the board repeats one of the last three generations
func (s *Session) IsStagnant() bool {
	if len(s.history) < 3 {
		return false
	}

	current := s.board.Hash()
	for _, h := range s.history[len(s.history)-3:] {
		if h == current {
			return true
		}
	}
	return false
}
