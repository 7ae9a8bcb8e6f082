package game

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/ai"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// scriptedPlayer replays a fixed list of moves
type scriptedPlayer struct {
	color rules.CellState
	moves []model.Coordinate
	calls int
}

func (p *scriptedPlayer) Color() rules.CellState { return p.color }

func (p *scriptedPlayer) Name() string { return "scripted " + p.color.String() }

func (p *scriptedPlayer) NextMove(b *model.Board) (model.Coordinate, error) {
	if p.calls >= len(p.moves) {
		return model.Coordinate{}, ai.ErrNoLegalMoves
	}
	m := p.moves[p.calls]
	p.calls++
	return m, nil
}

func mustParse(t *testing.T, lines ...string) *model.Board {
	t.Helper()
	b, err := model.ParseBoard(lines...)
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}
	return b
}

func TestNewSessionValidatesPlayers(t *testing.T) {
	b := mustParse(t, "...", "...")
	red := &scriptedPlayer{color: rules.Red}
	alsoRed := &scriptedPlayer{color: rules.Red}
	nobody := &scriptedPlayer{color: rules.Empty}

	if _, err := NewSession(b, model.NowrapNeighborIndices, WinRuleThreshold, red, alsoRed); !errors.Is(err, ErrSameColor) {
		t.Fatalf("expected ErrSameColor, got %v", err)
	}
	if _, err := NewSession(b, model.NowrapNeighborIndices, WinRuleThreshold, red, nobody); !errors.Is(err, ErrSameColor) {
		t.Fatalf("expected ErrSameColor, got %v", err)
	}
	if _, err := NewSession(b, model.NowrapNeighborIndices, WinRule("majority"), red, &scriptedPlayer{color: rules.Blue}); err == nil {
		t.Fatal("expected an error for an unknown win rule")
	}
}

func TestPlayRoundAppliesBothMovesThenAdvances(t *testing.T) {
	b := mustParse(t,
		".....",
		".....",
		".....",
		".....",
		".....",
	)
	red := &scriptedPlayer{color: rules.Red, moves: []model.Coordinate{{Row: 0, Col: 0}}}
	blue := &scriptedPlayer{color: rules.Blue, moves: []model.Coordinate{{Row: 4, Col: 4}}}

	s, err := NewSession(b, model.NowrapNeighborIndices, WinRuleThreshold, red, blue)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	result, err := s.PlayRound()
	if err != nil {
		t.Fatalf("PlayRound failed: %v", err)
	}
	want := []Move{{Color: rules.Red, At: model.Coordinate{Row: 0, Col: 0}}, {Color: rules.Blue, At: model.Coordinate{Row: 4, Col: 4}}}
	if len(result.Moves) != 2 || result.Moves[0] != want[0] || result.Moves[1] != want[1] {
		t.Fatalf("moves = %v, want %v", result.Moves, want)
	}
	if result.Generation != 1 || s.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", result.Generation)
	}
	if numRed, numBlue, _ := model.CountColors(s.Board()); numRed != 0 || numBlue != 0 {
		t.Fatalf("lonely cells should die, board:\n%s", s.Board())
	}
	if result.Winner != rules.Empty {
		t.Fatalf("winner = %v, want none", result.Winner)
	}
}

func TestPlayRoundRejectsIllegalMove(t *testing.T) {
	b := mustParse(t, "R..", "...", "...")
	red := &scriptedPlayer{color: rules.Red, moves: []model.Coordinate{{Row: 1, Col: 1}}}
	blue := &scriptedPlayer{color: rules.Blue, moves: []model.Coordinate{{Row: 0, Col: 0}}}

	s, err := NewSession(b, model.NowrapNeighborIndices, WinRuleThreshold, red, blue)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if _, err = s.PlayRound(); !errors.Is(err, model.ErrOccupiedCell) {
		t.Fatalf("expected ErrOccupiedCell, got %v", err)
	}
	if s.Generation() != 0 {
		t.Fatal("a failed round must not advance the generation")
	}
}

func TestPlayRoundOnFullBoardPasses(t *testing.T) {
	b := mustParse(t, "RB", "BR")
	red := &scriptedPlayer{color: rules.Red, moves: []model.Coordinate{{Row: 0, Col: 0}}}
	blue := &scriptedPlayer{color: rules.Blue, moves: []model.Coordinate{{Row: 0, Col: 1}}}

	s, err := NewSession(b, model.NowrapNeighborIndices, WinRuleThreshold, red, blue)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	result, err := s.PlayRound()
	if err != nil {
		t.Fatalf("PlayRound failed: %v", err)
	}
	if len(result.Moves) != 0 || red.calls != 0 || blue.calls != 0 {
		t.Fatalf("players should pass on a full board, got moves %v", result.Moves)
	}
	if got := s.Board().String(); got != "RB\nBR" {
		t.Fatalf("board =\n%s\nwant unchanged", got)
	}
}

func TestWinRulesDiffer(t *testing.T) {
	lines := []string{
		"RR....",
		"RR....",
		"......",
		"....BB",
	}

	threshold, err := NewSession(mustParse(t, lines...), model.NowrapNeighborIndices, WinRuleThreshold,
		&scriptedPlayer{color: rules.Red}, &scriptedPlayer{color: rules.Blue})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	threshold.Advance()
	if threshold.Winner() != rules.Empty {
		t.Fatalf("threshold rule winner = %v, want none", threshold.Winner())
	}

	share, err := NewSession(mustParse(t, lines...), model.NowrapNeighborIndices, WinRuleShare,
		&scriptedPlayer{color: rules.Red}, &scriptedPlayer{color: rules.Blue})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if share.Winner() != rules.Empty {
		t.Fatalf("share rule winner before advancing = %v, want none", share.Winner())
	}
	share.Advance()
	if share.Winner() != rules.Red {
		t.Fatalf("share rule winner = %v, want Red\n%s", share.Winner(), share.Board())
	}
	if share.Verdict(rules.Red) != model.Win || share.Verdict(rules.Blue) != model.Lose {
		t.Fatal("unexpected verdicts after red takes the board")
	}
	if _, err = share.PlayRound(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestThresholdWinnerDecidedAtStart(t *testing.T) {
	b := mustParse(t,
		"RRRRR",
		"RRRRR",
		"RRRRR",
		"RRRRR",
		"R....",
	)
	s, err := NewSession(b, model.NowrapNeighborIndices, WinRuleThreshold,
		&scriptedPlayer{color: rules.Blue}, &scriptedPlayer{color: rules.Red})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if s.Winner() != rules.Red || s.Verdict(rules.Blue) != model.Lose {
		t.Fatalf("winner = %v, want Red", s.Winner())
	}
}

func TestStillLifeIsStagnant(t *testing.T) {
	s, err := NewSession(mustParse(t, "RR..", "RR..", "....", "...."), model.NowrapNeighborIndices, WinRuleThreshold,
		&scriptedPlayer{color: rules.Red}, &scriptedPlayer{color: rules.Blue})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	s.Advance()
	s.Advance()
	if s.IsStagnant() {
		t.Fatal("two generations of history are not enough to call stagnation")
	}
	s.Advance()
	if !s.IsStagnant() {
		t.Fatal("a still life should be reported as stagnant")
	}
}

func TestComputerDuelKeepsBoardShape(t *testing.T) {
	b, err := model.NewBoard(8, 16, model.NewRNG(21))
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	pool := model.NewBoardPool()
	red := ai.NewComputer(rules.Red, ai.SingleMaxFlipped, model.WrapNeighborIndices, model.NewRNG(1), pool)
	blue := ai.NewComputer(rules.Blue, ai.Random, model.WrapNeighborIndices, model.NewRNG(2), pool)

	s, err := NewSession(b, model.WrapNeighborIndices, WinRuleShare, red, blue)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	for range 25 {
		if s.Winner() != rules.Empty {
			break
		}
		if _, err = s.PlayRound(); err != nil {
			t.Fatalf("PlayRound failed at generation %d: %v", s.Generation(), err)
		}
		if s.Board().Rows() != 8 || s.Board().Cols() != 16 {
			t.Fatalf("board changed shape to %dx%d", s.Board().Rows(), s.Board().Cols())
		}
	}
}

func TestHumanRepromptsUntilLegal(t *testing.T) {
	b := mustParse(t, "R..", "...")
	in := strings.NewReader("oops\n5 5\n0 0\n1,2\n")
	var out bytes.Buffer
	h := NewHuman(rules.Blue, in, &out)

	at, err := h.NextMove(b)
	if err != nil {
		t.Fatalf("NextMove failed: %v", err)
	}
	if at != (model.Coordinate{Row: 1, Col: 2}) {
		t.Fatalf("NextMove = %v, want (1,2)", at)
	}
	for _, msg := range []string{"expected two numbers", "off the 2x3 board", "already taken"} {
		if !strings.Contains(out.String(), msg) {
			t.Fatalf("output %q does not mention %q", out.String(), msg)
		}
	}

	if _, err = h.NextMove(b); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF once input runs out, got %v", err)
	}
}
