package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/rules"
)

// scriptedRand replays fixed values, reduced modulo n
type scriptedRand struct {
	values []int
	next   int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestNewBoardMirrorsColors(t *testing.T) {
	cases := []struct {
		rows, cols int
		seed       int64
	}{
		{4, 4, 1},
		{3, 4, 2},
		{16, 8, 3},
		{14, 28, 4},
		{7, 9, 5},
	}

	for _, tc := range cases {
		b, err := NewBoard(tc.rows, tc.cols, NewRNG(tc.seed))
		if err != nil {
			t.Fatalf("NewBoard(%d, %d) failed: %v", tc.rows, tc.cols, err)
		}
		if b.Rows() != tc.rows || b.Cols() != tc.cols {
			t.Fatalf("board is %dx%d, want %dx%d", b.Rows(), b.Cols(), tc.rows, tc.cols)
		}

		halfBoundary := tc.rows/2 - 1
		var leftColor rules.CellState
		filled := 0
		for row := range tc.rows {
			for col := range tc.cols {
				state := b.Get(row, col)
				if state == rules.Empty {
					continue
				}
				filled++
				if row > halfBoundary {
					continue
				}
				if leftColor == rules.Empty {
					leftColor = state
				}
				if state != leftColor {
					t.Fatalf("%dx%d: top half mixes colors at (%d,%d)", tc.rows, tc.cols, row, col)
				}
				if mirror := b.Get(tc.rows-1-row, col); mirror != state.Opponent() {
					t.Fatalf("%dx%d: (%d,%d) is %v but mirror is %v", tc.rows, tc.cols, row, col, state, mirror)
				}
			}
		}

		if want := 2 * (tc.rows * tc.cols / 4); filled != want {
			t.Fatalf("%dx%d: %d filled cells, want %d", tc.rows, tc.cols, filled, want)
		}
		if tc.rows%2 == 1 {
			for col := range tc.cols {
				if b.Get(tc.rows/2, col) != rules.Empty {
					t.Fatalf("%dx%d: middle row must stay empty", tc.rows, tc.cols)
				}
			}
		}
	}
}

func TestNewBoardSkipsOccupiedCandidates(t *testing.T) {
	// color pick, then (row, col) pairs: (0,0), (0,0) again, (1,1), (0,3), (1,2)
	rng := &scriptedRand{values: []int{1, 0, 0, 0, 0, 1, 1, 0, 3, 1, 2}}

	b, err := NewBoard(4, 4, rng)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	want := mustParse(t,
		"B..B",
		".BB.",
		".RR.",
		"R..R",
	)
	if !b.Equal(want) {
		t.Fatalf("got\n%s\nwant\n%s", b, want)
	}
	if rng.next != len(rng.values) {
		t.Fatalf("consumed %d random values, want %d", rng.next, len(rng.values))
	}
}

func TestNewBoardRejectsUnseedableShapes(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 2}, {1, 8}} {
		if _, err := NewBoard(dims[0], dims[1], NewRNG(1)); !errors.Is(err, ErrInvalidBoardShape) {
			t.Fatalf("NewBoard(%d, %d) error = %v, want ErrInvalidBoardShape", dims[0], dims[1], err)
		}
	}
}
