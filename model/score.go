package model

import "github.com/sheikhrachel/go-gol-duel/rules"

const (
	// WinThreshold is the share of all cells a color must exceed to win
	WinThreshold = 0.8
	// WinShare and LoseShare bound a color's share of the living cells
	WinShare  = 0.8
	LoseShare = 0.2
)

// Verdict is the outcome of a game from one color's point of view
type Verdict int

const (
	Undecided Verdict = iota
	Win
	Lose
)

func (v Verdict) String() string {
	switch v {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	}
	return "Undecided"
}

// CountColors tallies red, blue and everything else (empty or anomalous)
func CountColors(b *Board) (numRed, numBlue, numOther int) {
	for row := range b.rows {
		for col := range b.cols {
			switch b.cells[row][col] {
			case rules.Red:
				numRed++
			case rules.Blue:
				numBlue++
			default:
				numOther++
			}
		}
	}
	return numRed, numBlue, numOther
}

// Winner returns the color holding more than WinThreshold of all cells, empties
// included, or Empty when neither does
func Winner(b *Board) rules.CellState {
	numRed, numBlue, _ := CountColors(b)
	threshold := WinThreshold * float64(b.Size())

	switch {
	case float64(numRed) > threshold:
		return rules.Red
	case float64(numBlue) > threshold:
		return rules.Blue
	}
	return rules.Empty
}

// Share returns color's fraction of the living cells; ok is false when no cell is alive
func Share(b *Board, color rules.CellState) (share float64, ok bool) {
	numRed, numBlue, _ := CountColors(b)
	alive := numRed + numBlue
	if alive == 0 {
		return 0, false
	}

	switch color {
	case rules.Red:
		return float64(numRed) / float64(alive), true
	case rules.Blue:
		return float64(numBlue) / float64(alive), true
	}
	return 0, true
}

// ShareVerdict judges the game for color using only living cells: a share of at
// least WinShare wins, at most LoseShare loses. A board with no living cells is Undecided.
func ShareVerdict(b *Board, color rules.CellState) Verdict {
	if !color.IsAlive() {
		return Undecided
	}
	share, ok := Share(b, color)
	if !ok {
		return Undecided
	}

	switch {
	case share >= WinShare:
		return Win
	case share <= LoseShare:
		return Lose
	}
	return Undecided
}
