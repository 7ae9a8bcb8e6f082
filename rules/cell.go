package rules

// CellState is the content of a single board cell
type CellState uint8

const (
	Empty CellState = iota
	Red
	Blue
)

// Normalize maps any value that is not exactly Red or Blue to Empty
func (c CellState) Normalize() CellState {
	if c == Red || c == Blue {
		return c
	}
	return Empty
}

// IsAlive reports whether the cell holds a color
func (c CellState) IsAlive() bool {
	return c == Red || c == Blue
}

// Opponent returns the other color, or Empty for anything that is not a color
func (c CellState) Opponent() CellState {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return Empty
}

// Symbol returns the single rune used in board text: 'R', 'B' or '.'
func (c CellState) Symbol() rune {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	}
	return '.'
}

func (c CellState) String() string {
	switch c {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	}
	return "Empty"
}

// ParseCellState reads a color name or symbol; anything unrecognised is Empty
func ParseCellState(s string) CellState {
	switch s {
	case "R", "r", "red", "Red", "RED":
		return Red
	case "B", "b", "blue", "Blue", "BLUE":
		return Blue
	}
	return Empty
}
