package rules

/*
ApplyDuelRules applies the two-color Game of Life rules to determine the next state of a cell.

Fewer than 2 or more than 3 living neighbors kill the cell. Exactly 2 keeps the cell as it is,
empty or not. Exactly 3 keeps a living cell unchanged and gives birth to an empty one in the
majority neighbor color, where an even split goes to Blue.
*/
func ApplyDuelRules(current CellState, numRed, numBlue int) CellState {
	current = current.Normalize()

	switch numRed + numBlue {
	case 2:
		return current
	case 3:
		if current.IsAlive() {
			return current
		}
		return MajorityColor(numRed, numBlue)
	default:
		return Empty
	}
}

// MajorityColor returns the color with more neighbors, Blue on a tie
func MajorityColor(numRed, numBlue int) CellState {
	if numRed > numBlue {
		return Red
	}
	return Blue
}
