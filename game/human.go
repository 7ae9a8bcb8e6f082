package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// Human reads moves as "row col" lines, prompting again until the move is legal
type Human struct {
	color rules.CellState
	in    *bufio.Scanner
	out   io.Writer
}

// NewHuman creates a player reading from in and prompting on out
func NewHuman(color rules.CellState, in io.Reader, out io.Writer) *Human {
	return &Human{
		color: color,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Color returns the color this player places
func (h *Human) Color() rules.CellState {
	return h.color
}

// Name describes the player for status lines
func (h *Human) Name() string {
	return "you"
}

// NextMove blocks until a legal move is read; input running out is returned as io.EOF
func (h *Human) NextMove(b *model.Board) (model.Coordinate, error) {
	for {
		fmt.Fprintf(h.out, "%v to move, enter \"row col\": ", h.color)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return model.Coordinate{}, errors.Wrap(err, "[NextMove] failed to read move")
			}
			return model.Coordinate{}, io.EOF
		}

		at, err := parseCoordinate(h.in.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		if !b.InBounds(at) {
			fmt.Fprintf(h.out, "%v is off the %dx%d board\n", at, b.Rows(), b.Cols())
			continue
		}
		if b.At(at) != rules.Empty {
			fmt.Fprintf(h.out, "%v is already taken\n", at)
			continue
		}
		return at, nil
	}
}

func parseCoordinate(line string) (model.Coordinate, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return model.Coordinate{}, errors.Errorf("expected two numbers, got %q", strings.TrimSpace(line))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(err, "bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(err, "bad column %q", fields[1])
	}
	return model.Coordinate{Row: row, Col: col}, nil
}
