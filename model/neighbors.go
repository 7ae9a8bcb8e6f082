package model

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the size of a full Moore neighborhood
const MaxNeighbors = 8

// Neighbors is a fixed-capacity ordered list of neighbor coordinates
type Neighbors struct {
	coords [MaxNeighbors]Coordinate
	n      int
}

// Len returns the number of neighbors held
func (n *Neighbors) Len() int {
	return n.n
}

// At returns the i-th neighbor
func (n *Neighbors) At(i int) Coordinate {
	return n.coords[i]
}

// Slice returns the neighbors as a slice backed by the list
func (n *Neighbors) Slice() []Coordinate {
	return n.coords[:n.n]
}

// add appends c unless it is already present or the list is full
func (n *Neighbors) add(c Coordinate) {
	if n.n == MaxNeighbors {
		return
	}
	for _, existing := range n.coords[:n.n] {
		if existing == c {
			return
		}
	}
	n.coords[n.n] = c
	n.n++
}

// NeighborFunc maps a cell to its neighbors on a maxRows x maxCols grid
type NeighborFunc func(row, col, maxRows, maxCols int) Neighbors

// NowrapNeighborIndices treats the borders as solid, so edge cells have 5 neighbors and corners 3
func NowrapNeighborIndices(row, col, maxRows, maxCols int) Neighbors {
	var n Neighbors

	minR := max(0, row-1)
	maxR := min(maxRows-1, row+1)
	minC := max(0, col-1)
	maxC := min(maxCols-1, col+1)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			n.add(Coordinate{Row: r, Col: c})
		}
	}
	return n
}

// WrapNeighborIndices wraps both axes, so the last row touches the first and likewise for columns
func WrapNeighborIndices(row, col, maxRows, maxCols int) Neighbors {
	var n Neighbors

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := Coordinate{
				Row: ((row+dr)%maxRows + maxRows) % maxRows,
				Col: ((col+dc)%maxCols + maxCols) % maxCols,
			}
			// On grids narrower than 3 wrapping can land back on the origin
			if c.Row == row && c.Col == col {
				continue
			}
			n.add(c)
		}
	}
	return n
}

// Topology names a neighbor policy
type Topology string

const (
	TopologyBounded  Topology = "bounded"
	TopologyToroidal Topology = "toroidal"
)

// ParseTopology returns the neighbor function for a topology name
func ParseTopology(name string) (NeighborFunc, error) {
	switch Topology(strings.ToLower(strings.TrimSpace(name))) {
	case TopologyBounded, "nowrap":
		return NowrapNeighborIndices, nil
	case TopologyToroidal, "wrap":
		return WrapNeighborIndices, nil
	}
	return nil, errors.Wrapf(ErrUnknownTopology, "[ParseTopology] name: %+v", name)
}
