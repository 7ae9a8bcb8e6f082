package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-duel/rules"
)

// CountNeighbors counts red and blue neighbors of a cell under the given topology
func (b *Board) CountNeighbors(row, col int, neighbors NeighborFunc) (numRed, numBlue int) {
	n := neighbors(row, col, b.rows, b.cols)
	for _, c := range n.Slice() {
		switch b.Get(c.Row, c.Col) {
		case rules.Red:
			numRed++
		case rules.Blue:
			numBlue++
		}
	}
	return numRed, numBlue
}

// NextGeneration computes the next generation without touching the board it is called on
func NextGeneration(b *Board, neighbors NeighborFunc) *Board {
	return b.NextGenerationParallel(neighbors, nil)
}

// NextGenerationParallel calculates the next generation using parallel processing.
// Every cell reads only the previous board, so rows can be computed independently.
func (b *Board) NextGenerationParallel(neighbors NeighborFunc, pool *BoardPool) *Board {
	var next *Board
	if pool != nil {
		next = pool.Get(b.rows, b.cols)
	} else {
		next = newBoard(b.rows, b.cols)
	}
	if b.rows == 0 {
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), b.rows)
		rowsPerWorker = (b.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.rows)
		)
		if startRow >= b.rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := range b.cols {
					numRed, numBlue := b.CountNeighbors(row, col, neighbors)
					next.cells[row][col] = rules.ApplyDuelRules(b.cells[row][col], numRed, numBlue)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	return next
}
