package ai

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// PossibleMoves returns every empty cell in row-major order
func PossibleMoves(b *model.Board) []model.Coordinate {
	var moves []model.Coordinate
	for row := range b.Rows() {
		for col := range b.Cols() {
			if b.Get(row, col) == rules.Empty {
				moves = append(moves, model.Coordinate{Row: row, Col: col})
			}
		}
	}
	return moves
}

// population counts color on the generation following b
func population(b *model.Board, neighbors model.NeighborFunc, color rules.CellState, pool *model.BoardPool) int {
	next := b.NextGenerationParallel(neighbors, pool)
	defer model.BoardToPool(next, pool)

	numRed, numBlue, _ := model.CountColors(next)
	if color == rules.Red {
		return numRed
	}
	return numBlue
}

// Baseline is color's population one generation after b when nobody moves
func Baseline(b *model.Board, neighbors model.NeighborFunc, color rules.CellState, pool *model.BoardPool) int {
	return population(b, neighbors, color, pool)
}

// Evaluate scores placing color at move: the population color gains in the next
// generation compared to baseline. b is not modified.
func Evaluate(
	b *model.Board,
	neighbors model.NeighborFunc,
	move model.Coordinate,
	color rules.CellState,
	baseline int,
	pool *model.BoardPool,
) (int, error) {
	var scratch *model.Board
	if pool != nil {
		scratch = pool.Get(b.Rows(), b.Cols())
		defer pool.Put(scratch)
		b.CopyTo(scratch)
	} else {
		scratch = b.Clone()
	}

	if err := scratch.Place(move, color); err != nil {
		return 0, errors.Wrapf(err, "[Evaluate] failed to simulate move: %v", move)
	}
	return population(scratch, neighbors, color, pool) - baseline, nil
}

// ComputerMove picks a move for color under strategy. b is not modified.
func ComputerMove(
	b *model.Board,
	neighbors model.NeighborFunc,
	strategy Strategy,
	color rules.CellState,
	rng model.Rand,
	pool *model.BoardPool,
) (model.Coordinate, error) {
	if color != rules.Red && color != rules.Blue {
		return model.Coordinate{}, errors.Wrapf(model.ErrInvalidColor, "[ComputerMove] color: %+v", color)
	}

	moves := PossibleMoves(b)
	if len(moves) == 0 {
		return model.Coordinate{}, errors.Wrap(ErrNoLegalMoves, "[ComputerMove] board is full")
	}

	switch strategy {
	case Random:
		return moves[rng.IntN(len(moves))], nil
	case SingleMaxFlipped:
		best, err := bestMoves(b, neighbors, moves, color, pool)
		if err != nil {
			return model.Coordinate{}, errors.Wrap(err, "[ComputerMove] failed to evaluate moves")
		}
		return best[rng.IntN(len(best))], nil
	}
	return model.Coordinate{}, errors.Wrapf(ErrUnknownStrategy, "[ComputerMove] strategy: %+v", strategy)
}

// bestMoves scores every candidate concurrently and returns the top scorers in row-major order
func bestMoves(
	b *model.Board,
	neighbors model.NeighborFunc,
	moves []model.Coordinate,
	color rules.CellState,
	pool *model.BoardPool,
) ([]model.Coordinate, error) {
	var (
		baseline = Baseline(b, neighbors, color, pool)
		scores   = make([]int, len(moves))
		eg       errgroup.Group
	)
	eg.SetLimit(runtime.NumCPU())

	for i, move := range moves {
		eg.Go(func() error {
			score, err := Evaluate(b, neighbors, move, color, baseline, pool)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var best []model.Coordinate
	bestScore := scores[0]
	for i, score := range scores {
		switch {
		case score > bestScore:
			bestScore = score
			best = append(best[:0], moves[i])
		case score == bestScore:
			best = append(best, moves[i])
		}
	}
	return best, nil
}
