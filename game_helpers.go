package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/ai"
	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

// newLogger builds a text logger on stderr at the requested level
func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, in io.Reader, out io.Writer) (
	*game.Session,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	neighbors, err := model.ParseTopology(config.Topology)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] topology")
	}
	strategy, err := ai.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] strategy")
	}

	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	rng := model.NewRNG(config.Seed)
	board, err := model.NewBoard(config.Rows, config.Cols, rng)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed board")
	}

	var (
		humanColor = config.Human()
		first      game.Player
		second     = ai.NewComputer(humanColor.Opponent(), strategy, neighbors, rng, pool)
	)
	if config.Interactive {
		first = game.NewHuman(humanColor, in, out)
	} else {
		first = ai.NewComputer(humanColor, strategy, neighbors, rng, pool)
	}

	session, err := game.NewSession(board, neighbors, game.WinRule(config.WinRule), first, second)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to start session")
	}

	return session, &model.TerminalRenderer{Out: out}, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, session *game.Session) {
	players := session.Players()
	numRed, numBlue, _ := model.CountColors(session.Board())

	fmt.Fprintf(out, "Topology: %s | Strategy: %s | Win rule: %s\n",
		config.Topology, config.Strategy, config.WinRule)
	fmt.Fprintf(out, "Board: %dx%d | Red: %d | Blue: %d\n",
		session.Board().Rows(), session.Board().Cols(), numRed, numBlue)
	fmt.Fprintf(out, "%s plays %v, %s plays %v\n",
		players[0].Name(), players[0].Color(), players[1].Name(), players[1].Color())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, session *game.Session, result game.RoundResult, stats *utils.Stats) {
	numRed, numBlue, _ := model.CountColors(session.Board())

	status := "Active"
	if result.Stagnant {
		status = "Stagnant"
	}
	if numRed+numBlue == 0 {
		status = "Extinct"
	}

	var moves []string
	for _, m := range result.Moves {
		moves = append(moves, fmt.Sprintf("%v %v", m.Color, m.At))
	}

	fmt.Fprintf(out, "Gen: %d | Red: %d | Blue: %d | Status: %s\n",
		session.Generation(), numRed, numBlue, status)
	if len(moves) > 0 {
		fmt.Fprintf(out, "Moves: %s\n", strings.Join(moves, ", "))
	}
	fmt.Fprintf(out, "Avg Red: %.1f | Avg Blue: %.1f | Runtime: %.1fs\n",
		stats.AverageRed, stats.AverageBlue, time.Since(stats.StartTime).Seconds())
	fmt.Fprintln(out)
}

// displayOutcome announces the end of the game from the first player's point of view
func displayOutcome(out io.Writer, session *game.Session) {
	first := session.Players()[0]
	switch session.Verdict(first.Color()) {
	case model.Win:
		fmt.Fprintf(out, "🏆 %v wins (%s)!\n", first.Color(), first.Name())
	case model.Lose:
		fmt.Fprintf(out, "💀 %v wins, %s lose!\n", first.Color().Opponent(), first.Name())
	default:
		fmt.Fprintln(out, "No winner.")
	}
}

// checkStopConditions determines if the game should stop without a winner
func checkStopConditions(session *game.Session, stagnantCount int, config utils.Config) (bool, string) {
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold && !config.Interactive {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && session.Generation() >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// winnerName is used for log attributes
func winnerName(c rules.CellState) string {
	if c == rules.Empty {
		return "none"
	}
	return c.String()
}
