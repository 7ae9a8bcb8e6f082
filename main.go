package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	logger := newLogger(*levelStr)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error("invalid configuration", "path", *configPath, "err", err)
			os.Exit(1)
		}
		logger.Info("using default configuration", "path", *configPath)
		config = utils.DefaultConfig()
	}

	session, renderer, stats, err := initializeGame(config, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("failed to start game", "err", err)
		os.Exit(1)
	}
	displayGameInfo(os.Stdout, config, session)
	renderer.Display(session.Board())

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- runGame(logger, config, session, renderer, stats)
	}()

	select {
	case <-sigChan:
		// The game goroutine may be blocked on stdin, so it is abandoned here
		fmt.Println("\n🛑 Shutting down gracefully...")
		return
	case err = <-done:
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds | peak red %d, peak blue %d\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds(), stats.PeakRed, stats.PeakBlue)
	if err != nil {
		logger.Error("game aborted", "generation", session.Generation(), "err", err)
		os.Exit(1)
	}
}

// runGame plays rounds until the game is decided or a stop condition is hit
func runGame(
	logger *slog.Logger,
	config utils.Config,
	session *game.Session,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for session.Winner() == rules.Empty {
		frameStart := time.Now()

		result, err := session.PlayRound()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info("input closed, ending game")
				return nil
			}
			return errors.Wrap(err, "[runGame] round failed")
		}

		numRed, numBlue, _ := model.CountColors(session.Board())
		stats.Update(result.Generation, numRed, numBlue, time.Since(lastFrameTime))
		lastFrameTime = frameStart
		logger.Debug("round played",
			"generation", result.Generation,
			"moves", len(result.Moves),
			"red", numRed,
			"blue", numBlue,
			"winner", winnerName(result.Winner),
		)

		if result.Stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		if !config.Interactive {
			renderer.Clear()
		}
		displayGameStatus(os.Stdout, session, result, stats)
		renderer.Display(session.Board())

		if stop, reason := checkStopConditions(session, stagnantCount, config); stop && session.Winner() == rules.Empty {
			fmt.Printf("\n🏁 Stopping: %s\n", reason)
			logger.Info("game stopped", "reason", reason, "generation", session.Generation())
			return nil
		}

		// Wait before next frame when nobody has to type
		if !config.Interactive {
			time.Sleep(config.FrameRate)
		}
	}

	displayOutcome(os.Stdout, session)
	logger.Info("game decided", "winner", winnerName(session.Winner()), "generation", session.Generation())
	return nil
}
