package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/ai"
	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/rules"
)

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	Topology            string        `json:"topology"`
	Strategy            string        `json:"strategy"`
	HumanColor          string        `json:"human_color"`
	Interactive         bool          `json:"interactive"`
	Seed                int64         `json:"seed"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	WinRule             string        `json:"win_rule"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                14,
		Cols:                28,
		Topology:            string(model.TopologyBounded),
		Strategy:            ai.SingleMaxFlipped.String(),
		HumanColor:          "R",
		Interactive:         true,
		Seed:                0, // Seed from the clock
		FrameRate:           time.Second,
		MaxGenerations:      500,
		WinRule:             string(game.WinRuleThreshold),
		UseMemoryPool:       true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that every named option is known and the board can be seeded
func (c Config) Validate() error {
	if c.Rows < 2 || c.Cols < 1 {
		return errors.Wrapf(model.ErrInvalidBoardShape, "[Validate] board: %dx%d", c.Rows, c.Cols)
	}
	if _, err := model.ParseTopology(c.Topology); err != nil {
		return errors.Wrap(err, "[Validate] topology")
	}
	if _, err := ai.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrap(err, "[Validate] strategy")
	}
	if !c.Human().IsAlive() {
		return errors.Wrapf(model.ErrInvalidColor, "[Validate] human_color: %+v", c.HumanColor)
	}
	if rule := game.WinRule(c.WinRule); rule != game.WinRuleThreshold && rule != game.WinRuleShare {
		return errors.Errorf("[Validate] unknown win_rule: %+v", c.WinRule)
	}
	if c.FrameRate < 0 || c.MaxGenerations < 0 || c.StagnationThreshold < 0 {
		return errors.New("[Validate] frame_rate, max_generations and stagnation_threshold must not be negative")
	}
	return nil
}

// Human returns the color of the human player (or the first computer in non-interactive mode)
func (c Config) Human() rules.CellState {
	return rules.ParseCellState(c.HumanColor)
}
