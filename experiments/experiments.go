package experiments

import (
	"fmt"
	"temple/agent"
	"temple/engine"
	"temple/experiments/metrics"
	"temple/game"

	"github.com/rs/zerolog/log"
)

// Options describes one batch of autoplay games.
type Options struct {
	Name   string
	Agents []string
	Games  int // per agent
	Seed   uint64
	Board  game.Board
	OutDir string
}

// Result is what a batch produced.
type Result struct {
	Dir     string
	Records []metrics.GameRecord
	// Final is the state of the last game played.
	Final *game.GameState
}

// Run plays opts.Games games with every agent and writes the records to
// <OutDir>/<Name>/<timestamp>. Game i uses seed opts.Seed+i for both the dice
// and the agent, so every agent faces the same dice streams.
func Run(opts Options) (Result, error) {
	if opts.Name == "" {
		opts.Name = "autoplay"
	}
	configs := make([]metrics.AgentConfig, len(opts.Agents))
	for i, name := range opts.Agents {
		configs[i] = metrics.AgentConfig{ID: i + 1, Name: name, Seed: opts.Seed}
	}

	count := 0
	var result Result
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", opts.Name)

	for ci, config := range configs {
		log.Info().Msgf("starting agent %d of %d: %s", ci+1, len(configs), config.Name)
		deaths := 0

		for i := 0; i < opts.Games; i++ {
			seed := opts.Seed + uint64(i)
			gameMetric, turnMetrics, final, err := runGame(config.Name, seed, opts.Board)
			if err != nil {
				return result, fmt.Errorf("%s game %d (seed %d): %w", config.Name, i+1, seed, err)
			}
			count++
			result.Records = append(result.Records, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{Game: count, TurnMetric: tm})
			}
			if gameMetric.Died {
				deaths++
			}
			result.Final = final
		}
		log.Info().Msgf("completed agent %s: %d of %d games survived", config.Name, opts.Games-deaths, opts.Games)
	}

	log.Info().Msgf("completed %s experiment", opts.Name)

	writer, err := metrics.NewWriter(opts.OutDir, opts.Name)
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return result, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Records); err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return result, fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msg("stored turn records")
	return result, nil
}

// runGame plays a single game and returns its metrics and final state
func runGame(agentName string, seed uint64, board game.Board) (metrics.GameMetric, []metrics.TurnMetric, *game.GameState, error) {
	a, err := agent.New(agentName, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, nil, err
	}
	e, err := engine.NewLocalEngine(a, board, seed, metrics.NewCollector())
	if err != nil {
		return metrics.GameMetric{}, nil, nil, err
	}
	gameMetric, turnMetrics, err := e.Run()
	return gameMetric, turnMetrics, e.State, err
}
