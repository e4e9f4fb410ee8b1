package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"temple/config"
	"temple/experiments"
	"temple/mapgen"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("temple failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	seed := flag.Uint64("seed", cfg.Seed, "Seed of the first game; game i uses seed+i")
	games := flag.Int("games", cfg.Games, "Number of games per agent")
	agents := flag.String("agents", strings.Join(cfg.Agents, ","), "Comma separated agents (random, cautious)")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	outDir := flag.String("out", cfg.OutDir, "Directory for experiment records")
	boardFile := flag.String("board", cfg.BoardFile, "YAML board layout (default: built-in board)")
	mapFile := flag.String("map", cfg.MapFile, "Write a PDF journey map of the last game to this file")
	workers := flag.Int("throughput", 0, "Measure autoplay throughput with this many goroutines instead")
	flag.Parse()

	cfg.Seed = *seed
	cfg.Games = *games
	cfg.Agents = strings.Split(*agents, ",")
	cfg.LogLevel = *logLevel
	cfg.OutDir = *outDir
	cfg.BoardFile = *boardFile
	cfg.MapFile = *mapFile
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	board, err := config.LoadBoard(cfg.BoardFile)
	if err != nil {
		return err
	}

	if *workers > 0 {
		for _, name := range cfg.Agents {
			tp, err := experiments.RunThroughput(name, *workers, cfg.Games, cfg.Seed, board)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d games in %s (%.1f games/s, %.0f inputs/s)\n",
				tp.Agent, tp.Games, tp.Duration, tp.GamesPerSec, tp.InputsPerSec)
		}
		return nil
	}

	res, err := experiments.Run(experiments.Options{
		Agents: cfg.Agents,
		Games:  cfg.Games,
		Seed:   cfg.Seed,
		Board:  board,
		OutDir: cfg.OutDir,
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d game records to %s\n", len(res.Records), res.Dir)

	if cfg.MapFile != "" && res.Final != nil {
		last := res.Records[len(res.Records)-1]
		title := fmt.Sprintf("%s agent, seed %d", last.GameMetric.Agent, last.Seed)
		pdf, err := mapgen.Generate(res.Final.Grid(), res.Final.Board(), res.Final.View(), title)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.MapFile, pdf, 0o644); err != nil {
			return fmt.Errorf("write journey map: %w", err)
		}
		log.Info().Msgf("journey map written to %s", cfg.MapFile)
	}
	return nil
}
