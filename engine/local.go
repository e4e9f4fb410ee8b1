package engine

import (
	"errors"
	"fmt"
	"temple/agent"
	"temple/experiments/metrics"
	"temple/game"
	"temple/meta"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State     *game.GameState
	Agent     agent.Agent
	Seed      uint64
	MaxTurns  int
	MaxInputs int
	collector metrics.Collector
}

// NewLocalEngine sets up a game on board with a die stream seeded by seed.
func NewLocalEngine(a agent.Agent, board game.Board, seed uint64, collector metrics.Collector) (*LocalEngine, error) {
	if a == nil {
		return nil, errors.New("engine needs an agent")
	}
	state, err := game.NewGameState(board, game.NewStandardRules(), game.NewRoller(seed))
	if err != nil {
		return nil, err
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &LocalEngine{
		State:     state,
		Agent:     a,
		Seed:      seed,
		MaxTurns:  meta.MAX_TURNS,
		MaxInputs: meta.MAX_INPUTS,
		collector: collector,
	}, nil
}

// Run executes the game loop. Death ends the game normally; an invariant
// violation or a stuck agent is returned as an error.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.TurnMetric, error) {
	e.collector.Start(e.Agent.Name(), e.Seed)
	log.Info().Msgf("%s agent starting with seed %d", e.Agent.Name(), e.Seed)

	var runErr error
	for inputs := 0; ; inputs++ {
		if e.State.Turn() > e.MaxTurns {
			log.Info().Msgf("reached the turn cap of %d", e.MaxTurns)
			break
		}
		if inputs >= e.MaxInputs {
			runErr = fmt.Errorf("no game end after %d inputs", inputs)
			break
		}

		in := e.Agent.FindInput(e.State)
		if in == nil {
			runErr = fmt.Errorf("%s agent found no input in %s", e.Agent.Name(), e.State.State())
			break
		}

		from, turn := e.State.State(), e.State.Turn()
		res, err := e.State.Apply(in)
		e.collector.AddInput()
		if err != nil {
			if errors.Is(err, game.ErrPlayerDied) {
				e.collector.EndTurn(turn, e.State.View())
				break
			}
			runErr = err
			break
		}
		if !res.Accepted {
			runErr = fmt.Errorf("%s agent chose %s, which %s does not accept", e.Agent.Name(), in, from)
			break
		}
		if from == game.EndTurn && res.To == game.AssignDice {
			e.collector.EndTurn(turn, e.State.View())
		}
	}

	v := e.State.View()
	gameMetric, turnMetrics := e.collector.Complete(v)
	if errors.Is(v.Over, game.ErrPlayerDied) {
		log.Info().Msgf("%s agent died on turn %d", e.Agent.Name(), v.Turn)
	} else {
		log.Info().Msgf("%s agent finished with health %d", e.Agent.Name(), v.Health)
	}
	return gameMetric, turnMetrics, runErr
}
