package agent

import (
	"fmt"
	"temple/game"

	"golang.org/x/exp/rand"
)

// Agent picks the next input for a live game.
type Agent interface {
	Name() string
	// FindInput returns one of gs.LegalInputs(), or nil when there is none.
	FindInput(gs *game.GameState) game.Input
}

// Names lists the agents New can build.
var Names = []string{"random", "cautious"}

// New builds the named agent with its own seeded random source.
func New(name string, seed uint64) (Agent, error) {
	rng := rand.New(rand.NewSource(seed))
	switch name {
	case "random":
		return &randomAgent{rng: rng}, nil
	case "cautious":
		return &cautiousAgent{rng: rng}, nil
	}
	return nil, fmt.Errorf("unknown agent %q", name)
}

type randomAgent struct {
	rng *rand.Rand
}

func (a *randomAgent) Name() string { return "random" }

func (a *randomAgent) FindInput(gs *game.GameState) game.Input {
	inputs := gs.LegalInputs()
	if len(inputs) == 0 {
		return nil
	}
	return inputs[a.rng.Intn(len(inputs))]
}

// cautiousAgent plays the best-scoring legal input and breaks ties at random.
type cautiousAgent struct {
	rng *rand.Rand
}

func (a *cautiousAgent) Name() string { return "cautious" }

func (a *cautiousAgent) FindInput(gs *game.GameState) game.Input {
	var best []game.Input
	bestScore := 0.0
	for _, in := range gs.LegalInputs() {
		score := game.ScoreInput(gs, in)
		switch {
		case len(best) == 0 || score > bestScore:
			best = []game.Input{in}
			bestScore = score
		case score == bestScore:
			best = append(best, in)
		}
	}
	if len(best) == 0 {
		return nil
	}
	return best[a.rng.Intn(len(best))]
}
