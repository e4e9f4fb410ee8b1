package experiments

import (
	"fmt"
	"sync"
	"temple/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Throughput is the autoplay speed of one agent.
type Throughput struct {
	Agent        string
	Workers      int
	Games        int
	Inputs       int
	Duration     time.Duration
	GamesPerSec  float64
	InputsPerSec float64
}

// RunThroughput plays games with one agent on a number of goroutines. Every
// game owns its state, so the workers share nothing but the job queue.
func RunThroughput(agentName string, workers, games int, seed uint64, board game.Board) (Throughput, error) {
	if workers < 1 {
		workers = 1
	}
	if games < 1 {
		return Throughput{Agent: agentName, Workers: workers}, fmt.Errorf("throughput run needs at least one game, got %d", games)
	}
	jobs := make(chan uint64)
	type outcome struct {
		inputs int
		err    error
	}
	outcomes := make(chan outcome, games)

	log.Info().Msgf("starting throughput run: %s agent, %d workers, %d games", agentName, workers, games)
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				gm, _, _, err := runGame(agentName, s, board)
				outcomes <- outcome{inputs: gm.Inputs, err: err}
			}
		}()
	}
	for i := 0; i < games; i++ {
		jobs <- seed + uint64(i)
	}
	close(jobs)
	wg.Wait()
	close(outcomes)

	t := Throughput{Agent: agentName, Workers: workers, Duration: time.Since(start)}
	for o := range outcomes {
		if o.err != nil {
			return t, fmt.Errorf("throughput run: %w", o.err)
		}
		t.Games++
		t.Inputs += o.inputs
	}
	if secs := t.Duration.Seconds(); secs > 0 {
		t.GamesPerSec = float64(t.Games) / secs
		t.InputsPerSec = float64(t.Inputs) / secs
	}
	log.Info().Msgf("completed throughput run: %.1f games/s, %.0f inputs/s", t.GamesPerSec, t.InputsPerSec)
	return t, nil
}
