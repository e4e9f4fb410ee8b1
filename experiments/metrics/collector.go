package metrics

import (
	"errors"
	"temple/game"
	"time"
)

type AgentConfig struct {
	ID   int
	Name string
	Seed uint64
}

type TurnMetric struct {
	Turn          int
	Health        int
	Cell          int // game.Cell id
	Inputs        int // inputs made during the turn
	WallsStanding int
}

type GameMetric struct {
	Agent          string
	Seed           uint64
	Turns          int
	Inputs         int
	Ignored        int
	FinalHealth    int
	Died           bool
	WallsBuilt     int
	WallsBroken    int
	ItemsCollected int
	Shortcuts      int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start(agent string, seed uint64)
	AddInput()
	EndTurn(turn int, v game.View)
	Complete(v game.View) (GameMetric, []TurnMetric)
}

type collector struct {
	agent      string
	seed       uint64
	startTime  time.Time
	turnInputs int
	turns      []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(agent string, seed uint64) {
	m.startTime = time.Now()
	m.agent = agent
	m.seed = seed
	m.turnInputs = 0
	m.turns = nil
}

func (m *collector) AddInput() {
	m.turnInputs++
}

// EndTurn records the state at the end of a turn, after the encounter.
func (m *collector) EndTurn(turn int, v game.View) {
	m.turns = append(m.turns, TurnMetric{
		Turn:          turn,
		Health:        v.Health,
		Cell:          int(v.Cell),
		Inputs:        m.turnInputs,
		WallsStanding: len(v.BuiltWalls),
	})
	m.turnInputs = 0
}

func (m *collector) Complete(v game.View) (GameMetric, []TurnMetric) {
	end := time.Now()
	return GameMetric{
		Agent:          m.agent,
		Seed:           m.seed,
		Turns:          len(m.turns),
		Inputs:         v.Stats.Inputs,
		Ignored:        v.Stats.Ignored,
		FinalHealth:    v.Health,
		Died:           errors.Is(v.Over, game.ErrPlayerDied),
		WallsBuilt:     v.Stats.WallsBuilt,
		WallsBroken:    v.Stats.WallsBroken,
		ItemsCollected: v.Stats.ItemsCollected,
		Shortcuts:      v.Stats.Shortcuts,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
	}, m.turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(agent string, seed uint64) {}
func (m *dummyCollector) AddInput()                       {}
func (m *dummyCollector) EndTurn(turn int, v game.View)   {}
func (m *dummyCollector) Complete(v game.View) (GameMetric, []TurnMetric) {
	return GameMetric{}, nil
}
