package gamemaster

import (
	"errors"
	"fmt"
	"sync"
	"temple/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrSessionOver  = errors.New("session is over - no inputs allowed")
	ErrIgnoredInput = errors.New("input ignored in this phase")
	ErrNotStarted   = errors.New("session not started")
)

// Update is published once per accepted input.
type Update struct {
	Input  game.Input
	Result game.Result
	View   game.View
}

// UpdateGetter returns the next pending update without blocking. It returns
// false when nothing is pending or the feed is closed.
type UpdateGetter func() (Update, bool)

type Engine interface {
	Init(board game.Board, roller game.Roller) (game.View, UpdateGetter, error)
	Play(game.Input) error
	View() game.View
}

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	mu       sync.Mutex
	state    *game.GameState
	updateCh chan Update
	gameOver bool
}

var (
	singleLocalEngine *localEngine
	once              sync.Once
)

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

// GetLocalEngine returns the process-wide session used by the board UI.
func GetLocalEngine() *localEngine {
	once.Do(func() {
		singleLocalEngine = &localEngine{}
	})
	return singleLocalEngine
}

// updateBuffer holds more updates than one turn can produce, so a UI that
// drains once per frame never blocks Play.
const updateBuffer = 256

func (e *localEngine) Init(board game.Board, roller game.Roller) (game.View, UpdateGetter, error) {
	state, err := game.NewGameState(board, game.NewStandardRules(), roller)
	if err != nil {
		return game.View{}, nil, err
	}

	e.mu.Lock()
	e.state = state
	e.gameOver = false
	updateCh := make(chan Update, updateBuffer)
	e.updateCh = updateCh
	e.mu.Unlock()

	log.Info().Msgf("session started at %s", board.Start)
	return state.View(), func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			return u, ok
		default:
			// No updates yet
			return Update{}, false
		}
	}, nil
}

func (e *localEngine) Play(in game.Input) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return ErrNotStarted
	}
	if e.gameOver {
		return ErrSessionOver
	}

	res, err := e.state.Apply(in)
	if err != nil {
		// Send final update then close
		e.gameOver = true
		e.push(Update{Input: in, Result: res, View: e.state.View()})
		close(e.updateCh)
		return fmt.Errorf("session ended: %w", err)
	}
	if !res.Accepted {
		return fmt.Errorf("%w: %s in %s", ErrIgnoredInput, in, res.From)
	}
	e.push(Update{Input: in, Result: res, View: e.state.View()})
	return nil
}

// PlayRegion classifies a clicked region id and plays it.
func (e *localEngine) PlayRegion(id int) error {
	in, ok := game.InputForRegion(id)
	if !ok {
		return fmt.Errorf("%w: no input for region %d", ErrIgnoredInput, id)
	}
	return e.Play(in)
}

func (e *localEngine) View() game.View {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return game.View{}
	}
	return e.state.View()
}

// push drops the oldest update when nobody drains the feed.
func (e *localEngine) push(u Update) {
	for {
		select {
		case e.updateCh <- u:
			return
		default:
			select {
			case <-e.updateCh:
				log.Warn().Msg("update feed full, dropped oldest update")
			default:
			}
		}
	}
}
