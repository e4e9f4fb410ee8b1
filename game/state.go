package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"
)

// Stats counts what happened during a session.
type Stats struct {
	Inputs         int
	Ignored        int
	WallsBuilt     int
	WallsBroken    int
	ItemsCollected int
	Shortcuts      int
}

// GameState owns every mutable part of a session. It is mutated only by Apply.
type GameState struct {
	grid   *Grid
	rules  Rules
	board  Board
	roller Roller

	player     Player
	die1, die2 Face
	nextTile   Face
	encounter  Face
	builtWalls mapset.Set[WallID]
	discovered mapset.Set[Cell]
	phase      phase
	stats      Stats

	// over holds the fatal error that ended the session.
	over error
}

// Result reports what one Apply call did.
type Result struct {
	Accepted bool
	From     TurnState
	To       TurnState
	// Outcome is set when the input resolved an encounter.
	Outcome *EncounterOutcome
}

// NewGameState sets up turn 1: full health at the start cell, two fresh dice,
// no walls, phase AssignDice.
func NewGameState(board Board, rules Rules, roller Roller) (*GameState, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}
	if rules == nil {
		rules = NewStandardRules()
	}
	gs := &GameState{
		grid:   NewGrid(),
		rules:  rules,
		board:  board.Copy(),
		roller: roller,
		player: Player{
			Health:  MaxHealth,
			Cell:    board.Start,
			Turn:    1,
			Visited: []Cell{board.Start},
		},
		builtWalls: mapset.New[WallID](),
		discovered: mapset.New[Cell](),
		phase:      assignDicePhase{},
	}
	var err error
	if gs.die1, err = gs.rollDie(); err != nil {
		return nil, err
	}
	if gs.die2, err = gs.rollDie(); err != nil {
		return nil, err
	}
	return gs, nil
}

// MustNewGameState is NewGameState for layouts known to be valid.
func MustNewGameState(board Board, rules Rules, roller Roller) *GameState {
	gs, err := NewGameState(board, rules, roller)
	if err != nil {
		panic(err)
	}
	return gs
}

// Apply handles one input to completion. Inputs that are not valid in the current
// phase are ignored: Accepted is false and the error is nil. A non-nil error is
// fatal (ErrPlayerDied or ErrInvariantViolation) and ends the session; later
// calls return ErrGameOver.
func (gs *GameState) Apply(in Input) (Result, error) {
	from := gs.phase.state()
	if gs.over != nil {
		return Result{From: from, To: from}, fmt.Errorf("%w: %v", ErrGameOver, gs.over)
	}
	gs.stats.Inputs++

	res, err := gs.apply(in)
	res.From = from
	res.To = gs.phase.state()

	if err != nil {
		gs.over = err
		if errors.Is(err, ErrPlayerDied) {
			log.Info().Msgf("player died on turn %d at %s", gs.player.Turn, gs.player.Cell)
		} else {
			log.Error().Err(err).Msgf("session aborted in %s", from)
		}
		return res, err
	}
	if !res.Accepted {
		gs.stats.Ignored++
		log.Debug().Msgf("ignored %s in %s", in, from)
		return res, nil
	}
	log.Debug().Msgf("applied %s: %s -> %s", in, res.From, res.To)
	return res, nil
}

func (gs *GameState) apply(in Input) (Result, error) {
	if _, ok := in.(UseElixir); ok {
		return gs.useElixir()
	}

	switch p := gs.phase.(type) {
	case assignDicePhase:
		switch in := in.(type) {
		case SelectDie:
			return gs.selectDie(p, in.Die), nil
		case AssignSlot:
			return gs.assignToSlot(p, in.Slot), nil
		case Advance:
			return gs.finishAssignment()
		}

	case drawWallsPhase:
		switch in := in.(type) {
		case ClickCell:
			if in.Cell != gs.player.Cell {
				return Result{}, nil
			}
			return gs.cycleOrientation(p)
		case Advance:
			return gs.commitWalls(p)
		}

	case movementPhase:
		switch in := in.(type) {
		case ClickCell:
			wall, ok := gs.grid.AreAdjacent(gs.player.Cell, in.Cell)
			if !ok {
				return Result{}, nil
			}
			candidate, err := gs.candidateMove(wall, in.Cell)
			if err != nil {
				return Result{}, err
			}
			p.pending = &candidate
			gs.phase = p
			return Result{Accepted: true}, nil
		case Advance:
			if p.pending == nil {
				return Result{}, nil
			}
			return gs.commitMove(p)
		}

	case chooseTeleportPhase:
		switch in := in.(type) {
		case ClickCell:
			if !gs.board.IsTeleport(in.Cell) {
				return Result{}, nil
			}
			dest := in.Cell
			p.pending = &dest
			gs.phase = p
			return Result{Accepted: true}, nil
		case Advance:
			if p.pending == nil {
				return Result{}, nil
			}
			return gs.commitTeleport(p), nil
		}

	case tileEffectPhase:
		if _, ok := in.(Advance); ok {
			gs.applyTileEffect()
			if p.shortcut {
				gs.phase = endTurnPhase{}
			} else {
				gs.phase = encounterPhase{}
			}
			return Result{Accepted: true}, nil
		}

	case encounterPhase:
		if _, ok := in.(Advance); ok {
			return gs.resolveEncounter()
		}

	case endTurnPhase:
		if _, ok := in.(Advance); ok {
			return gs.endTurn()
		}

	default:
		return Result{}, invariant("unknown phase %T", gs.phase)
	}
	return Result{}, nil
}

// endTurn rerolls both dice, clears the slots and starts the next turn.
func (gs *GameState) endTurn() (Result, error) {
	d1, err := gs.rollDie()
	if err != nil {
		return Result{}, err
	}
	d2, err := gs.rollDie()
	if err != nil {
		return Result{}, err
	}
	gs.die1, gs.die2 = d1, d2
	gs.nextTile, gs.encounter = NoFace, NoFace
	gs.player.Turn++
	gs.phase = assignDicePhase{}
	log.Debug().Msgf("turn %d: rolled %d and %d", gs.player.Turn, d1, d2)
	return Result{Accepted: true}, nil
}

// setHealth stores v, which must already be clamped to [0, MaxHealth].
// Reaching 0 is fatal.
func (gs *GameState) setHealth(v int) error {
	if v > MaxHealth || v < 0 {
		return invariant("health %d outside [0,%d]", v, MaxHealth)
	}
	gs.player.Health = v
	if v == 0 {
		return fmt.Errorf("%w on turn %d at %s", ErrPlayerDied, gs.player.Turn, gs.player.Cell)
	}
	return nil
}

func (gs *GameState) rollDie() (Face, error) {
	if gs.roller == nil {
		return NoFace, invariant("no die roller")
	}
	f := gs.roller.RollD6()
	if f < 1 || f > 6 {
		return NoFace, invariant("die roller produced %d", f)
	}
	return Face(f), nil
}

// rollTile rerolls face while it is 6.
func (gs *GameState) rollTile(face Face) (Face, error) {
	for i := 0; face == 6; i++ {
		if i == MaxTileRerolls {
			return NoFace, invariant("next tile still 6 after %d rerolls", i)
		}
		f, err := gs.rollDie()
		if err != nil {
			return NoFace, err
		}
		face = f
	}
	return face, nil
}

func (gs *GameState) State() TurnState     { return gs.phase.state() }
func (gs *GameState) Grid() *Grid          { return gs.grid }
func (gs *GameState) Board() Board         { return gs.board.Copy() }
func (gs *GameState) Health() int          { return gs.player.Health }
func (gs *GameState) Cell() Cell           { return gs.player.Cell }
func (gs *GameState) Turn() int            { return gs.player.Turn }
func (gs *GameState) Inventory() Inventory { return gs.player.Inventory }
func (gs *GameState) Dice() (Face, Face)   { return gs.die1, gs.die2 }
func (gs *GameState) NextTile() Face       { return gs.nextTile }
func (gs *GameState) EncounterFace() Face  { return gs.encounter }
func (gs *GameState) Stats() Stats         { return gs.stats }

// Over returns the fatal error that ended the session, or nil while it is live.
func (gs *GameState) Over() error { return gs.over }

// Visited returns a copy of the visited-cell history.
func (gs *GameState) Visited() []Cell {
	return append([]Cell(nil), gs.player.Visited...)
}

// IsWallBuilt reports whether the wall on side w of c is standing.
func (gs *GameState) IsWallBuilt(c Cell, w Wall) (bool, error) {
	id, err := gs.grid.WallID(c, w)
	if err != nil {
		return false, err
	}
	return gs.builtWalls.Has(id), nil
}

// SelectedDie is the die picked in AssignDice, or NoDie.
func (gs *GameState) SelectedDie() Die {
	if p, ok := gs.phase.(assignDicePhase); ok {
		return p.selected
	}
	return NoDie
}

// Orientation and SelectedWalls describe the wall shape while drawing walls.
func (gs *GameState) Orientation() int {
	if p, ok := gs.phase.(drawWallsPhase); ok {
		return p.orientation
	}
	return 0
}

func (gs *GameState) SelectedWalls() []Wall {
	if p, ok := gs.phase.(drawWallsPhase); ok {
		return append([]Wall(nil), p.walls...)
	}
	return nil
}

// PendingMove is the selected movement candidate, if any.
func (gs *GameState) PendingMove() (MoveCandidate, bool) {
	if p, ok := gs.phase.(movementPhase); ok && p.pending != nil {
		return *p.pending, true
	}
	return MoveCandidate{}, false
}

// PendingTeleport is the selected teleport destination, if any.
func (gs *GameState) PendingTeleport() (Cell, bool) {
	if p, ok := gs.phase.(chooseTeleportPhase); ok && p.pending != nil {
		return *p.pending, true
	}
	return 0, false
}
