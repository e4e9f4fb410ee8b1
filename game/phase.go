package game

// TurnState is the observable phase of a turn.
type TurnState int

const (
	AssignDice TurnState = iota
	DrawWalls
	Movement
	TileEffect
	Encounter
	ChooseTeleport
	ShortcutDrawWalls
	ShortcutMovement
	ShortcutChooseTeleport
	ShortcutTileEffect
	EndTurn
)

var turnStateNames = map[TurnState]string{
	AssignDice:             "AssignDice",
	DrawWalls:              "DrawWalls",
	Movement:               "Movement",
	TileEffect:             "TileEffect",
	Encounter:              "Encounter",
	ChooseTeleport:         "ChooseTeleport",
	ShortcutDrawWalls:      "ShortcutDrawWalls",
	ShortcutMovement:       "ShortcutMovement",
	ShortcutChooseTeleport: "ShortcutChooseTeleport",
	ShortcutTileEffect:     "ShortcutTileEffect",
	EndTurn:                "EndTurn",
}

func (s TurnState) String() string {
	if name, ok := turnStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsShortcut reports whether s belongs to the shortcut sub-loop.
func (s TurnState) IsShortcut() bool {
	switch s {
	case ShortcutDrawWalls, ShortcutMovement, ShortcutChooseTeleport, ShortcutTileEffect:
		return true
	}
	return false
}

// phase is the active phase together with the selections that only exist in it.
// The draw/move/teleport/tile phases are shared by the normal turn and the
// shortcut sub-loop; the shortcut flag decides where the loop returns.
type phase interface {
	state() TurnState
}

type assignDicePhase struct {
	selected Die
}

type drawWallsPhase struct {
	shortcut    bool
	orientation int
	walls       []Wall
}

type movementPhase struct {
	shortcut bool
	pending  *MoveCandidate
}

type chooseTeleportPhase struct {
	shortcut bool
	pending  *Cell
}

type tileEffectPhase struct {
	shortcut bool
}

type encounterPhase struct{}

type endTurnPhase struct{}

func (assignDicePhase) state() TurnState { return AssignDice }

func (p drawWallsPhase) state() TurnState {
	if p.shortcut {
		return ShortcutDrawWalls
	}
	return DrawWalls
}

func (p movementPhase) state() TurnState {
	if p.shortcut {
		return ShortcutMovement
	}
	return Movement
}

func (p chooseTeleportPhase) state() TurnState {
	if p.shortcut {
		return ShortcutChooseTeleport
	}
	return ChooseTeleport
}

func (p tileEffectPhase) state() TurnState {
	if p.shortcut {
		return ShortcutTileEffect
	}
	return TileEffect
}

func (encounterPhase) state() TurnState { return Encounter }

func (endTurnPhase) state() TurnState { return EndTurn }
