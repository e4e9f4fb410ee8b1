package game

import "fmt"

// Die selects one of the two dice.
type Die int

const (
	NoDie Die = iota
	Die1
	Die2
)

// Slot is where a die face is assigned for the turn.
type Slot int

const (
	SlotNextTile Slot = iota
	SlotEncounter
)

func (s Slot) String() string {
	if s == SlotNextTile {
		return "NextTile"
	}
	return "Encounter"
}

// Input is one classified click. The concrete types are SelectDie, AssignSlot,
// ClickCell, Advance and UseElixir.
type Input interface {
	fmt.Stringer
	isInput()
}

type SelectDie struct{ Die Die }

type AssignSlot struct{ Slot Slot }

// ClickCell is a click on a grid cell. Its meaning depends on the phase: cycling
// the wall orientation, choosing a move, or choosing a teleport destination.
type ClickCell struct{ Cell Cell }

// Advance is the explicit "next phase" button.
type Advance struct{}

type UseElixir struct{}

func (SelectDie) isInput()  {}
func (AssignSlot) isInput() {}
func (ClickCell) isInput()  {}
func (Advance) isInput()    {}
func (UseElixir) isInput()  {}

func (i SelectDie) String() string  { return fmt.Sprintf("SelectDie(%d)", int(i.Die)) }
func (i AssignSlot) String() string { return fmt.Sprintf("AssignSlot(%s)", i.Slot) }
func (i ClickCell) String() string  { return fmt.Sprintf("ClickCell(%s)", i.Cell) }
func (Advance) String() string      { return "Advance" }
func (UseElixir) String() string    { return "UseElixir" }

// Click region ids of the physical board.
const (
	RegionNextTile  = 8
	RegionEncounter = 9
	RegionDie1      = 60
	RegionDie2      = 61
	RegionAdvance   = 62
	RegionElixir    = 63
)

// InputForRegion classifies a clicked region id. Unknown regions yield false.
func InputForRegion(id int) (Input, bool) {
	switch id {
	case RegionNextTile:
		return AssignSlot{Slot: SlotNextTile}, true
	case RegionEncounter:
		return AssignSlot{Slot: SlotEncounter}, true
	case RegionDie1:
		return SelectDie{Die: Die1}, true
	case RegionDie2:
		return SelectDie{Die: Die2}, true
	case RegionAdvance:
		return Advance{}, true
	case RegionElixir:
		return UseElixir{}, true
	}
	if c := Cell(id); c.Valid() {
		return ClickCell{Cell: c}, true
	}
	return nil, false
}
