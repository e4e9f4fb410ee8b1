package game

import "sort"

// View is a read-only snapshot of everything a renderer needs. It shares no
// memory with the GameState it was taken from.
type View struct {
	State     TurnState
	Turn      int
	Health    int
	Cell      Cell
	Inventory Inventory

	Die1, Die2  Face
	SelectedDie Die
	NextTile    Face
	Encounter   Face

	Orientation   int
	SelectedWalls []Wall
	PendingMove   *MoveCandidate
	// PendingTeleport is the chosen teleport destination, if any.
	PendingTeleport *Cell

	BuiltWalls []WallID // ascending
	Discovered []Cell   // ascending
	Visited    []Cell
	Stats      Stats
	Over       error
}

// View copies the current state.
func (gs *GameState) View() View {
	v := View{
		State:         gs.State(),
		Turn:          gs.player.Turn,
		Health:        gs.player.Health,
		Cell:          gs.player.Cell,
		Inventory:     gs.player.Inventory,
		Die1:          gs.die1,
		Die2:          gs.die2,
		SelectedDie:   gs.SelectedDie(),
		NextTile:      gs.nextTile,
		Encounter:     gs.encounter,
		Orientation:   gs.Orientation(),
		SelectedWalls: gs.SelectedWalls(),
		Visited:       gs.Visited(),
		Stats:         gs.stats,
		Over:          gs.over,
	}
	if m, ok := gs.PendingMove(); ok {
		v.PendingMove = &m
	}
	if c, ok := gs.PendingTeleport(); ok {
		v.PendingTeleport = &c
	}

	v.BuiltWalls = make([]WallID, 0, gs.builtWalls.Size())
	gs.builtWalls.Each(func(id WallID) {
		v.BuiltWalls = append(v.BuiltWalls, id)
	})
	sort.Slice(v.BuiltWalls, func(i, j int) bool { return v.BuiltWalls[i] < v.BuiltWalls[j] })

	v.Discovered = make([]Cell, 0, gs.discovered.Size())
	gs.discovered.Each(func(c Cell) {
		v.Discovered = append(v.Discovered, c)
	})
	sort.Slice(v.Discovered, func(i, j int) bool { return v.Discovered[i] < v.Discovered[j] })
	return v
}

// IsBuilt reports whether id is in the snapshot's wall set.
func (v View) IsBuilt(id WallID) bool {
	i := sort.Search(len(v.BuiltWalls), func(i int) bool { return v.BuiltWalls[i] >= id })
	return i < len(v.BuiltWalls) && v.BuiltWalls[i] == id
}
