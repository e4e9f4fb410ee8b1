package game

func (gs *GameState) die(d Die) *Face {
	switch d {
	case Die1:
		return &gs.die1
	case Die2:
		return &gs.die2
	}
	return nil
}

func (gs *GameState) slot(s Slot) *Face {
	switch s {
	case SlotNextTile:
		return &gs.nextTile
	case SlotEncounter:
		return &gs.encounter
	}
	return nil
}

// selectDie replaces the current selection. Empty dice cannot be selected.
func (gs *GameState) selectDie(p assignDicePhase, d Die) Result {
	face := gs.die(d)
	if face == nil || *face == NoFace {
		return Result{}
	}
	p.selected = d
	gs.phase = p
	return Result{Accepted: true}
}

// assignToSlot moves the selected die's face into s. An empty slot clears the
// die; an occupied slot hands its old face back to the die instead.
func (gs *GameState) assignToSlot(p assignDicePhase, s Slot) Result {
	target := gs.slot(s)
	source := gs.die(p.selected)
	if target == nil || source == nil {
		return Result{}
	}
	*source, *target = *target, *source
	gs.phase = assignDicePhase{}
	return Result{Accepted: true}
}

// finishAssignment leaves AssignDice once both dice have been placed. A next-tile
// 6 is rerolled before the wall shape is chosen.
func (gs *GameState) finishAssignment() (Result, error) {
	if gs.die1 != NoFace || gs.die2 != NoFace {
		return Result{}, nil
	}
	if gs.nextTile == NoFace || gs.encounter == NoFace {
		return Result{}, invariant("both dice placed but slots hold %d and %d", gs.nextTile, gs.encounter)
	}
	return gs.startDrawing(gs.nextTile, false)
}

// startDrawing rerolls a 6 tile face and enters the wall-drawing phase at
// orientation 0.
func (gs *GameState) startDrawing(face Face, shortcut bool) (Result, error) {
	tile, err := gs.rollTile(face)
	if err != nil {
		return Result{}, err
	}
	walls, ok := gs.rules.WallShape(tile, 0)
	if !ok {
		return Result{}, invariant("no wall shape for tile %d", tile)
	}
	gs.nextTile = tile
	gs.phase = drawWallsPhase{shortcut: shortcut, walls: walls}
	return Result{Accepted: true}, nil
}

// cycleOrientation turns the selected wall shape a quarter clockwise.
func (gs *GameState) cycleOrientation(p drawWallsPhase) (Result, error) {
	next := (p.orientation + 1) % 4
	walls, ok := gs.rules.WallShape(gs.nextTile, next)
	if !ok {
		return Result{}, invariant("no wall shape for tile %d at orientation %d", gs.nextTile, next)
	}
	p.orientation = next
	p.walls = walls
	gs.phase = p
	return Result{Accepted: true}, nil
}

// commitWalls builds the selected walls around the current cell and moves on to
// movement. Every id is resolved before BuiltWalls is touched.
func (gs *GameState) commitWalls(p drawWallsPhase) (Result, error) {
	ids := make([]WallID, 0, len(p.walls))
	for _, w := range p.walls {
		id, err := gs.grid.WallID(gs.player.Cell, w)
		if err != nil {
			return Result{}, err
		}
		ids = append(ids, id)
	}
	for _, id := range ids {
		if !gs.builtWalls.Has(id) {
			gs.stats.WallsBuilt++
		}
		gs.builtWalls.Put(id)
	}
	gs.phase = movementPhase{shortcut: p.shortcut}
	return Result{Accepted: true}, nil
}
