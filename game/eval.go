package game

// encounterValue ranks encounter faces from the player's point of view.
var encounterValue = map[Face]float64{
	1: -3, // sneak beast
	2: 3,  // rest
	3: -2, // beast attack
	4: 1,  // shortcut
	5: 2,  // item
	6: -1, // trap
}

// ScoreInput rates a legal input for a cautious player: keep health up, put the
// friendlier die on the encounter, avoid breaking walls and collect rewards.
// Higher is better; the scale is only meaningful within one state.
func ScoreInput(gs *GameState, in Input) float64 {
	switch in := in.(type) {
	case UseElixir:
		if gs.player.Health <= 2 {
			return 5
		}
		return -20

	case SelectDie:
		if gs.SelectedDie() != NoDie {
			return 0
		}
		if in.Die == gs.encounterDie() {
			return 1.5
		}
		return 1

	case AssignSlot:
		selected := gs.SelectedDie()
		if *gs.slot(in.Slot) != NoFace {
			return -1
		}
		if gs.encounter != NoFace || gs.nextTile != NoFace {
			// Only one slot is left.
			return 1
		}
		wantsEncounter := selected == gs.encounterDie()
		if wantsEncounter == (in.Slot == SlotEncounter) {
			return 1
		}
		return 0

	case ClickCell:
		switch p := gs.phase.(type) {
		case movementPhase:
			return gs.scoreStep(in.Cell)
		case chooseTeleportPhase:
			// Jump away from a visited corner.
			if in.Cell != gs.player.Cell {
				return 0.5
			}
			return 0
		case drawWallsPhase:
			return gs.scoreOrientation(p)
		}
		return 0

	case Advance:
		switch gs.phase.(type) {
		case movementPhase, chooseTeleportPhase:
			return 3
		case drawWallsPhase:
			return 0.25
		}
		return 1
	}
	return 0
}

// encounterDie is the die whose face is the better encounter, or NoDie when no
// die is left.
func (gs *GameState) encounterDie() Die {
	switch {
	case gs.die1 == NoFace && gs.die2 == NoFace:
		return NoDie
	case gs.die2 == NoFace:
		return Die1
	case gs.die1 == NoFace:
		return Die2
	case encounterValue[gs.die2] > encounterValue[gs.die1]:
		return Die2
	}
	return Die1
}

func (gs *GameState) scoreStep(dest Cell) float64 {
	wall, ok := gs.grid.AreAdjacent(gs.player.Cell, dest)
	if !ok {
		return -10
	}
	m, err := gs.candidateMove(wall, dest)
	if err != nil || m.ResultingHealth == 0 {
		return -10
	}
	score := float64(m.ResultingHealth - gs.player.Health)
	if gs.board.IsSpecial(dest) && !gs.discovered.Has(dest) {
		score += 1.5
	}
	visited := false
	for _, c := range gs.player.Visited {
		if c == dest {
			visited = true
			break
		}
	}
	if !visited {
		score += 0.5
	}
	return score
}

// scoreOrientation prefers turning the shape when the next orientation blocks
// fewer open neighbors than the current one.
func (gs *GameState) scoreOrientation(p drawWallsPhase) float64 {
	next, ok := gs.rules.WallShape(gs.nextTile, (p.orientation+1)%4)
	if !ok {
		return -10
	}
	return gs.blockedSides(p.walls) - gs.blockedSides(next)
}

// blockedSides counts the walls that would close a path to a neighbor.
func (gs *GameState) blockedSides(walls []Wall) float64 {
	var blocked float64
	for _, n := range gs.grid.Neighbors(gs.player.Cell) {
		for _, w := range walls {
			if w == n.Wall {
				blocked++
			}
		}
	}
	return blocked
}
