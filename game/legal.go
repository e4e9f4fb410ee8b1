package game

// LegalInputs lists the inputs Apply would accept right now and that change the
// state. Reselecting the current die or the pending destination is left out.
// A finished session has no legal inputs.
func (gs *GameState) LegalInputs() []Input {
	if gs.over != nil {
		return nil
	}
	var inputs []Input
	if gs.player.Inventory.Elixir {
		inputs = append(inputs, UseElixir{})
	}

	switch p := gs.phase.(type) {
	case assignDicePhase:
		for _, d := range []Die{Die1, Die2} {
			if *gs.die(d) != NoFace && p.selected != d {
				inputs = append(inputs, SelectDie{Die: d})
			}
		}
		if p.selected != NoDie {
			inputs = append(inputs, AssignSlot{Slot: SlotNextTile}, AssignSlot{Slot: SlotEncounter})
		}
		if gs.die1 == NoFace && gs.die2 == NoFace {
			inputs = append(inputs, Advance{})
		}

	case drawWallsPhase:
		inputs = append(inputs, ClickCell{Cell: gs.player.Cell}, Advance{})

	case movementPhase:
		for _, n := range gs.grid.Neighbors(gs.player.Cell) {
			if p.pending != nil && p.pending.Destination == n.Cell {
				continue
			}
			inputs = append(inputs, ClickCell{Cell: n.Cell})
		}
		if p.pending != nil {
			inputs = append(inputs, Advance{})
		}

	case chooseTeleportPhase:
		for _, t := range gs.board.Teleports {
			if p.pending != nil && *p.pending == t {
				continue
			}
			inputs = append(inputs, ClickCell{Cell: t})
		}
		if p.pending != nil {
			inputs = append(inputs, Advance{})
		}

	default:
		inputs = append(inputs, Advance{})
	}
	return inputs
}
