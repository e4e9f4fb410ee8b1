package game

import "temple/utils"

// MoveCandidate is a selected but uncommitted step. ResultingHealth previews
// the cost for display; commitMove charges it again against the live health.
type MoveCandidate struct {
	Destination     Cell
	Direction       Wall
	ResultingHealth int
	// Breaks is set when the step goes through a standing wall, identified by Wall.
	Breaks bool
	Wall   WallID
}

func (gs *GameState) candidateMove(direction Wall, destination Cell) (MoveCandidate, error) {
	id, err := gs.grid.WallID(gs.player.Cell, direction)
	if err != nil {
		return MoveCandidate{}, err
	}
	candidate := MoveCandidate{
		Destination:     destination,
		Direction:       direction,
		ResultingHealth: gs.player.Health,
		Wall:            id,
	}
	if gs.builtWalls.Has(id) {
		candidate.Breaks = true
		candidate.ResultingHealth = utils.Clamp(gs.player.Health-WallBreakCost, 0, MaxHealth)
	}
	return candidate, nil
}

// commitMove takes the pending step. A teleport destination leads to the
// teleport choice, anything else to the tile effect. The cost is charged
// against the health at commit time, which an elixir may have raised since
// the destination was picked.
func (gs *GameState) commitMove(p movementPhase) (Result, error) {
	m := *p.pending
	health := gs.player.Health
	if m.Breaks {
		health = utils.Clamp(health-WallBreakCost, 0, MaxHealth)
	}
	gs.player.Visited = append(gs.player.Visited, m.Destination)
	gs.player.Cell = m.Destination
	if m.Breaks && gs.builtWalls.Has(m.Wall) {
		gs.builtWalls.Remove(m.Wall)
		gs.stats.WallsBroken++
	}
	if gs.board.IsTeleport(m.Destination) {
		gs.phase = chooseTeleportPhase{shortcut: p.shortcut}
	} else {
		gs.phase = tileEffectPhase{shortcut: p.shortcut}
	}
	if err := gs.setHealth(health); err != nil {
		return Result{Accepted: true}, err
	}
	return Result{Accepted: true}, nil
}

// commitTeleport moves the player to the chosen teleport cell. Staying put is
// allowed and leaves the history untouched.
func (gs *GameState) commitTeleport(p chooseTeleportPhase) Result {
	dest := *p.pending
	if dest != gs.player.Cell {
		gs.player.Visited = append(gs.player.Visited, dest)
		gs.player.Cell = dest
	}
	if p.shortcut {
		gs.phase = endTurnPhase{}
	} else {
		gs.phase = encounterPhase{}
	}
	return Result{Accepted: true}
}
