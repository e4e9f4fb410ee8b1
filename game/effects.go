package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"temple/utils"
)

// EncounterKind names the six encounter faces.
type EncounterKind int

const (
	SneakBeast EncounterKind = iota + 1
	Rest
	BeastAttack
	Shortcut
	FindItem
	Trap
)

var encounterNames = [...]string{"", "SneakBeast", "Rest", "BeastAttack", "Shortcut", "FindItem", "Trap"}

func (k EncounterKind) String() string {
	if k < SneakBeast || k > Trap {
		return fmt.Sprintf("EncounterKind(%d)", int(k))
	}
	return encounterNames[k]
}

// EncounterOutcome describes how an encounter resolved.
type EncounterOutcome struct {
	Kind EncounterKind
	// Roll is the extra d6 rolled by the encounter, or 0 if none was needed.
	Roll   int
	Damage int
	Healed int
	Item   Item
	// NextTile is the fresh tile face of a shortcut.
	NextTile Face
}

// applyTileEffect grants the reward of a special cell the first time the player
// arrives there.
func (gs *GameState) applyTileEffect() {
	c := gs.player.Cell
	if gs.discovered.Has(c) {
		return
	}
	item, ok := gs.board.Specials[c]
	if !ok {
		return
	}
	gs.discovered.Put(c)
	gs.player.Inventory.Grant(item)
	gs.stats.ItemsCollected++
	log.Debug().Msgf("discovered %s at %s", item, c)
}

// resolveEncounter applies the encounter face and leaves the phase. Every face
// ends the turn except the shortcut, which starts the shortcut loop.
func (gs *GameState) resolveEncounter() (Result, error) {
	face := gs.encounter
	if face < 1 || face > 6 {
		return Result{}, invariant("encounter slot holds %d", face)
	}
	out := &EncounterOutcome{Kind: EncounterKind(face)}
	turn := gs.player.Turn

	switch out.Kind {
	case SneakBeast, BeastAttack:
		roll, err := gs.rollDie()
		if err != nil {
			return Result{}, err
		}
		out.Roll = int(roll)
		table := gs.rules.SneakDamage
		if out.Kind == BeastAttack {
			table = gs.rules.AttackDamage
		}
		damage, ok := table(out.Roll, turn)
		if !ok {
			return Result{}, invariant("no %s damage for roll %d", out.Kind, out.Roll)
		}
		out.Damage = damage

	case Rest:
		if gs.player.Health < MaxHealth {
			out.Healed = 1
		}

	case Shortcut:
		roll, err := gs.rollDie()
		if err != nil {
			return Result{}, err
		}
		res, err := gs.startDrawing(roll, true)
		if err != nil {
			return res, err
		}
		out.Roll = int(roll)
		out.NextTile = gs.nextTile
		gs.stats.Shortcuts++
		log.Info().Msgf("turn %d encounter %s: tile %d", turn, out.Kind, gs.nextTile)
		res.Outcome = out
		return res, nil

	case FindItem:
		// Special cells already paid out this turn.
		if gs.board.IsSpecial(gs.player.Cell) {
			break
		}
		roll, err := gs.rollDie()
		if err != nil {
			return Result{}, err
		}
		item, ok := gs.rules.ItemForRoll(int(roll))
		if !ok {
			return Result{}, invariant("no item for roll %d", roll)
		}
		out.Roll = int(roll)
		out.Item = item
		gs.player.Inventory.Grant(item)
		gs.stats.ItemsCollected++

	case Trap:
		out.Damage = gs.rules.TrapDamage(turn)
	}

	gs.phase = endTurnPhase{}
	res := Result{Accepted: true, Outcome: out}
	log.Info().Msgf("turn %d encounter %s: roll %d damage %d healed %d item %s",
		turn, out.Kind, out.Roll, out.Damage, out.Healed, out.Item)
	health := utils.Clamp(gs.player.Health-out.Damage+out.Healed, 0, MaxHealth)
	if err := gs.setHealth(health); err != nil {
		return res, err
	}
	return res, nil
}

// useElixir drinks the elixir. It works in every phase and never heals past
// MaxHealth.
func (gs *GameState) useElixir() (Result, error) {
	if !gs.player.Inventory.Elixir {
		return Result{}, nil
	}
	gs.player.Inventory.Elixir = false
	health := utils.Clamp(gs.player.Health+ElixirHeal, 0, MaxHealth)
	if err := gs.setHealth(health); err != nil {
		return Result{Accepted: true}, err
	}
	return Result{Accepted: true}, nil
}
