package game

// Rules holds the fixed lookup tables the turn engine consults. A false ok means
// the combination is not covered, which the engine treats as an invariant violation.
type Rules interface {
	// WallShape returns the sides to build for a next-tile face at an orientation (0-3).
	WallShape(face Face, orientation int) (walls []Wall, ok bool)
	// SneakDamage is the damage of encounter face 1 for a d6 roll on a given turn.
	SneakDamage(roll, turn int) (damage int, ok bool)
	// AttackDamage is the damage of encounter face 3 for a d6 roll on a given turn.
	AttackDamage(roll, turn int) (damage int, ok bool)
	// TrapDamage is the damage of encounter face 6 on a given turn.
	TrapDamage(turn int) int
	// ItemForRoll maps the d6 roll of encounter face 5 to an item.
	ItemForRoll(roll int) (item Item, ok bool)
}

// TurnBand groups turns 1-6, 7-12 and 13+ into bands 0, 1 and 2.
func TurnBand(turn int) int {
	band := (turn - 1) / 6
	if band < 0 {
		return 0
	}
	if band > 2 {
		return 2
	}
	return band
}

// RollBand groups d6 rolls 1-2, 3-4 and 5-6 into bands 0, 1 and 2.
func RollBand(roll int) (int, bool) {
	if roll < 1 || roll > 6 {
		return 0, false
	}
	return (roll - 1) / 2, true
}
