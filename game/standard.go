package game

type shapeKey struct {
	face        Face
	orientation int
}

type StandardRules struct {
	shapes map[shapeKey][]Wall
	// [rollBand][turnBand]
	SneakTable  [3][3]int
	AttackTable [3][3]int
	TrapTable   [3]int
	ItemTable   [6]Item
}

// baseShapes are the wall sets at orientation 0. Face 6 never reaches wall drawing.
var baseShapes = map[Face][]Wall{
	1: {Left, Top, Right}, // U
	2: {Left, Bottom},     // L
	3: {Left, Right},      // parallel
	4: {Left},
	5: {},
}

func NewStandardRules() *StandardRules {
	sr := &StandardRules{
		shapes: make(map[shapeKey][]Wall),
		SneakTable: [3][3]int{
			{2, 3, 4},
			{3, 4, 5},
			{4, 5, 6},
		},
		AttackTable: [3][3]int{
			{1, 2, 3},
			{2, 3, 4},
			{3, 4, 5},
		},
		TrapTable: [3]int{1, 2, 3},
		ItemTable: [6]Item{ItemCharm, ItemMachete, ItemPickaxe, ItemShotgun, ItemBandage, ItemElixir},
	}
	for face, base := range baseShapes {
		walls := append([]Wall(nil), base...)
		for orientation := 0; orientation < 4; orientation++ {
			sr.shapes[shapeKey{face: face, orientation: orientation}] = walls
			rotated := make([]Wall, len(walls))
			for i, w := range walls {
				rotated[i] = w.Rotate()
			}
			walls = rotated
		}
	}
	return sr
}

func (sr *StandardRules) WallShape(face Face, orientation int) ([]Wall, bool) {
	walls, ok := sr.shapes[shapeKey{face: face, orientation: orientation}]
	if !ok {
		return nil, false
	}
	return append([]Wall{}, walls...), true
}

func (sr *StandardRules) SneakDamage(roll, turn int) (int, bool) {
	band, ok := RollBand(roll)
	if !ok {
		return 0, false
	}
	return sr.SneakTable[band][TurnBand(turn)], true
}

func (sr *StandardRules) AttackDamage(roll, turn int) (int, bool) {
	band, ok := RollBand(roll)
	if !ok {
		return 0, false
	}
	return sr.AttackTable[band][TurnBand(turn)], true
}

func (sr *StandardRules) TrapDamage(turn int) int {
	return sr.TrapTable[TurnBand(turn)]
}

func (sr *StandardRules) ItemForRoll(roll int) (Item, bool) {
	if roll < 1 || roll > 6 {
		return ItemNone, false
	}
	return sr.ItemTable[roll-1], true
}
