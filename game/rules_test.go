package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func sortedWalls(walls []Wall) []Wall {
	out := append([]Wall(nil), walls...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestWallShapes(t *testing.T) {
	r := NewStandardRules()

	t.Run("orientation 0 matches the base shapes", func(t *testing.T) {
		want := map[Face][]Wall{
			1: {Left, Top, Right},
			2: {Left, Bottom},
			3: {Left, Right},
			4: {Left},
		}
		for face, walls := range want {
			got, ok := r.WallShape(face, 0)
			require.True(t, ok)
			require.ElementsMatch(t, walls, got, "face %d", face)
		}
	})

	t.Run("single wall turns clockwise", func(t *testing.T) {
		var got []Wall
		for o := 0; o < 4; o++ {
			walls, ok := r.WallShape(4, o)
			require.True(t, ok)
			require.Len(t, walls, 1)
			got = append(got, walls[0])
		}
		require.Equal(t, []Wall{Left, Top, Right, Bottom}, got)
	})

	t.Run("parallel walls repeat every half turn", func(t *testing.T) {
		for o := 0; o < 2; o++ {
			a, _ := r.WallShape(3, o)
			b, _ := r.WallShape(3, o+2)
			require.Equal(t, sortedWalls(a), sortedWalls(b))
		}
		horizontal, _ := r.WallShape(3, 1)
		require.ElementsMatch(t, []Wall{Top, Bottom}, horizontal)
	})

	t.Run("face 5 never builds walls", func(t *testing.T) {
		for o := 0; o < 4; o++ {
			walls, ok := r.WallShape(5, o)
			require.True(t, ok)
			require.Empty(t, walls)
		}
	})

	t.Run("uncovered combinations are reported", func(t *testing.T) {
		_, ok := r.WallShape(6, 0)
		require.False(t, ok)
		_, ok = r.WallShape(1, 4)
		require.False(t, ok)
	})

	t.Run("returned shapes are copies", func(t *testing.T) {
		walls, _ := r.WallShape(1, 0)
		walls[0] = Bottom
		again, _ := r.WallShape(1, 0)
		require.Equal(t, Left, again[0])
	})
}

func TestDamageTables(t *testing.T) {
	r := NewStandardRules()
	bandTurns := []int{1, 7, 13}

	t.Run("damage never decreases across turn bands", func(t *testing.T) {
		for roll := 1; roll <= 6; roll++ {
			prevSneak, prevAttack := 0, 0
			for _, turn := range bandTurns {
				sneak, ok := r.SneakDamage(roll, turn)
				require.True(t, ok)
				attack, ok := r.AttackDamage(roll, turn)
				require.True(t, ok)
				require.GreaterOrEqual(t, sneak, prevSneak)
				require.GreaterOrEqual(t, attack, prevAttack)
				require.Equal(t, sneak-1, attack)
				prevSneak, prevAttack = sneak, attack
			}
		}
		prev := 0
		for _, turn := range bandTurns {
			trap := r.TrapDamage(turn)
			require.GreaterOrEqual(t, trap, prev)
			prev = trap
		}
	})

	t.Run("table ranges", func(t *testing.T) {
		low, _ := r.SneakDamage(1, 1)
		high, _ := r.SneakDamage(6, 18)
		require.Equal(t, 2, low)
		require.Equal(t, 6, high)
		low, _ = r.AttackDamage(2, 6)
		high, _ = r.AttackDamage(5, 13)
		require.Equal(t, 1, low)
		require.Equal(t, 5, high)
		require.Equal(t, []int{1, 2, 3}, []int{r.TrapDamage(6), r.TrapDamage(12), r.TrapDamage(18)})
	})

	t.Run("turns past the last band stay in it", func(t *testing.T) {
		require.Equal(t, 2, TurnBand(40))
		require.Equal(t, 0, TurnBand(0))
		require.Equal(t, r.TrapDamage(18), r.TrapDamage(25))
	})

	t.Run("rolls outside a die are rejected", func(t *testing.T) {
		_, ok := r.SneakDamage(7, 1)
		require.False(t, ok)
		_, ok = r.ItemForRoll(0)
		require.False(t, ok)
	})

	t.Run("item table", func(t *testing.T) {
		var got []Item
		for roll := 1; roll <= 6; roll++ {
			item, ok := r.ItemForRoll(roll)
			require.True(t, ok)
			got = append(got, item)
		}
		require.Equal(t, []Item{ItemCharm, ItemMachete, ItemPickaxe, ItemShotgun, ItemBandage, ItemElixir}, got)
	})
}

func TestBoardValidate(t *testing.T) {
	require.NoError(t, DefaultBoard().Validate())

	tests := []struct {
		name   string
		modify func(b *Board)
	}{
		{"start off grid", func(b *Board) { b.Start = Cell(2) }},
		{"start on teleport", func(b *Board) { b.Start = b.Teleports[0] }},
		{"same teleports", func(b *Board) { b.Teleports[1] = b.Teleports[0] }},
		{"teleport is special", func(b *Board) {
			item := b.Specials[CellAt(1, 5)]
			delete(b.Specials, CellAt(1, 5))
			b.Specials[b.Teleports[1]] = item
		}},
		{"missing reward", func(b *Board) { delete(b.Specials, CellAt(1, 5)) }},
		{"duplicate reward", func(b *Board) { b.Specials[CellAt(1, 5)] = ItemPickaxe }},
		{"not a tile reward", func(b *Board) { b.Specials[CellAt(1, 5)] = ItemShotgun }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultBoard()
			tt.modify(&b)
			require.Error(t, b.Validate())
		})
	}
}

func TestInventoryGrant(t *testing.T) {
	var inv Inventory
	require.False(t, inv.Has(ItemPickaxe))
	inv.Grant(ItemPickaxe)
	require.Equal(t, 2, inv.Pickaxe)
	inv.Pickaxe = 1
	inv.Grant(ItemPickaxe)
	require.Equal(t, 2, inv.Pickaxe, "counted items refill to two")
	inv.Grant(ItemIdol)
	require.True(t, inv.Has(ItemIdol))

	item, ok := ParseItem("shotgun")
	require.True(t, ok)
	require.Equal(t, ItemShotgun, item)
	_, ok = ParseItem("none")
	require.False(t, ok)
}
