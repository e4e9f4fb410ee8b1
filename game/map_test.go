package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	g := NewGrid()

	t.Run("one identity per physical wall", func(t *testing.T) {
		horizontal := (Rows + 1) * Cols
		vertical := Rows * (Cols + 1)
		require.Equal(t, horizontal+vertical, g.NumWalls())
	})

	t.Run("shared walls resolve to the same id from both sides", func(t *testing.T) {
		for _, c := range Cells() {
			for _, n := range g.Neighbors(c) {
				mine, err := g.WallID(c, n.Wall)
				require.NoError(t, err)
				theirs, err := g.WallID(n.Cell, n.Wall.Opposite())
				require.NoError(t, err)
				require.Equal(t, mine, theirs, "%s %s vs %s %s", c, n.Wall, n.Cell, n.Wall.Opposite())
			}
		}
	})

	t.Run("the four sides of a cell are distinct walls", func(t *testing.T) {
		for _, c := range Cells() {
			seen := map[WallID]bool{}
			for _, w := range Walls {
				id, err := g.WallID(c, w)
				require.NoError(t, err)
				require.False(t, seen[id], "%s has a repeated wall", c)
				seen[id] = true
			}
		}
	})

	t.Run("neighbors exclude the board edge", func(t *testing.T) {
		require.Equal(t, []Neighbor{
			{Wall: Right, Cell: CellAt(0, 1)},
			{Wall: Bottom, Cell: CellAt(1, 0)},
		}, g.Neighbors(CellAt(0, 0)))
		require.Len(t, g.Neighbors(CellAt(3, 7)), 2)
		require.Len(t, g.Neighbors(CellAt(0, 3)), 3)
		require.Len(t, g.Neighbors(CellAt(2, 3)), 4)
		require.Nil(t, g.Neighbors(Cell(CellBase+NumCells)))
	})

	t.Run("no wraparound between rows", func(t *testing.T) {
		_, ok := g.AreAdjacent(CellAt(0, 7), CellAt(1, 0))
		require.False(t, ok)
		w, ok := g.AreAdjacent(CellAt(1, 3), CellAt(1, 4))
		require.True(t, ok)
		require.Equal(t, Right, w)
	})

	t.Run("unregistered cell is an unknown wall", func(t *testing.T) {
		_, err := g.WallID(Cell(3), Top)
		require.ErrorIs(t, err, ErrUnknownWall)
		require.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("segments follow grid lines", func(t *testing.T) {
		id, err := g.WallID(CellAt(1, 2), Bottom)
		require.NoError(t, err)
		x1, y1, x2, y2, ok := g.Segment(id)
		require.True(t, ok)
		require.Equal(t, []int{2, 2, 3, 2}, []int{x1, y1, x2, y2})

		id, err = g.WallID(CellAt(1, 2), Right)
		require.NoError(t, err)
		x1, y1, x2, y2, ok = g.Segment(id)
		require.True(t, ok)
		require.Equal(t, []int{3, 1, 3, 2}, []int{x1, y1, x2, y2})

		_, _, _, _, ok = g.Segment(WallID(g.NumWalls()))
		require.False(t, ok)
	})
}

func TestCellAddressing(t *testing.T) {
	c := CellAt(2, 5)
	require.Equal(t, CellBase+21, int(c))
	require.Equal(t, 2, c.Row())
	require.Equal(t, 5, c.Col())
	require.True(t, c.Valid())
	require.False(t, Cell(CellBase-1).Valid())
	require.Equal(t, "(2,5)", c.String())
}

func TestWallRotation(t *testing.T) {
	require.Equal(t, Top, Left.Rotate())
	require.Equal(t, Right, Top.Rotate())
	require.Equal(t, Bottom, Right.Rotate())
	require.Equal(t, Left, Bottom.Rotate())
	for _, w := range Walls {
		require.Equal(t, w, w.Opposite().Opposite())
		require.NotEqual(t, w, w.Opposite())
	}
}

func TestInputForRegion(t *testing.T) {
	tests := []struct {
		id   int
		want Input
	}{
		{RegionNextTile, AssignSlot{Slot: SlotNextTile}},
		{RegionEncounter, AssignSlot{Slot: SlotEncounter}},
		{RegionDie1, SelectDie{Die: Die1}},
		{RegionDie2, SelectDie{Die: Die2}},
		{RegionAdvance, Advance{}},
		{RegionElixir, UseElixir{}},
		{CellBase, ClickCell{Cell: CellAt(0, 0)}},
		{CellBase + NumCells - 1, ClickCell{Cell: CellAt(3, 7)}},
	}
	for _, tt := range tests {
		got, ok := InputForRegion(tt.id)
		require.True(t, ok, "region %d", tt.id)
		require.Equal(t, tt.want, got)
	}

	for _, id := range []int{0, 7, CellBase + NumCells, 59, 64} {
		_, ok := InputForRegion(id)
		require.False(t, ok, "region %d", id)
	}
}
