package game

import (
	"fmt"

	"temple/utils"
)

// tileItems are the four one-time rewards a board places on its special cells.
var tileItems = []Item{ItemIdol, ItemPickaxe, ItemElixir, ItemMachete}

// Board is the static layout: start, teleport and tile-effect cells.
type Board struct {
	Start     Cell
	Teleports [2]Cell
	Specials  map[Cell]Item
}

// DefaultBoard is the printed board layout.
func DefaultBoard() Board {
	return Board{
		Start:     CellAt(3, 3),
		Teleports: [2]Cell{CellAt(0, 0), CellAt(0, Cols-1)},
		Specials: map[Cell]Item{
			CellAt(1, 5): ItemIdol,
			CellAt(2, 1): ItemPickaxe,
			CellAt(0, 4): ItemElixir,
			CellAt(3, 6): ItemMachete,
		},
	}
}

// IsTeleport reports whether c is one of the two teleport cells.
func (b Board) IsTeleport(c Cell) bool {
	return utils.FindIndex(b.Teleports[:], c) >= 0
}

// IsSpecial reports whether c carries a tile effect.
func (b Board) IsSpecial(c Cell) bool {
	_, ok := b.Specials[c]
	return ok
}

// Copy returns a board that shares no map with b.
func (b Board) Copy() Board {
	specials := make(map[Cell]Item, len(b.Specials))
	for c, item := range b.Specials {
		specials[c] = item
	}
	b.Specials = specials
	return b
}

// Validate checks that every cell is on the grid and that the roles do not overlap.
func (b Board) Validate() error {
	if !b.Start.Valid() {
		return fmt.Errorf("start cell %d is off the grid", int(b.Start))
	}
	for _, t := range b.Teleports {
		if !t.Valid() {
			return fmt.Errorf("teleport cell %d is off the grid", int(t))
		}
		if b.IsSpecial(t) {
			return fmt.Errorf("teleport cell %s also carries a tile effect", t)
		}
	}
	if b.Teleports[0] == b.Teleports[1] {
		return fmt.Errorf("teleport cells must differ, both are %s", b.Teleports[0])
	}
	if b.IsTeleport(b.Start) {
		return fmt.Errorf("start cell %s is a teleport cell", b.Start)
	}
	if len(b.Specials) != len(tileItems) {
		return fmt.Errorf("expected %d tile-effect cells, got %d", len(tileItems), len(b.Specials))
	}
	seen := make(map[Item]bool, len(tileItems))
	for c, item := range b.Specials {
		if !c.Valid() {
			return fmt.Errorf("tile-effect cell %d is off the grid", int(c))
		}
		if utils.FindIndex(tileItems, item) < 0 {
			return fmt.Errorf("tile-effect cell %s grants %s, which is not a tile reward", c, item)
		}
		if seen[item] {
			return fmt.Errorf("tile reward %s is placed twice", item)
		}
		seen[item] = true
	}
	return nil
}
