package game

import "fmt"

const (
	Rows     = 4
	Cols     = 8
	NumCells = Rows * Cols
	// CellBase is the id of the top-left cell. Lower ids belong to the slot regions.
	CellBase = 10
)

// Cell identifies one grid square, addressed as CellBase + row*Cols + col.
type Cell int

// CellAt returns the cell at the given row and column.
func CellAt(row, col int) Cell {
	return Cell(CellBase + row*Cols + col)
}

func (c Cell) Row() int { return (int(c) - CellBase) / Cols }
func (c Cell) Col() int { return (int(c) - CellBase) % Cols }

// Valid reports whether c lies inside the 8x4 grid.
func (c Cell) Valid() bool {
	return int(c) >= CellBase && int(c) < CellBase+NumCells
}

func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("cell#%d", int(c))
	}
	return fmt.Sprintf("(%d,%d)", c.Row(), c.Col())
}

// Cells returns every grid cell in id order.
func Cells() []Cell {
	cells := make([]Cell, NumCells)
	for i := range cells {
		cells[i] = Cell(CellBase + i)
	}
	return cells
}

// Wall is one edge of a cell. The values are ordered clockwise so that a
// quarter turn is w+1 mod 4.
type Wall int

const (
	Top Wall = iota
	Right
	Bottom
	Left
)

// Walls lists the four directions in clockwise order.
var Walls = [4]Wall{Top, Right, Bottom, Left}

var wallNames = [...]string{"Top", "Right", "Bottom", "Left"}

func (w Wall) String() string {
	if w < Top || w > Left {
		return fmt.Sprintf("Wall(%d)", int(w))
	}
	return wallNames[w]
}

// Opposite returns the direction facing w from the neighboring cell.
func (w Wall) Opposite() Wall { return (w + 2) % 4 }

// Rotate turns w a quarter clockwise: Left->Top->Right->Bottom->Left.
func (w Wall) Rotate() Wall { return (w + 1) % 4 }

// WallID is the shared identity of one physical wall.
type WallID int

type edgeOrientation int

const (
	horizontal edgeOrientation = iota
	vertical
)

// edgeKey addresses a grid line segment. Horizontal edges sit above row, vertical
// edges sit left of col, so both sides of an interior wall produce the same key.
type edgeKey struct {
	row, col    int
	orientation edgeOrientation
}

func edgeFor(c Cell, w Wall) edgeKey {
	r, col := c.Row(), c.Col()
	switch w {
	case Top:
		return edgeKey{row: r, col: col, orientation: horizontal}
	case Bottom:
		return edgeKey{row: r + 1, col: col, orientation: horizontal}
	case Left:
		return edgeKey{row: r, col: col, orientation: vertical}
	default:
		return edgeKey{row: r, col: col + 1, orientation: vertical}
	}
}

type cellWall struct {
	cell Cell
	wall Wall
}

// Neighbor is an adjacent cell and the wall crossed to reach it.
type Neighbor struct {
	Wall Wall
	Cell Cell
}

// Grid is the static spatial model: adjacency and deduplicated wall identities.
// It is immutable after NewGrid.
type Grid struct {
	ids   map[cellWall]WallID
	edges []edgeKey // indexed by WallID
}

// NewGrid registers every (cell, direction) pair. A wall already registered from
// the neighbor's side reuses that identity, so each physical wall gets one id.
func NewGrid() *Grid {
	g := &Grid{ids: make(map[cellWall]WallID, NumCells*len(Walls))}
	byEdge := make(map[edgeKey]WallID)
	for _, c := range Cells() {
		for _, w := range Walls {
			key := edgeFor(c, w)
			id, ok := byEdge[key]
			if !ok {
				id = WallID(len(g.edges))
				byEdge[key] = id
				g.edges = append(g.edges, key)
			}
			g.ids[cellWall{cell: c, wall: w}] = id
		}
	}
	return g
}

// WallID resolves the shared identity of the wall on side w of c.
func (g *Grid) WallID(c Cell, w Wall) (WallID, error) {
	id, ok := g.ids[cellWall{cell: c, wall: w}]
	if !ok {
		return 0, fmt.Errorf("%w: cell %d side %s", ErrUnknownWall, int(c), w)
	}
	return id, nil
}

// NumWalls is the number of distinct physical walls.
func (g *Grid) NumWalls() int {
	return len(g.edges)
}

// Neighbors returns the in-grid cells adjacent to c, clockwise from Top.
// Directions leaving the board are left out; there is no wraparound.
func (g *Grid) Neighbors(c Cell) []Neighbor {
	if !c.Valid() {
		return nil
	}
	r, col := c.Row(), c.Col()
	neighbors := make([]Neighbor, 0, 4)
	if r > 0 {
		neighbors = append(neighbors, Neighbor{Wall: Top, Cell: CellAt(r-1, col)})
	}
	if col < Cols-1 {
		neighbors = append(neighbors, Neighbor{Wall: Right, Cell: CellAt(r, col+1)})
	}
	if r < Rows-1 {
		neighbors = append(neighbors, Neighbor{Wall: Bottom, Cell: CellAt(r+1, col)})
	}
	if col > 0 {
		neighbors = append(neighbors, Neighbor{Wall: Left, Cell: CellAt(r, col-1)})
	}
	return neighbors
}

// AreAdjacent reports whether to is a neighbor of from, and through which wall.
func (g *Grid) AreAdjacent(from, to Cell) (Wall, bool) {
	for _, n := range g.Neighbors(from) {
		if n.Cell == to {
			return n.Wall, true
		}
	}
	return 0, false
}

// Segment returns the endpoints of a wall in grid-line units, x along columns
// and y along rows, with (0,0) the top-left corner of the board.
func (g *Grid) Segment(id WallID) (x1, y1, x2, y2 int, ok bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return 0, 0, 0, 0, false
	}
	e := g.edges[id]
	if e.orientation == horizontal {
		return e.col, e.row, e.col + 1, e.row, true
	}
	return e.col, e.row, e.col, e.row + 1, true
}
