package config

import (
	"fmt"
	"os"
	"temple/game"

	"gopkg.in/yaml.v3"
)

// CellSpec addresses a cell by row and column.
type CellSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// SpecialSpec places a one-time reward on a cell.
type SpecialSpec struct {
	CellSpec `yaml:",inline"`
	Item     string `yaml:"item"`
}

// BoardFile is the YAML layout of a board.
type BoardFile struct {
	Start     CellSpec      `yaml:"start"`
	Teleports []CellSpec    `yaml:"teleports"`
	Specials  []SpecialSpec `yaml:"specials"`
}

func (c CellSpec) cell() (game.Cell, error) {
	if c.Row < 0 || c.Row >= game.Rows || c.Col < 0 || c.Col >= game.Cols {
		return 0, fmt.Errorf("cell (%d,%d) is outside the %dx%d grid", c.Row, c.Col, game.Cols, game.Rows)
	}
	return game.CellAt(c.Row, c.Col), nil
}

// LoadBoard reads a board layout. An empty path yields the default board.
func LoadBoard(path string) (game.Board, error) {
	if path == "" {
		return game.DefaultBoard(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return game.Board{}, fmt.Errorf("read board file: %w", err)
	}
	return ParseBoard(b)
}

// ParseBoard decodes and validates a YAML board layout.
func ParseBoard(b []byte) (game.Board, error) {
	var f BoardFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return game.Board{}, fmt.Errorf("parse board: %w", err)
	}
	return f.Board()
}

// Board converts the file layout into a validated game.Board.
func (f BoardFile) Board() (game.Board, error) {
	var board game.Board
	var err error
	if board.Start, err = f.Start.cell(); err != nil {
		return game.Board{}, fmt.Errorf("start: %w", err)
	}

	if len(f.Teleports) != len(board.Teleports) {
		return game.Board{}, fmt.Errorf("expected %d teleports, got %d", len(board.Teleports), len(f.Teleports))
	}
	for i, t := range f.Teleports {
		if board.Teleports[i], err = t.cell(); err != nil {
			return game.Board{}, fmt.Errorf("teleport %d: %w", i+1, err)
		}
	}

	board.Specials = make(map[game.Cell]game.Item, len(f.Specials))
	for _, s := range f.Specials {
		c, err := s.cell()
		if err != nil {
			return game.Board{}, fmt.Errorf("special %s: %w", s.Item, err)
		}
		item, ok := game.ParseItem(s.Item)
		if !ok {
			return game.Board{}, fmt.Errorf("special at %s: unknown item %q", c, s.Item)
		}
		if _, dup := board.Specials[c]; dup {
			return game.Board{}, fmt.Errorf("special cell %s is listed twice", c)
		}
		board.Specials[c] = item
	}

	if err := board.Validate(); err != nil {
		return game.Board{}, err
	}
	return board, nil
}

// FromBoard is the inverse of BoardFile.Board.
func FromBoard(b game.Board) BoardFile {
	f := BoardFile{Start: CellSpec{Row: b.Start.Row(), Col: b.Start.Col()}}
	for _, t := range b.Teleports {
		f.Teleports = append(f.Teleports, CellSpec{Row: t.Row(), Col: t.Col()})
	}
	for _, c := range game.Cells() {
		if item, ok := b.Specials[c]; ok {
			f.Specials = append(f.Specials, SpecialSpec{
				CellSpec: CellSpec{Row: c.Row(), Col: c.Col()},
				Item:     item.String(),
			})
		}
	}
	return f
}
