// Package mapgen draws a printable PDF journey map of a session: the temple
// grid, the walls still standing, the special cells and the path walked so far.
package mapgen

import (
	"bytes"
	"errors"
	"fmt"

	"temple/game"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	cellSize  = 60.0
	gridTop   = margin + 80.0
	fontSize  = 8
	titleSize = 16
	labelSize = 7
)

// Generate returns PDF bytes for the journey map of v.
func Generate(grid *game.Grid, board game.Board, v game.View, title string) ([]byte, error) {
	if grid == nil {
		return nil, errors.New("mapgen: no grid")
	}
	gridLeft := (pageW - cellSize*game.Cols) / 2

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Parchment background
	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")
	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 18, "Temple Journey", "", 0, "L", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(margin, margin+20)
		pdf.CellFormat(pageW-2*margin, 10, title, "", 0, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(margin, margin+34)
	pdf.CellFormat(pageW-2*margin, 10, summary(v), "", 0, "L", false, 0, "")

	center := func(c game.Cell) (float64, float64) {
		return gridLeft + (float64(c.Col())+0.5)*cellSize, gridTop + (float64(c.Row())+0.5)*cellSize
	}

	// Cells
	discovered := make(map[game.Cell]bool, len(v.Discovered))
	for _, c := range v.Discovered {
		discovered[c] = true
	}
	for _, c := range game.Cells() {
		x := gridLeft + float64(c.Col())*cellSize
		y := gridTop + float64(c.Row())*cellSize
		label := ""
		switch item, special := board.Specials[c]; {
		case board.IsTeleport(c):
			pdf.SetFillColor(190, 215, 230)
			label = "teleport"
		case special && discovered[c]:
			pdf.SetFillColor(200, 180, 120)
			label = item.String() + " (taken)"
		case special:
			pdf.SetFillColor(235, 205, 110)
			label = item.String()
		case c == board.Start:
			pdf.SetFillColor(225, 215, 190)
			label = "start"
		default:
			pdf.SetFillColor(238, 228, 200)
		}
		pdf.Rect(x, y, cellSize, cellSize, "F")
		if label != "" {
			pdf.SetFont("Helvetica", "I", labelSize)
			pdf.SetXY(x, y+cellSize-12)
			pdf.CellFormat(cellSize, 10, label, "", 0, "C", false, 0, "")
		}
	}

	// Grid lines, then standing walls over them
	pdf.SetDrawColor(190, 170, 140)
	pdf.SetLineWidth(0.5)
	for id := game.WallID(0); int(id) < grid.NumWalls(); id++ {
		drawWall(pdf, grid, id, gridLeft)
	}
	pdf.SetDrawColor(60, 35, 20)
	pdf.SetLineWidth(4)
	for _, id := range v.BuiltWalls {
		drawWall(pdf, grid, id, gridLeft)
	}

	// Visited path
	pdf.SetDrawColor(180, 40, 40)
	pdf.SetLineWidth(2)
	pdf.SetDashPattern([]float64{8, 5}, 0)
	for i := 1; i < len(v.Visited); i++ {
		x1, y1 := center(v.Visited[i-1])
		x2, y2 := center(v.Visited[i])
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDashPattern([]float64{}, 0)

	// You are here
	if v.Cell.Valid() {
		x, y := center(v.Cell)
		pdf.SetFillColor(180, 40, 40)
		pdf.Circle(x, y, 7, "F")
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	return buf.Bytes(), nil
}

func drawWall(pdf *gofpdf.Fpdf, grid *game.Grid, id game.WallID, gridLeft float64) {
	x1, y1, x2, y2, ok := grid.Segment(id)
	if !ok {
		return
	}
	pdf.Line(
		gridLeft+float64(x1)*cellSize, gridTop+float64(y1)*cellSize,
		gridLeft+float64(x2)*cellSize, gridTop+float64(y2)*cellSize,
	)
}

func summary(v game.View) string {
	s := fmt.Sprintf("Turn %d  Health %d/%d  Steps %d  Walls standing %d",
		v.Turn, v.Health, game.MaxHealth, len(v.Visited)-1, len(v.BuiltWalls))
	if errors.Is(v.Over, game.ErrPlayerDied) {
		s += "  (fallen)"
	}
	return s
}
