package plot

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	liveMarker  = "◉"
	savedMarker = "●"
	emptyCell   = "·"
)

var (
	styleAxis = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleLive = lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2")).Bold(true)
)

// Point is a positioned, colored marker on the grid.
type Point struct {
	X, Y  int // ratings, 1-5
	Color lipgloss.Color
	Live  bool
}

// Grid renders a terminal scatter of the 5x5 rating space. Each rating
// step occupies a fixed cell; points are placed through ToPosition so
// the terminal view agrees with the SVG export.
type Grid struct {
	CellW int // terminal columns per rating step
	CellH int // terminal rows per rating step
}

// NewGrid returns a grid with the default cell geometry.
func NewGrid() Grid {
	return Grid{CellW: 4, CellH: 2}
}

// Render draws the grid with axis labels. Later points overdraw earlier
// ones; the live point is drawn last so it always stays visible.
func (g Grid) Render(xLabel, yLabel string, points []Point) string {
	width := g.CellW * 4  // 4 rating steps across
	height := g.CellH * 4 // 4 rating steps down

	// Cell canvas, row-major, initialized to the empty marker.
	canvas := make([][]string, height+1)
	for row := range canvas {
		canvas[row] = make([]string, width+1)
		for col := range canvas[row] {
			canvas[row][col] = styleAxis.Render(emptyCell)
		}
	}

	// Quadrant split through the boundary rating; points overdraw it.
	midX, midY := ToPosition(3, 3, float64(width), float64(height), 0)
	midCol, midRow := int(midX+0.5), int(midY+0.5)
	for row := range canvas {
		canvas[row][midCol] = styleAxis.Render("┊")
	}
	for col := range canvas[midRow] {
		canvas[midRow][col] = styleAxis.Render("╌")
	}
	canvas[midRow][midCol] = styleAxis.Render("┼")

	place := func(p Point) {
		cx, cy := ToPosition(p.X, p.Y, float64(width), float64(height), 0)
		col := int(cx + 0.5)
		row := int(cy + 0.5)
		marker := savedMarker
		style := lipgloss.NewStyle().Foreground(p.Color)
		if p.Live {
			marker = liveMarker
			style = styleLive
		}
		canvas[row][col] = style.Render(marker)
	}

	var live []Point
	for _, p := range points {
		if p.Live {
			live = append(live, p)
			continue
		}
		place(p)
	}
	for _, p := range live {
		place(p)
	}

	var b strings.Builder
	b.WriteString(styleAxis.Render(yLabel) + "\n")
	for row := 0; row <= height; row++ {
		b.WriteString(styleAxis.Render("│ "))
		b.WriteString(strings.Join(canvas[row], ""))
		b.WriteString("\n")
	}
	b.WriteString(styleAxis.Render("└" + strings.Repeat("─", width+2)))
	b.WriteString("\n  " + styleAxis.Render(xLabel))
	return b.String()
}
