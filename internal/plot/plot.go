// Package plot maps rating pairs to 2D plot coordinates and renders the
// shared scatter view. A single ToPosition implementation backs the live
// point, every saved point, the terminal grid, and the SVG export, so
// all displays stay internally consistent.
package plot

import (
	"github.com/charmbracelet/lipgloss"
)

// ratingSpan is the distance between the lowest and highest rating.
const ratingSpan = 4.0

// ToPosition maps a pair of 1-5 ratings to plot coordinates. Rating 1
// lands on the bottom-left edge, rating 5 on the top-right. Y is
// inverted relative to raw screen coordinates: the screen origin is
// top-left, so a higher Y rating yields a smaller cy.
func ToPosition(ratingX, ratingY int, plotWidth, plotHeight, padding float64) (cx, cy float64) {
	cx = padding + (float64(ratingX-1)/ratingSpan)*plotWidth
	cy = padding + (1-float64(ratingY-1)/ratingSpan)*plotHeight
	return cx, cy
}

// palette is the saved-point color cycle, assigned by insertion order.
var palette = []lipgloss.Color{
	lipgloss.Color("#83a598"), // blue
	lipgloss.Color("#fabd2f"), // yellow
	lipgloss.Color("#d3869b"), // purple
	lipgloss.Color("#8ec07c"), // green
	lipgloss.Color("#fe8019"), // orange
	lipgloss.Color("#fb4934"), // red
}

// PointColor returns the color for the saved point at the given
// insertion index. Colors cycle when the collection outgrows the
// palette.
func PointColor(index int) lipgloss.Color {
	if index < 0 {
		index = 0
	}
	return palette[index%len(palette)]
}

// PaletteSize returns the number of distinct point colors.
func PaletteSize() int {
	return len(palette)
}
