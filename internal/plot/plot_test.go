package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPosition_Corners(t *testing.T) {
	const w, h, pad = 400.0, 300.0, 20.0

	// Rating (1,1): bottom-left within padding.
	cx, cy := ToPosition(1, 1, w, h, pad)
	assert.InDelta(t, pad, cx, 1e-9)
	assert.InDelta(t, pad+h, cy, 1e-9)

	// Rating (5,5): top-right within padding.
	cx, cy = ToPosition(5, 5, w, h, pad)
	assert.InDelta(t, pad+w, cx, 1e-9)
	assert.InDelta(t, pad, cy, 1e-9)
}

func TestToPosition_CenterAndYInversion(t *testing.T) {
	const w, h, pad = 100.0, 100.0, 0.0

	cx, cy := ToPosition(3, 3, w, h, pad)
	assert.InDelta(t, 50.0, cx, 1e-9)
	assert.InDelta(t, 50.0, cy, 1e-9)

	// Higher Y rating must map to a smaller cy.
	_, cyLow := ToPosition(3, 2, w, h, pad)
	_, cyHigh := ToPosition(3, 4, w, h, pad)
	assert.Greater(t, cyLow, cyHigh)
}

func TestToPosition_MonotonicInX(t *testing.T) {
	prev := -1.0
	for x := 1; x <= 5; x++ {
		cx, _ := ToPosition(x, 3, 200, 200, 10)
		assert.Greater(t, cx, prev, "x=%d", x)
		prev = cx
	}
}

func TestPointColor_CyclesByInsertionOrder(t *testing.T) {
	n := PaletteSize()
	assert.Equal(t, PointColor(0), PointColor(n))
	assert.NotEqual(t, PointColor(0), PointColor(1))
	// Negative indexes are clamped rather than panicking.
	assert.Equal(t, PointColor(0), PointColor(-3))
}

func TestGridRender_ContainsMarkersAndLabels(t *testing.T) {
	g := NewGrid()
	out := g.Render("Relevance", "Alignment", []Point{
		{X: 1, Y: 1, Color: PointColor(0)},
		{X: 5, Y: 5, Live: true},
	})
	assert.Contains(t, out, "Relevance")
	assert.Contains(t, out, "Alignment")
	assert.Contains(t, out, liveMarker)
	assert.Contains(t, out, savedMarker)
	assert.Contains(t, out, "┊", "vertical quadrant split")
	assert.Contains(t, out, "╌", "horizontal quadrant split")
}

func TestGridRender_LivePointDrawnLast(t *testing.T) {
	g := NewGrid()
	// Saved and live point on the same cell: the live marker wins.
	out := g.Render("x", "y", []Point{
		{X: 3, Y: 3, Live: true},
		{X: 3, Y: 3, Color: PointColor(1)},
	})
	assert.Contains(t, out, liveMarker)
	assert.False(t, strings.Contains(out, savedMarker))
}
