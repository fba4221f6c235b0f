package formatter

import (
	"strings"
	"testing"

	"edscope/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRating_ContainsValue(t *testing.T) {
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		out := Rating(r)
		assert.Contains(t, out, "/5")
	}
}

func TestGateBadge(t *testing.T) {
	assert.Contains(t, GateBadge(true), "EVIDENCE GATE")
	assert.Contains(t, GateBadge(false), "CLASSIFIED")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{
			{"1", "Algebra Videos"},
			{"2", "Drills"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[2], "Algebra Videos")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
