package service

import (
	"testing"

	"edscope/internal/domain"
	"edscope/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ScenarioMatrix(t *testing.T) {
	svc := NewAssessmentService()

	cases := []struct {
		name         string
		scores       domain.Scores
		wantQuadrant string // for the RAID pair
		wantCoaching bool
		wantGate     bool
	}{
		{
			name: "both high is sweet spot",
			scores: testutil.NewScores(map[domain.Criterion]domain.Rating{
				domain.Relevance: 5, domain.Alignment: 5,
			}),
			wantQuadrant: "Sweet Spot",
		},
		{
			name:         "both boundary is uncertain with coaching",
			scores:       domain.NewDefaultScores(),
			wantQuadrant: "Uncertain",
			wantCoaching: true,
			wantGate:     true,
		},
		{
			name: "x boundary y high gets coaching and gate",
			scores: testutil.NewScores(map[domain.Criterion]domain.Rating{
				domain.Relevance: 3, domain.Alignment: 5,
			}),
			wantQuadrant: "Forced Fit",
			wantCoaching: true,
			wantGate:     true,
		},
		{
			name: "both low is poor match",
			scores: testutil.NewScores(map[domain.Criterion]domain.Rating{
				domain.Relevance: 1, domain.Alignment: 2,
			}),
			wantQuadrant: "Poor Match",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summaries := svc.Summarize(tc.scores)
			require.Len(t, summaries, 3)

			raid := summaries[0]
			assert.Equal(t, domain.PairRAID, raid.Pair.Code)
			assert.Equal(t, tc.wantQuadrant, raid.Quadrant.Name)
			assert.Equal(t, tc.wantCoaching, raid.Coaching != "")
			assert.Equal(t, tc.wantGate, raid.Gate)
		})
	}
}
