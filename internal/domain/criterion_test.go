package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCriteria_ExactlySix(t *testing.T) {
	assert.Len(t, AllCriteria, 6)
	seen := make(map[Criterion]bool)
	for _, c := range AllCriteria {
		assert.True(t, c.Valid(), "criterion %s", c)
		assert.False(t, seen[c], "duplicate criterion %s", c)
		seen[c] = true
	}
}

func TestEachCriterionBelongsToExactlyOnePair(t *testing.T) {
	for _, c := range AllCriteria {
		var count int
		for _, p := range AllPairs {
			if p.X == c {
				count++
			}
			if p.Y == c {
				count++
			}
		}
		assert.Equal(t, 1, count, "criterion %s", c)
	}
}

func TestParseCriterion(t *testing.T) {
	cases := []struct {
		input   string
		want    Criterion
		wantErr string
	}{
		{input: "relevance", want: Relevance},
		{input: "Impact", want: Impact},
		{input: "  coherence ", want: Coherence},
		{input: "sus", want: Sustainability},
		{input: "e", want: Effectiveness},
		{input: "", wantErr: "required"},
		{input: "efficiency", wantErr: "unknown"},
	}
	for _, tc := range cases {
		got, err := ParseCriterion(tc.input)
		if tc.wantErr != "" {
			require.Error(t, err, "input=%q", tc.input)
			assert.Contains(t, err.Error(), tc.wantErr)
			continue
		}
		require.NoError(t, err, "input=%q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseCriterion_ThreeLetterPrefixes(t *testing.T) {
	for _, c := range AllCriteria {
		got, err := ParseCriterion(string(c)[:3])
		require.NoError(t, err, "prefix of %s", c)
		assert.Equal(t, c, got)
	}
}

func TestRatingValidation(t *testing.T) {
	for n := 1; n <= 5; n++ {
		r, err := ParseRating(n)
		require.NoError(t, err)
		assert.True(t, r.Valid())
		assert.Equal(t, n == 3, r.AtBoundary())
	}
	for _, n := range []int{0, 6, -1, 42} {
		_, err := ParseRating(n)
		assert.Error(t, err, "n=%d", n)
	}
}

func TestRatingClamp(t *testing.T) {
	assert.Equal(t, MinRating, Rating(0).Clamp())
	assert.Equal(t, MaxRating, Rating(9).Clamp())
	assert.Equal(t, Rating(4), Rating(4).Clamp())
}

func TestPairByCode(t *testing.T) {
	p, err := PairByCode("raid")
	require.NoError(t, err)
	assert.Equal(t, Relevance, p.X)
	assert.Equal(t, Alignment, p.Y)

	_, err = PairByCode("NOPE")
	assert.Error(t, err)
}
