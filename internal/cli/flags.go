package cli

import (
	"fmt"

	"edscope/internal/domain"
	"github.com/spf13/pflag"
)

// ratingFlags registers one 1-5 integer flag per criterion, named after
// the criterion itself, and returns the backing values.
func ratingFlags(fs *pflag.FlagSet) map[domain.Criterion]*int {
	ratings := make(map[domain.Criterion]*int, len(domain.AllCriteria))
	for _, c := range domain.AllCriteria {
		v := new(int)
		ratings[c] = v
		fs.IntVar(v, string(c), int(domain.DefaultRating),
			fmt.Sprintf("%s rating (1-5)", c.Label()))
	}
	return ratings
}

// scoresFromFlags validates the flag values into a full score set.
func scoresFromFlags(ratings map[domain.Criterion]*int) (domain.Scores, error) {
	scores := domain.Scores{}
	for c, v := range ratings {
		r, err := domain.ParseRating(*v)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", c, err)
		}
		scores[c] = r
	}
	return scores, nil
}
