package reviews

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/pkg/model"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(seed, WithClock(func() time.Time { return fixedNow }))
}

func TestGenerate_ReviewShape(t *testing.T) {
	g := newTestGenerator(42)
	earliest := fixedNow.Add(-Window).Format(dateLayout)

	for pid := range 50 {
		reviews := g.Generate(pid)

		require.GreaterOrEqual(t, len(reviews), MinReviews)
		require.LessOrEqual(t, len(reviews), MaxReviews)

		seen := make(map[string]bool, len(reviews))
		for _, r := range reviews {
			assert.Equal(t, pid, r.PropertyID)
			assert.Regexp(t, fmt.Sprintf(`^review_%d_\d+$`, pid), r.ID)
			assert.False(t, seen[r.ID], "duplicate review id %s", r.ID)
			seen[r.ID] = true

			assert.GreaterOrEqual(t, r.Rating, MinRating)
			assert.LessOrEqual(t, r.Rating, MaxRating)
			assert.GreaterOrEqual(t, r.Helpful, 0)
			assert.LessOrEqual(t, r.Helpful, MaxHelpful)
			assert.Contains(t, guestNames, r.GuestName)
			assert.Contains(t, comments, r.Comment)

			_, err := time.Parse(dateLayout, r.Date)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, r.Date, earliest)
			assert.LessOrEqual(t, r.Date, fixedNow.Format(dateLayout))
		}
	}
}

func TestGenerate_SortedNewestFirst(t *testing.T) {
	g := newTestGenerator(7)

	for pid := range 20 {
		reviews := g.Generate(pid)
		for i := 1; i < len(reviews); i++ {
			assert.GreaterOrEqual(t, reviews[i-1].Date, reviews[i].Date,
				"reviews for property %d out of order at %d", pid, i)
		}
	}
}

func TestGenerate_SameSeedIsDeterministic(t *testing.T) {
	a := newTestGenerator(1234).Generate(3)
	b := newTestGenerator(1234).Generate(3)

	assert.Equal(t, a, b)
}

func TestGenerate_ConcurrentUse(t *testing.T) {
	g := newTestGenerator(99)

	var wg sync.WaitGroup
	for pid := range 16 {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			reviews := g.Generate(pid)
			assert.NotEmpty(t, reviews)
		}(pid)
	}
	wg.Wait()
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "empty", ratings: nil, want: 0},
		{name: "all fives", ratings: []int{5, 5, 5}, want: 5},
		{name: "rounds to one decimal", ratings: []int{4, 5, 5}, want: 4.7},
		{name: "rounds down", ratings: []int{4, 4, 5}, want: 4.3},
		{name: "exact half", ratings: []int{4, 5}, want: 4.5},
		{name: "all fours", ratings: []int{4, 4}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []model.Review
			for i, r := range tt.ratings {
				in = append(in, model.Review{ID: fmt.Sprintf("review_0_%d", i), Rating: r})
			}

			got := Summarize(in)

			assert.Equal(t, tt.want, got.AverageRating)
			assert.Equal(t, len(tt.ratings), got.TotalReviews)
			assert.NotNil(t, got.Reviews)
		})
	}
}
