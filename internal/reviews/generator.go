package reviews

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"staybook/pkg/model"
)

const (
	MinReviews = 3
	MaxReviews = 10

	MinRating = 4
	MaxRating = 5

	MaxHelpful = 19

	Window = 90 * 24 * time.Hour

	dateLayout = "2006-01-02"
)

var guestNames = []string{
	"Sarah Johnson",
	"Michael Chen",
	"Emma Davis",
	"David Wilson",
	"Lisa Brown",
	"James Miller",
	"Anna Garcia",
	"Robert Taylor",
	"Maria Rodriguez",
	"John Anderson",
}

var comments = []string{
	"Absolutely amazing stay! The property exceeded all our expectations.",
	"Great location and beautiful views. Highly recommend!",
	"Clean, comfortable, and well-maintained. Perfect for our family vacation.",
	"The host was very responsive and helpful throughout our stay.",
	"Stunning property with all the amenities we needed.",
	"Peaceful and quiet location, perfect for relaxation.",
	"Modern amenities and excellent service. Will definitely return!",
	"The property was exactly as described. Very satisfied with our choice.",
	"Beautiful interior design and comfortable furnishings.",
	"Excellent value for money. Highly recommend this property.",
}

// GuestNames returns a copy of the pool reviewer names are drawn from.
func GuestNames() []string { return slices.Clone(guestNames) }

// Comments returns a copy of the pool review comments are drawn from.
func Comments() []string { return slices.Clone(comments) }

type Option func(*Generator)

// WithClock overrides the time source used to date reviews.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generator produces mock guest reviews. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator seeded with seed, or with the current
// time when seed is zero.
func NewGenerator(seed int64, opts ...Option) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns between MinReviews and MaxReviews reviews for the given
// property, newest first.
func (g *Generator) Generate(propertyID int) []model.Review {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UTC()
	count := MinReviews + g.rng.IntN(MaxReviews-MinReviews+1)

	out := make([]model.Review, 0, count)
	for i := range count {
		age := time.Duration(g.rng.Int64N(int64(Window)))
		out = append(out, model.Review{
			ID:         fmt.Sprintf("review_%d_%d", propertyID, i),
			PropertyID: propertyID,
			GuestName:  guestNames[g.rng.IntN(len(guestNames))],
			Rating:     MinRating + g.rng.IntN(MaxRating-MinRating+1),
			Comment:    comments[g.rng.IntN(len(comments))],
			Date:       now.Add(-age).Format(dateLayout),
			Helpful:    g.rng.IntN(MaxHelpful + 1),
		})
	}

	// ISO dates order lexically.
	slices.SortStableFunc(out, func(a, b model.Review) int {
		switch {
		case a.Date > b.Date:
			return -1
		case a.Date < b.Date:
			return 1
		}
		return 0
	})
	return out
}

// Summarize wraps reviews with their count and mean rating rounded to one
// decimal place. An empty set averages to zero.
func Summarize(reviews []model.Review) model.ReviewsResponse {
	if reviews == nil {
		reviews = []model.Review{}
	}
	resp := model.ReviewsResponse{
		Reviews:      reviews,
		TotalReviews: len(reviews),
	}
	if len(reviews) == 0 {
		return resp
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	resp.AverageRating = math.Round(avg*10) / 10
	return resp
}
