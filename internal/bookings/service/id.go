package service

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

const (
	BookingIDPrefix = "BK"
	idSuffixLength  = 5
	idAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// IDGenerator issues booking ids of the form BK<unix millis><5 base36 chars>.
// Ids are unique with high probability, not guaranteed.
type IDGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewIDGenerator seeds the suffix source with seed, or the current time
// when seed is zero.
func NewIDGenerator(seed int64, now func() time.Time) *IDGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
		now: now,
	}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	suffix := make([]byte, idSuffixLength)
	for i := range suffix {
		suffix[i] = idAlphabet[g.rng.IntN(len(idAlphabet))]
	}
	return BookingIDPrefix + strconv.FormatInt(g.now().UnixMilli(), 10) + string(suffix)
}
