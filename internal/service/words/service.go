package words

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

// DailyCount is the number of words returned by Daily.
const DailyCount = 3

// Service hands out vocabulary words from a fixed pool.
type Service struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool []domain.WordEntry
}

// NewService creates a words service. A nil rng is replaced by a PCG
// source seeded from the clock.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return &Service{rng: rng, pool: pool}
}

// Daily returns DailyCount distinct entries drawn uniformly without
// replacement. The returned slice is owned by the caller.
func (s *Service) Daily() []domain.WordEntry {
	n := min(DailyCount, len(s.pool))

	idx := make([]int, len(s.pool))
	for i := range idx {
		idx[i] = i
	}

	s.mu.Lock()
	for i := range n {
		j := i + s.rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	s.mu.Unlock()

	out := make([]domain.WordEntry, n)
	for i := range n {
		out[i] = s.pool[idx[i]]
	}
	return out
}

// Size returns the number of entries in the pool.
func (s *Service) Size() int { return len(s.pool) }
