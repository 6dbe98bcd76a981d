package promptgen

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Selector draws fragments uniformly at random from category rows. It is safe
// for concurrent use; the random source is guarded by a mutex.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector builds a Selector around src. A nil src seeds a PCG source from
// the wall clock.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1|1)
	}
	return &Selector{rng: rand.New(src)}
}

// Pick returns one fragment from table[category], or from table[fallback]
// when the category has no row. Both rows missing is a programming error.
func (s *Selector) Pick(table map[string][]string, category, fallback string) string {
	row, ok := table[category]
	if !ok || len(row) == 0 {
		row = table[fallback]
	}
	if len(row) == 0 {
		panic(fmt.Sprintf("promptgen: no fragments for %q or fallback %q", category, fallback))
	}
	return row[s.IntN(len(row))]
}

// IntN returns a uniform draw in [0, n).
func (s *Selector) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Choose returns one element of values uniformly at random.
func (s *Selector) Choose(values []string) string {
	return values[s.IntN(len(values))]
}
