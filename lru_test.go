package hist_test

import (
	"fmt"
	"testing"

	hist "github.com/Blameying/hist-statis"
	"github.com/Blameying/hist-statis/internal/lrustack"
	lru "github.com/hashicorp/golang-lru/v2"
)

// An access hits an LRU cache of capacity C
// exactly when its reuse distance is less than C.
func TestPredictsLRUHits(t *testing.T) {
	const seqLen = 1 << 13
	for _, pattern := range accessPatterns() {
		t.Run(pattern.name, func(t *testing.T) {
			t.Parallel()
			var (
				capacities = []int{1, 8, 64, 512}
				trace      = pattern.gen(seqLen)
				h          = reuseDistances(trace)
			)
			checkTotal(t, h, uint64(len(trace)), "after trace")
			for _, capacity := range capacities {
				t.Run(fmt.Sprintf("Cap%d", capacity), func(t *testing.T) {
					var (
						got  = replayLRU(t, capacity, trace)
						want = predictedHits(h, capacity)
					)
					if got != want {
						t.Fatalf(
							"expected LRU hits to match histogram"+
								"\n\tgot: %d"+
								"\n\twant: %d",
							got, want)
					}
				})
			}
		})
	}
}

func reuseDistances(trace []int) *hist.Histogram[int] {
	var (
		h     = hist.New[int]()
		stack lrustack.Stack[int]
	)
	for _, key := range trace {
		if distance, seen := stack.Access(key); seen {
			h.Record(hist.Finite(distance))
		} else {
			h.Record(hist.Infinite[int]())
		}
	}
	return h
}

func predictedHits(h *hist.Histogram[int], capacity int) uint64 {
	var hits uint64
	for _, entry := range h.Snapshot() {
		distance, finite := entry.Distance.Value()
		if !finite || distance >= capacity {
			break
		}
		hits += entry.Count
	}
	return hits
}

func replayLRU(tb testing.TB, capacity int, trace []int) uint64 {
	tb.Helper()
	cache, err := lru.New[int, struct{}](capacity)
	if err != nil {
		tb.Fatal(err)
	}
	var hits uint64
	for _, key := range trace {
		if _, ok := cache.Get(key); ok {
			hits++
			continue
		}
		cache.Add(key, struct{}{})
	}
	return hits
}
