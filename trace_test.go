package hist_test

import (
	"math/bits"
	"math/rand"
)

type (
	traceGen    = func(length int) []int
	accessTrace struct {
		name string
		gen  traceGen
	}
)

// Seed for every generated trace, so distances
// and hit counts are reproducible between runs.
const traceSeed = 1

// accessPatterns returns the traces replayed by the
// LRU prediction tests and the histogram benchmarks.
// Lengths are rounded up to a power of two.
func accessPatterns() []accessTrace {
	return []accessTrace{
		{
			"Sequential scan",
			func(length int) []int {
				const universe = 1024 // Every revisit has distance universe-1.
				return cyclicTrace(universe, length)
			},
		},
		{
			"Loop working set",
			func(length int) []int {
				const (
					hotSize  = 64
					universe = 2048
					hotRatio = 0.9
				)
				return workingSetTrace(hotSize, universe, length, hotRatio)
			},
		},
		{
			"Zipf",
			func(length int) []int {
				const (
					universe = 4096
					skew     = 1.2
					bias     = 1.0
				)
				return zipfTrace(universe, length, skew, bias)
			},
		},
		{
			"Uniform random",
			func(length int) []int {
				const universe = 1024
				return uniformTrace(universe, length)
			},
		},
	}
}

func cyclicTrace(universe, length int) []int {
	trace := make([]int, nextPow2(length))
	for i := range trace {
		trace[i] = i % universe
	}
	return trace
}

// workingSetTrace draws hotRatio of its keys from the
// first hotSize keys and the rest from the remaining universe.
func workingSetTrace(hotSize, universe, length int, hotRatio float64) []int {
	var (
		trace    = make([]int, nextPow2(length))
		rng      = newTraceRNG()
		coldSize = max(1, universe-hotSize)
	)
	for i := range trace {
		key := rng.Intn(hotSize)
		if rng.Float64() >= hotRatio {
			key = hotSize + rng.Intn(coldSize)
		}
		trace[i] = key
	}
	return trace
}

func zipfTrace(universe, length int, skew, bias float64) []int {
	var (
		trace = make([]int, nextPow2(length))
		zipf  = rand.NewZipf(newTraceRNG(), skew, bias, uint64(max(universe, 2)-1))
	)
	for i := range trace {
		trace[i] = int(zipf.Uint64())
	}
	return trace
}

func uniformTrace(universe, length int) []int {
	var (
		trace = make([]int, nextPow2(length))
		rng   = newTraceRNG()
	)
	for i := range trace {
		trace[i] = rng.Intn(universe)
	}
	return trace
}

func nextPow2(x int) int {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(x)-1)
}

func newTraceRNG() *rand.Rand {
	return rand.New(rand.NewSource(traceSeed))
}
