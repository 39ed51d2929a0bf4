package hist

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

type (
	// Histogram counts how many times each [Distance] was recorded.
	// Counts only ever grow; there is no removal.
	// Concurrent access must be guarded by the caller.
	// The zero value is an empty histogram ready to use.
	Histogram[K Key] struct {
		counts map[Distance[K]]uint64
	}
	// Entry is a distance and the number of times it was recorded.
	Entry[K Key] struct {
		Distance Distance[K]
		Count    uint64
	}
	// row is a finite entry.
	row[K Key] struct {
		value K
		count uint64
	}
)

// New creates an empty [Histogram].
func New[K Key]() *Histogram[K] {
	return &Histogram[K]{
		counts: make(map[Distance[K]]uint64),
	}
}

// Record increments the count of distance.
func (h *Histogram[K]) Record(distance Distance[K]) {
	if h.counts == nil {
		h.counts = make(map[Distance[K]]uint64)
	}
	h.counts[distance]++
}

// Count returns the number of times distance was recorded,
// 0 if it never was.
func (h *Histogram[K]) Count(distance Distance[K]) uint64 {
	return h.counts[distance]
}

// Len returns the number of distinct distances recorded.
func (h *Histogram[_]) Len() int {
	return len(h.counts)
}

// Total returns the number of calls made to [Histogram.Record]
// (including counts merged from other histograms).
func (h *Histogram[_]) Total() uint64 {
	var total uint64
	for _, count := range h.counts {
		total += count
	}
	return total
}

// All returns an iterator over every distance and its count.
// The order is unspecified; use [Histogram.Snapshot]
// when order matters.
func (h *Histogram[K]) All() iter.Seq2[Distance[K], uint64] {
	return maps.All(h.counts)
}

// Snapshot returns a copy of all entries.
// Finite distances are sorted in ascending order,
// followed by the infinite distance (if it was recorded).
func (h *Histogram[K]) Snapshot() []Entry[K] {
	rows, infinite := h.sorted()
	entries := make([]Entry[K], len(rows), len(h.counts))
	for i, row := range rows {
		entries[i] = Entry[K]{
			Distance: Finite(row.value),
			Count:    row.count,
		}
	}
	if infinite != 0 {
		entries = append(entries, Entry[K]{
			Distance: Infinite[K](),
			Count:    infinite,
		})
	}
	return entries
}

// sorted splits the histogram into its finite entries,
// sorted by value, and the count of the infinite distance.
func (h *Histogram[K]) sorted() (rows []row[K], infinite uint64) {
	rows = make([]row[K], 0, len(h.counts))
	for distance, count := range h.counts {
		value, finite := distance.Value()
		if !finite {
			infinite = count
			continue
		}
		rows = append(rows, row[K]{value: value, count: count})
	}
	slices.SortFunc(rows, func(a, b row[K]) int {
		return cmp.Compare(a.value, b.value)
	})
	if debugging {
		stored := len(rows)
		if infinite != 0 {
			stored++
		}
		assert(stored == len(h.counts),
			"histogram stored a zero count")
	}
	return rows, infinite
}

// Merge adds every count in other to h.
// A nil other is treated as empty.
// Merging is associative and commutative, so histograms
// filled by separate workers may be combined in any order.
func (h *Histogram[K]) Merge(other *Histogram[K]) {
	if other == nil || len(other.counts) == 0 {
		return
	}
	if h.counts == nil {
		h.counts = make(map[Distance[K]]uint64, len(other.counts))
	}
	for distance, count := range other.counts {
		h.counts[distance] += count
	}
}

// Clone returns an independent copy of h.
func (h *Histogram[K]) Clone() *Histogram[K] {
	clone := New[K]()
	maps.Copy(clone.counts, h.counts)
	return clone
}
