package hist

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

type (
	// Key is the set of types a [Distance] may carry.
	// Floating point types are excluded since NaN
	// has no total order and never equals itself.
	Key interface {
		constraints.Integer | ~string
	}
	// Distance is either a finite reuse distance,
	// or infinite for accesses with no prior reference
	// (i.e. the first access of an item).
	// The zero value is infinite.
	// Constructed by [Finite] or [Infinite].
	Distance[K Key] struct {
		value  K
		finite bool
	}
)

// Finite returns a [Distance] holding value.
func Finite[K Key](value K) Distance[K] {
	return Distance[K]{value: value, finite: true}
}

// Infinite returns the [Distance] used to record
// an access which has no measurable reuse distance.
func Infinite[K Key]() Distance[K] { return Distance[K]{} }

// Value returns the finite distance and true,
// or the zero value and false if d is infinite.
func (d Distance[K]) Value() (K, bool) { return d.value, d.finite }

// IsInfinite reports whether d has no finite value.
func (d Distance[K]) IsInfinite() bool { return !d.finite }

// Compare returns -1, 0, or +1 depending on whether d
// sorts before, equal to, or after other.
// Finite distances are ordered by value and
// an infinite distance sorts after all of them.
func (d Distance[K]) Compare(other Distance[K]) int {
	switch {
	case d.finite && other.finite:
		return cmp.Compare(d.value, other.value)
	case d.finite:
		return -1
	case other.finite:
		return 1
	default:
		return 0
	}
}

// String formats d as `Some(value)` when finite
// and `None` when infinite.
func (d Distance[K]) String() string {
	if !d.finite {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", d.value)
}
