// Package lrustack is a recency stack for computing reuse distances,
// adapted from `container/ring`.
package lrustack

import "iter"

type (
	// element is a member of a circular list, or ring.
	// A pointer to any element serves as a reference to the entire ring.
	element[Key comparable] struct {
		next, prev *element[Key]
		Name       Key
	}
	// Stack orders keys by recency of access.
	// The most recently accessed key is on top.
	// The zero value is an empty stack.
	// Concurrent access must be guarded by the caller.
	Stack[Key comparable] struct {
		index map[Key]*element[Key]
		top   *element[Key]
	}
)

// Access moves key to the top of the stack and returns its
// reuse distance: the number of distinct keys accessed since
// the previous access of key.
// If key was never accessed, seen is false.
func (s *Stack[Key]) Access(key Key) (distance int, seen bool) {
	if s.index == nil {
		s.index = make(map[Key]*element[Key])
	}
	e, seen := s.index[key]
	if !seen {
		e = &element[Key]{Name: key}
		e.init()
		s.index[key] = e
		s.push(e)
		return 0, false
	}
	for p := s.top; p != e; p = p.next {
		distance++
	}
	if e != s.top {
		e.prev.unlink(1)
		s.push(e)
	}
	return distance, true
}

// Len returns the number of distinct keys accessed.
func (s *Stack[_]) Len() int { return len(s.index) }

// All returns an iterator over the keys,
// from most to least recently accessed.
func (s *Stack[Key]) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if s.top == nil || !yield(s.top.Name) {
			return
		}
		for p := s.top.next; p != s.top; p = p.next {
			if !yield(p.Name) {
				return
			}
		}
	}
}

// push places the detached element e on top.
func (s *Stack[Key]) push(e *element[Key]) {
	if s.top != nil {
		s.top.prev.link(e)
	}
	s.top = e
}

func (r *element[Key]) init() *element[Key] {
	r.next = r
	r.prev = r
	return r
}

// link connects ring r with ring s such that r.next
// becomes s and returns the original value for r.next.
//
// If r and s point to different rings, linking
// them creates a single ring with the elements of s inserted
// after r.
func (r *element[Key]) link(s *element[Key]) *element[Key] {
	var (
		n = r.next
		p = s.prev
	)
	// Note: Cannot use multiple assignment because
	// evaluation order of LHS is not specified.
	r.next = s
	s.prev = r
	n.prev = p
	p.next = n
	return n
}

// unlink removes n elements from the ring r,
// starting at r.next, and returns the removed subring.
func (r *element[Key]) unlink(n int) *element[Key] {
	if n <= 0 {
		return nil
	}
	s := r
	for ; n >= 0; n-- {
		s = s.next
	}
	return r.link(s)
}
