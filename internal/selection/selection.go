// Package selection models a none/single/range choice over an ordered type
// and classifies points and intervals against it.
package selection

import (
	"cmp"
	"encoding/json"
)

// Kind is the shape of a Selection
type Kind int

const (
	KindNone Kind = iota
	KindSingle
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindRange:
		return "range"
	}
	return "none"
}

// Intersection describes how a point or interval relates to a Selection
type Intersection int

const (
	None Intersection = iota
	Start
	Inside
	End
	All
)

var intersectionNames = [...]string{"none", "start", "inside", "end", "all"}

func (i Intersection) String() string {
	if i < None || i > All {
		return "unknown"
	}
	return intersectionNames[i]
}

func (i Intersection) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Selection is immutable once built. For a range Lo() < Hi() always holds;
// equal endpoints collapse to a single value. The zero value is an empty
// selection.
type Selection[T any] struct {
	kind    Kind
	lo, hi  T
	compare func(a, b T) int
}

// Empty returns a selection holding nothing
func Empty[T any]() Selection[T] {
	return Selection[T]{}
}

// Single selects exactly v
func Single[T any](v T, compare func(a, b T) int) Selection[T] {
	return Selection[T]{kind: KindSingle, lo: v, hi: v, compare: compare}
}

// Between selects the range spanned by a and b, given in either order
func Between[T any](a, b T, compare func(a, b T) int) Selection[T] {
	switch c := compare(a, b); {
	case c == 0:
		return Single(a, compare)
	case c > 0:
		a, b = b, a
	}
	return Selection[T]{kind: KindRange, lo: a, hi: b, compare: compare}
}

// FromBounds builds a selection from two optional endpoints: none, one
// (single) or both (normalized range).
func FromBounds[T any](start, end *T, compare func(a, b T) int) Selection[T] {
	switch {
	case start == nil && end == nil:
		return Empty[T]()
	case start == nil:
		return Single(*end, compare)
	case end == nil:
		return Single(*start, compare)
	}
	return Between(*start, *end, compare)
}

// Ordered is FromBounds for types with a natural order
func Ordered[T cmp.Ordered](start, end *T) Selection[T] {
	return FromBounds(start, end, cmp.Compare[T])
}

func (s Selection[T]) Kind() Kind { return s.kind }

// Lo returns the lower endpoint (the value, for a single selection)
func (s Selection[T]) Lo() T { return s.lo }

// Hi returns the upper endpoint (the value, for a single selection)
func (s Selection[T]) Hi() T { return s.hi }

func (s Selection[T]) IsEmpty() bool { return s.kind == KindNone }

// Map converts the selection to another point type. f must be monotonic so
// the converted endpoints keep their order.
func Map[T, U any](s Selection[T], f func(T) U, compare func(a, b U) int) Selection[U] {
	switch s.kind {
	case KindSingle:
		return Single(f(s.lo), compare)
	case KindRange:
		return Between(f(s.lo), f(s.hi), compare)
	}
	return Empty[U]()
}

// Point classifies a single value. Range boundaries report Start and End
// rather than All.
func (s Selection[T]) Point(p T) Intersection {
	switch s.kind {
	case KindSingle:
		if s.compare(p, s.lo) == 0 {
			return All
		}
	case KindRange:
		lo, hi := s.compare(p, s.lo), s.compare(p, s.hi)
		switch {
		case lo == 0:
			return Start
		case hi == 0:
			return End
		case lo > 0 && hi < 0:
			return Inside
		}
	}
	return None
}

// Interval classifies the closed interval [lo, hi], lo <= hi. A range lying
// entirely within the interval is All; containment is checked before the
// single boundary cases.
func (s Selection[T]) Interval(lo, hi T) Intersection {
	within := func(v T) bool {
		return s.compare(v, lo) >= 0 && s.compare(v, hi) <= 0
	}

	switch s.kind {
	case KindSingle:
		if within(s.lo) {
			return All
		}
	case KindRange:
		switch {
		case within(s.lo) && within(s.hi):
			return All
		case within(s.lo):
			return Start
		case within(s.hi):
			return End
		case s.compare(s.lo, lo) <= 0 && s.compare(s.hi, hi) >= 0:
			return Inside
		}
	}
	return None
}

type jsonSelection[T any] struct {
	Kind  string `json:"kind"`
	Start *T     `json:"start,omitempty"`
	End   *T     `json:"end,omitempty"`
}

func (s Selection[T]) MarshalJSON() ([]byte, error) {
	out := jsonSelection[T]{Kind: s.kind.String()}
	if s.kind != KindNone {
		lo, hi := s.lo, s.hi
		out.Start, out.End = &lo, &hi
	}
	return json.Marshal(out)
}
