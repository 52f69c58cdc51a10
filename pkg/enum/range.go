package enum

import (
	"fmt"
	"iter"
)

// Range is a half-open interval [min, max) of ordinals of T. It is a value:
// iterating it does not consume it, and every iteration starts from min.
type Range[T Enum] struct {
	min, max int
}

// NewRange returns the range [min, max) of T. It panics unless
// 0 <= min <= max <= Count[T]().
func NewRange[T Enum](min, max int) Range[T] {
	if min < 0 || max < min || max > Count[T]() {
		panic(fmt.Sprintf("enum: invalid range [%d, %d) for %s", min, max, typeName[T]()))
	}
	return Range[T]{min: min, max: max}
}

// Min returns the first ordinal of the range.
func (r Range[T]) Min() int { return r.min }

// Max returns the ordinal one past the end of the range.
func (r Range[T]) Max() int { return r.max }

// Len returns the number of values in the range.
func (r Range[T]) Len() int { return r.max - r.min }

// Seq returns an iterator over the range in ordinal order.
func (r Range[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := r.Begin(); !c.Done(); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Values returns the members of the range as a new slice.
func (r Range[T]) Values() []T {
	out := make([]T, 0, r.Len())
	for v := range r.Seq() {
		out = append(out, v)
	}
	return out
}

// Contains reports whether v falls inside the range.
func (r Range[T]) Contains(v T) bool {
	return int(v) >= r.min && int(v) < r.max
}

// Begin returns a cursor positioned at the first value.
func (r Range[T]) Begin() Cursor[T] {
	return Cursor[T]{pos: r.min, end: r.max}
}

// End returns the terminal cursor. It compares equal to any cursor of the
// same range that has been advanced past the last value.
func (r Range[T]) End() Cursor[T] {
	return Cursor[T]{pos: r.max, end: r.max}
}

// Cursor is a position inside a Range. The terminal position (Done) cannot
// be dereferenced.
type Cursor[T Enum] struct {
	pos, end int
}

// Value returns the value at the cursor. It panics at the terminal position.
func (c Cursor[T]) Value() T {
	if c.pos >= c.end {
		panic("enum: dereferencing end cursor")
	}
	return T(c.pos)
}

// Next returns the cursor advanced by one position.
func (c Cursor[T]) Next() Cursor[T] {
	if c.pos < c.end {
		c.pos++
	}
	return c
}

// Done reports whether the cursor is at the terminal position.
func (c Cursor[T]) Done() bool {
	return c.pos >= c.end
}

// Equal reports whether both cursors point at the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.pos == other.pos
}

// Position returns the ordinal the cursor points at.
func (c Cursor[T]) Position() int {
	return c.pos
}
