package enum

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Bits is the set of unsigned storage types a Flags value can use. Signed
// types do not satisfy it.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Flags is a set of values of T stored as one bit per ordinal in B. Bits at or
// above Count[T]() are always zero, except for values built with
// FlagsFromBits. The zero value is the empty set.
//
// The generator picks B as the narrowest type that holds every ordinal and
// declares an alias such as
//
//	type ColorFlags = enum.Flags[Color, uint8]
type Flags[T Enum, B Bits] struct {
	bits B
}

func widthOf[B Bits]() int {
	return bits.OnesCount64(uint64(^B(0)))
}

func bitOf[T Enum, B Bits](v T) B {
	if int(v) >= Count[T]() || int(v) >= widthOf[B]() {
		panic(fmt.Sprintf("enum: ordinal %d out of range for %s flags", v, typeName[T]()))
	}
	return B(1) << uint(v)
}

func maskOf[T Enum, B Bits]() B {
	n, w := Count[T](), widthOf[B]()
	if n > w {
		panic(fmt.Sprintf("enum: %s has %d values, more than %d flag bits", typeName[T](), n, w))
	}
	if n == w {
		return ^B(0)
	}
	return B(1)<<uint(n) - 1
}

// FlagsOf returns the set holding exactly vs. It panics if a value is not a
// declared ordinal of T.
func FlagsOf[T Enum, B Bits](vs ...T) Flags[T, B] {
	var f Flags[T, B]
	for _, v := range vs {
		f.bits |= bitOf[T, B](v)
	}
	return f
}

// FlagsFromBits wraps a raw bit pattern without validation. The caller is
// responsible for leaving bits above Count[T]() clear.
func FlagsFromBits[T Enum, B Bits](b B) Flags[T, B] {
	return Flags[T, B]{bits: b}
}

// AllFlags returns the set holding every value of T.
func AllFlags[T Enum, B Bits]() Flags[T, B] {
	return Flags[T, B]{bits: maskOf[T, B]()}
}

// Or combines two values into a set.
func Or[B Bits, T Enum](a, b T) Flags[T, B] {
	return FlagsOf[T, B](a, b)
}

// And intersects the single-value sets of a and b. The result is empty unless
// a == b.
func And[B Bits, T Enum](a, b T) Flags[T, B] {
	return FlagsOf[T, B](a).Intersect(FlagsOf[T, B](b))
}

// Xor returns the symmetric difference of the single-value sets of a and b.
func Xor[B Bits, T Enum](a, b T) Flags[T, B] {
	return FlagsOf[T, B](a).SymmetricDifference(FlagsOf[T, B](b))
}

// Not returns every value of T except a.
func Not[B Bits, T Enum](a T) Flags[T, B] {
	return FlagsOf[T, B](a).Complement()
}

// Bits returns the raw bit pattern.
func (f Flags[T, B]) Bits() B {
	return f.bits
}

// Union returns f | o.
func (f Flags[T, B]) Union(o Flags[T, B]) Flags[T, B] {
	return Flags[T, B]{bits: f.bits | o.bits}
}

// Intersect returns f & o.
func (f Flags[T, B]) Intersect(o Flags[T, B]) Flags[T, B] {
	return Flags[T, B]{bits: f.bits & o.bits}
}

// SymmetricDifference returns f ^ o.
func (f Flags[T, B]) SymmetricDifference(o Flags[T, B]) Flags[T, B] {
	return Flags[T, B]{bits: f.bits ^ o.bits}
}

// Complement returns every declared value not in f. The result is masked to
// Count[T]() bits, so unused high bits of B stay clear.
func (f Flags[T, B]) Complement() Flags[T, B] {
	return Flags[T, B]{bits: ^f.bits & maskOf[T, B]()}
}

// With returns f with vs added.
func (f Flags[T, B]) With(vs ...T) Flags[T, B] {
	f.Add(vs...)
	return f
}

// Without returns f with vs removed.
func (f Flags[T, B]) Without(vs ...T) Flags[T, B] {
	f.Remove(vs...)
	return f
}

// UnionWith sets f to f | o.
func (f *Flags[T, B]) UnionWith(o Flags[T, B]) {
	f.bits |= o.bits
}

// IntersectWith sets f to f & o.
func (f *Flags[T, B]) IntersectWith(o Flags[T, B]) {
	f.bits &= o.bits
}

// SymmetricDifferenceWith sets f to f ^ o.
func (f *Flags[T, B]) SymmetricDifferenceWith(o Flags[T, B]) {
	f.bits ^= o.bits
}

// Add inserts vs into f.
func (f *Flags[T, B]) Add(vs ...T) {
	for _, v := range vs {
		f.bits |= bitOf[T, B](v)
	}
}

// Remove deletes vs from f.
func (f *Flags[T, B]) Remove(vs ...T) {
	for _, v := range vs {
		f.bits &^= bitOf[T, B](v)
	}
}

// Toggle flips membership of v.
func (f *Flags[T, B]) Toggle(v T) {
	f.bits ^= bitOf[T, B](v)
}

// Has reports whether v is in f.
func (f Flags[T, B]) Has(v T) bool {
	return f.bits&bitOf[T, B](v) != 0
}

// Any reports whether f is non-empty.
func (f Flags[T, B]) Any() bool {
	return f.bits != 0
}

// Empty reports whether f holds no values.
func (f Flags[T, B]) Empty() bool {
	return f.bits == 0
}

// Equal compares raw bit patterns.
func (f Flags[T, B]) Equal(o Flags[T, B]) bool {
	return f.bits == o.bits
}

// Is reports whether f holds exactly v and nothing else.
func (f Flags[T, B]) Is(v T) bool {
	return f.bits == bitOf[T, B](v)
}

// Len returns the number of values in f.
func (f Flags[T, B]) Len() int {
	return bits.OnesCount64(uint64(f.bits))
}

// Seq iterates the members of f in ordinal order.
func (f Flags[T, B]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		rest := uint64(f.bits)
		for rest != 0 {
			ordinal := bits.TrailingZeros64(rest)
			if ordinal >= Count[T]() {
				return
			}
			if !yield(T(ordinal)) {
				return
			}
			rest &= rest - 1
		}
	}
}

// Values returns the members of f in ordinal order.
func (f Flags[T, B]) Values() []T {
	out := make([]T, 0, f.Len())
	for v := range f.Seq() {
		out = append(out, v)
	}
	return out
}

// String joins member names with "|". The empty set prints as "".
func (f Flags[T, B]) String() string {
	var b strings.Builder
	for v := range f.Seq() {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(String(v))
	}
	return b.String()
}
