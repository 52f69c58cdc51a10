package enum

import "fmt"

// MaxValues is the largest number of values a single enum may declare. It is
// bounded by the widest Flags storage.
const MaxValues = 64

// Info is the metadata record attached to one enum type: its token table
// indexed by ordinal.
type Info struct {
	names []string
}

// NewInfo builds the metadata record for an enum from its value names in
// declaration order. The names are copied, so later changes to the caller's
// slice are not observed.
//
// NewInfo panics if more than MaxValues names are given or a name is empty.
// The generator rejects both cases before emitting code, so a panic here means
// a hand-written declaration is broken.
func NewInfo(names ...string) *Info {
	if len(names) > MaxValues {
		panic(fmt.Sprintf("enum: %d values declared, maximum is %d", len(names), MaxValues))
	}
	table := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			panic(fmt.Sprintf("enum: value %d has an empty name", i))
		}
		table[i] = name
	}
	return &Info{names: table}
}

// Size returns the number of declared values.
func (i *Info) Size() int {
	return len(i.names)
}

// Name returns the name registered for ordinal. The ordinal must be in
// [0, Size()).
func (i *Info) Name(ordinal int) string {
	return i.names[ordinal]
}

// Ordinal returns the ordinal of the first value whose name equals name
// exactly.
func (i *Info) Ordinal(name string) (int, bool) {
	for n, candidate := range i.names {
		if candidate == name {
			return n, true
		}
	}
	return -1, false
}

// Names returns a copy of the token table.
func (i *Info) Names() []string {
	out := make([]string, len(i.names))
	copy(out, i.names)
	return out
}
