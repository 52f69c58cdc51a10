package enum

// Enum is satisfied by types declared through enumgen. The EnumInfo method is
// the binding between a type and its metadata; it must return the same *Info
// for every value of the type, including the zero value.
type Enum interface {
	~uint8
	EnumInfo() *Info
}

func infoOf[T Enum]() *Info {
	var zero T
	return zero.EnumInfo()
}

// Count returns the number of values declared for T.
func Count[T Enum]() int {
	return infoOf[T]().Size()
}

// String returns the declared name of v.
func String[T Enum](v T) string {
	return v.EnumInfo().Name(int(v))
}

// FromString returns the value of T whose declared name is exactly name. The
// boolean is false if no value matches.
func FromString[T Enum](name string) (T, bool) {
	ordinal, ok := infoOf[T]().Ordinal(name)
	if !ok {
		var zero T
		return zero, false
	}
	return T(ordinal), true
}

// Parse is FromString for callers that want an error. A miss returns an
// *UnknownNameError.
func Parse[T Enum](name string) (T, error) {
	v, ok := FromString[T](name)
	if !ok {
		return v, &UnknownNameError{Type: typeName[T](), Name: name}
	}
	return v, nil
}

// Valid reports whether v is one of T's declared ordinals.
func Valid[T Enum](v T) bool {
	return int(v) < Count[T]()
}

// Next returns the value following v, wrapping from the last value to the
// first.
func Next[T Enum](v T) T {
	return T((int(v) + 1) % Count[T]())
}

// Prev returns the value preceding v, wrapping from the first value to the
// last.
func Prev[T Enum](v T) T {
	n := Count[T]()
	return T((int(v) + n - 1) % n)
}

// All returns the range over every value of T in declaration order.
func All[T Enum]() Range[T] {
	return Range[T]{min: 0, max: Count[T]()}
}

// Values returns every value of T in declaration order. The slice is freshly
// allocated on each call.
func Values[T Enum]() []T {
	return All[T]().Values()
}

// Names returns the declared names of T in declaration order.
func Names[T Enum]() []string {
	return infoOf[T]().Names()
}
