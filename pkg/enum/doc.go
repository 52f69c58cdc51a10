// Package enum provides the runtime half of enumgen: metadata lookup, cyclic
// navigation, iteration and bit flags for enum types produced by the generator.
//
// Generated types satisfy the Enum constraint by carrying an EnumInfo method
// that returns a package-level *Info built once at initialization. Every
// generic function in this package is constrained on Enum, so passing a type
// that was never declared through the generator is rejected by the compiler:
//
//	enum.Count[int]() // int does not satisfy enum.Enum (missing method EnumInfo)
//
// # Usage
//
// Given the declaration
//
//	enum Color { red, green, blue, yellow }
//
// the generated code allows
//
//	enum.Count[Color]()             // 4
//	enum.String(ColorBlue)          // "blue"
//	enum.FromString[Color]("green") // ColorGreen, true
//	enum.Next(ColorYellow)          // ColorRed
//	for c := range enum.All[Color]().Seq() { ... }
//
//	f := ColorRed.Or(ColorBlue) // ColorFlags
//	f.Has(ColorGreen)           // false
//	f.Complement().Len()        // 2
//
// # Thread Safety
//
// Info tables are immutable after construction and may be read from any number
// of goroutines. Range, Cursor and Flags are plain values with no shared state.
package enum
