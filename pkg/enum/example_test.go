package enum_test

import (
	"fmt"

	"github.com/conduit-lang/enumgen/pkg/enum"
)

func Example() {
	fmt.Println(enum.Count[enum.Color]())
	fmt.Println(enum.String(enum.ColorBlue))

	if c, ok := enum.FromString[enum.Color]("green"); ok {
		fmt.Println(c == enum.ColorGreen)
	}

	fmt.Println(enum.Next(enum.ColorYellow), enum.Prev(enum.ColorRed))

	for c := range enum.All[enum.Color]().Seq() {
		fmt.Print(c, " ")
	}
	fmt.Println()

	// Output:
	// 4
	// blue
	// true
	// red yellow
	// red green blue yellow
}

func ExampleFlags() {
	f := enum.Or[uint8](enum.ColorRed, enum.ColorBlue)

	fmt.Println(f, f.Len())
	fmt.Println(f.Complement(), f.Complement().Len())
	fmt.Println(f.Has(enum.ColorGreen))

	// Output:
	// red|blue 2
	// green|yellow 2
	// false
}
