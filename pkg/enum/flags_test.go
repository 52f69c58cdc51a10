package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_ColorScenario(t *testing.T) {
	f := Or[uint8](ColorRed, ColorBlue)

	assert.True(t, f.Any())
	assert.True(t, f.Intersect(FlagsOf[Color, uint8](ColorGreen)).Equal(ColorFlags{}))
	assert.Equal(t, 2, f.Len())

	c := f.Complement()
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Equal(Or[uint8](ColorGreen, ColorYellow)))
	assert.Equal(t, uint8(0b1010), c.Bits())
}

func TestFlags_ZeroValueIsEmpty(t *testing.T) {
	var f ColorFlags

	assert.True(t, f.Empty())
	assert.False(t, f.Any())
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, "", f.String())
	assert.Empty(t, f.Values())
}

func TestFlags_Constructors(t *testing.T) {
	single := FlagsOf[Color, uint8](ColorBlue)
	assert.Equal(t, uint8(0b0100), single.Bits())
	assert.True(t, single.Is(ColorBlue))
	assert.False(t, single.Is(ColorRed))

	raw := FlagsFromBits[Color](uint8(0b1001))
	assert.True(t, raw.Has(ColorRed))
	assert.True(t, raw.Has(ColorYellow))
	assert.Equal(t, 2, raw.Len())

	all := AllFlags[Color, uint8]()
	assert.Equal(t, uint8(0b1111), all.Bits())
	assert.Equal(t, 4, all.Len())

	assert.Panics(t, func() { FlagsOf[Color, uint8](Color(4)) })
}

func TestFlags_Laws(t *testing.T) {
	all := AllFlags[Color, uint8]()
	empty := ColorFlags{}

	for a := uint8(0); a < 16; a++ {
		fa := FlagsFromBits[Color](a)
		assert.True(t, fa.Intersect(fa.Complement()).Equal(empty), "a & ~a, a=%04b", a)
		assert.True(t, fa.Union(fa.Complement()).Equal(all), "a | ~a, a=%04b", a)
		assert.True(t, fa.SymmetricDifference(fa).Equal(empty), "a ^ a, a=%04b", a)
		assert.True(t, fa.Complement().Complement().Equal(fa), "~~a, a=%04b", a)

		for b := uint8(0); b < 16; b++ {
			fb := FlagsFromBits[Color](b)
			assert.True(t, fa.Union(fb).Intersect(fa).Equal(fa), "absorption, a=%04b b=%04b", a, b)
		}
	}
}

func TestFlags_ComplementIsMasked(t *testing.T) {
	var c ColorFlags
	assert.Equal(t, uint8(0b1111), c.Complement().Bits())

	var p PieceFlags
	assert.Equal(t, uint16(0x1ff), p.Complement().Bits())
	assert.Equal(t, 9, p.Complement().Len())

	var w WideFlags
	assert.Equal(t, ^uint64(0), w.Complement().Bits())
	assert.Equal(t, 64, w.Complement().Len())

	assert.True(t, Not[uint8](ColorRed).Equal(Or[uint8](ColorGreen, ColorBlue).With(ColorYellow)))
}

func TestFlags_NarrowStoragePanics(t *testing.T) {
	assert.PanicsWithValue(t, "enum: enum.Piece has 9 values, more than 8 flag bits", func() {
		AllFlags[Piece, uint8]()
	})
	assert.Panics(t, func() {
		var f Flags[Piece, uint8]
		f.Complement()
	})
	assert.NotPanics(t, func() {
		AllFlags[Color, uint8]()
	})
}

func TestFlags_FreeCombinators(t *testing.T) {
	assert.True(t, And[uint8](ColorRed, ColorRed).Is(ColorRed))
	assert.True(t, And[uint8](ColorRed, ColorBlue).Empty())
	assert.True(t, Xor[uint8](ColorRed, ColorRed).Empty())
	assert.Equal(t, 2, Xor[uint8](ColorRed, ColorBlue).Len())
	assert.Equal(t, 8, Not[uint16](PieceBelt).Len())
}

func TestFlags_Mutation(t *testing.T) {
	var f PieceFlags
	f.Add(PieceHead, PieceBelt)
	assert.Equal(t, uint16(1|1<<8), f.Bits())

	g := f
	g.Remove(PieceHead)
	assert.True(t, f.Has(PieceHead), "copies are independent")
	assert.False(t, g.Has(PieceHead))

	f.UnionWith(FlagsOf[Piece, uint16](PieceRing))
	assert.Equal(t, 3, f.Len())

	f.IntersectWith(FlagsOf[Piece, uint16](PieceRing, PieceBelt, PieceLegs))
	assert.Equal(t, []Piece{PieceRing, PieceBelt}, f.Values())

	f.SymmetricDifferenceWith(FlagsOf[Piece, uint16](PieceBelt, PieceCloak))
	assert.Equal(t, []Piece{PieceRing, PieceCloak}, f.Values())

	f.Toggle(PieceRing)
	f.Toggle(PieceHead)
	assert.Equal(t, []Piece{PieceHead, PieceCloak}, f.Values())

	assert.Equal(t, []Piece{PieceCloak}, f.Without(PieceHead).Values())
	assert.Equal(t, 2, f.Len(), "Without does not mutate")
}

func TestFlags_String(t *testing.T) {
	f := Or[uint8](ColorYellow, ColorRed)
	assert.Equal(t, "red|yellow", f.String())
}

func TestFlags_Seq(t *testing.T) {
	w := FlagsOf[Wide, uint64](Wide(0), Wide(31), Wide(63))

	var got []Wide
	for v := range w.Seq() {
		got = append(got, v)
	}
	require.Len(t, got, 3)
	assert.Equal(t, []Wide{0, 31, 63}, got)
}

func TestFlags_SeqSkipsUndeclaredBits(t *testing.T) {
	raw := FlagsFromBits[Color](uint8(0xff))
	assert.Equal(t, []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}, raw.Values())
}
