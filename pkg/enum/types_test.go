package enum

import "fmt"

// Hand-written equivalents of generator output, shared by the package tests.

type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
)

var colorInfo = NewInfo("red", "green", "blue", "yellow")

func (Color) EnumInfo() *Info { return colorInfo }

func (c Color) String() string { return String(c) }

type ColorFlags = Flags[Color, uint8]

// Piece has nine values, so its flags need 16 bits.
type Piece uint8

const (
	PieceHead Piece = iota
	PieceChest
	PieceLegs
	PieceFeet
	PieceHands
	PieceRing
	PieceAmulet
	PieceCloak
	PieceBelt
)

var pieceInfo = NewInfo("head", "chest", "legs", "feet", "hands", "ring", "amulet", "cloak", "belt")

func (Piece) EnumInfo() *Info { return pieceInfo }

type PieceFlags = Flags[Piece, uint16]

// Wide uses every bit of a uint64.
type Wide uint8

var wideInfo = NewInfo(wideNames()...)

func (Wide) EnumInfo() *Info { return wideInfo }

func wideNames() []string {
	names := make([]string, MaxValues)
	for i := range names {
		names[i] = fmt.Sprintf("w%02d", i)
	}
	return names
}

type WideFlags = Flags[Wide, uint64]

// Single has one value.
type Single uint8

var singleInfo = NewInfo("only")

func (Single) EnumInfo() *Info { return singleInfo }
