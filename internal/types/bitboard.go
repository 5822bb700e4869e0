/*
 * Corvid - a bitboard chess engine core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2024-2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package types holds the leaf data types shared by every other package in
// the engine: bitboards, squares, pieces, colors, castling rights and the
// packed move representation. Nothing in this package depends on position,
// movegen, attacks or search - that is what keeps the cyclic-import mess
// the teacher warns about from coming back.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit word with one bit per square. Square s is represented
// by bit s, so SqA1.Bb() == 1<<0 and SqH8.Bb() == 1<<63.
type Bitboard uint64

// BbZero and BbAll are the empty and fully-occupied bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File masks, rank masks and a few derived masks used throughout the
// leaper/slider attack generators.
const (
	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0x00000000000000FF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	NotFileA_Bb Bitboard = ^FileA_Bb
	NotFileH_Bb Bitboard = ^FileH_Bb
	NotAB_Bb    Bitboard = ^(FileA_Bb | FileB_Bb)
	NotGH_Bb    Bitboard = ^(FileG_Bb | FileH_Bb)
)

// PushSquare returns b with the bit for s set.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s on the receiver in place.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare returns b with the bit for s cleared.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s on the receiver in place.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether the bit for square s is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// PopCount returns the number of set bits (0..64).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the lowest set bit. Undefined (returns SqNone)
// when b is empty - callers must guard with b != BbZero first.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the square of the lowest set bit and clears it on the
// receiver. This is the standard iteration idiom:
//
//	for bb != BbZero {
//	    sq := bb.PopLsb()
//	    ...
//	}
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// String renders the bitboard as an 8x8 grid, rank 8 on top, for debugging.
func (b Bitboard) String() string {
	var s strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				s.WriteString("1 ")
			} else {
				s.WriteString(". ")
			}
		}
		s.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return s.String()
}
