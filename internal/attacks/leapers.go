/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package attacks precomputes every attack table the move generator and
// the in-check test rely on: leaper tables for pawns/knights/kings, and
// magic-indexed sliding tables for bishops/rooks (queens are the union of
// both). Every table here is built once at process start in init() and is
// immutable and safe for concurrent read access from then on.
package attacks

import (
	. "github.com/corvidchess/corvid/internal/types"
)

var (
	pawnAttacks   [ColorLength][SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
)

func init() {
	initLeapers()
	initMagics()
}

func initLeapers() {
	for sq := SqA1; sq < SqNone; sq++ {
		b := sq.Bb()

		pawnAttacks[White][sq] = ShiftBb(b, Northeast) | ShiftBb(b, Northwest)
		pawnAttacks[Black][sq] = ShiftBb(b, Southeast) | ShiftBb(b, Southwest)

		knightAttacks[sq] = knightAttackFrom(b)
		kingAttacks[sq] = kingAttackFrom(b)
	}
}

// knightAttackFrom computes the eight L-jumps from the single-bit board b,
// clipped at the board edge with the AB/GH file masks so jumps never wrap
// around a file.
func knightAttackFrom(b Bitboard) Bitboard {
	var a Bitboard
	a |= (b &^ (FileA_Bb | FileB_Bb)) << 6
	a |= (b &^ (FileA_Bb | FileB_Bb)) >> 10
	a |= (b &^ FileA_Bb) << 15
	a |= (b &^ FileA_Bb) >> 17
	a |= (b &^ FileH_Bb) << 17
	a |= (b &^ FileH_Bb) >> 15
	a |= (b &^ (FileG_Bb | FileH_Bb)) << 10
	a |= (b &^ (FileG_Bb | FileH_Bb)) >> 6
	return a
}

// kingAttackFrom computes the eight adjacent squares from single-bit
// board b, clipped at the board edge.
func kingAttackFrom(b Bitboard) Bitboard {
	var a Bitboard
	a |= ShiftBb(b, North)
	a |= ShiftBb(b, South)
	a |= ShiftBb(b, East)
	a |= ShiftBb(b, West)
	a |= ShiftBb(b, Northeast)
	a |= ShiftBb(b, Northwest)
	a |= ShiftBb(b, Southeast)
	a |= ShiftBb(b, Southwest)
	return a
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}
