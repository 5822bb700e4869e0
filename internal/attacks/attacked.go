/*
 * Corvid - a bitboard chess engine core written in Go
 */

package attacks

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// Attackers bundles the bitboards IsAttacked needs from the board without
// this package importing position (which itself imports attacks) - the
// cyclic-reference trap the spec's design notes call out. Position fills
// this from its own state per call.
type Attackers struct {
	Occupied      Bitboard
	Pawns         Bitboard
	Knights       Bitboard
	DiagSliders   Bitboard // bishops | queens
	OrthoSliders  Bitboard // rooks | queens
	King          Bitboard
}

// IsAttacked reports whether any piece of `by`'s bitboards (as bundled in
// a) attacks square sq. Pawn attacks are looked up from the *opposite*
// color's pawn-attack table applied to sq - a square is attacked by a
// White pawn iff sq is among the squares a Black pawn on sq would capture
// on, which is exactly the relationship the pawn table's symmetry gives.
func IsAttacked(sq Square, by Color, a Attackers) bool {
	if PawnAttacks(by.Opposite(), sq)&a.Pawns != 0 {
		return true
	}
	if KnightAttacks(sq)&a.Knights != 0 {
		return true
	}
	if KingAttacks(sq)&a.King != 0 {
		return true
	}
	if BishopAttacks(sq, a.Occupied)&a.DiagSliders != 0 {
		return true
	}
	if RookAttacks(sq, a.Occupied)&a.OrthoSliders != 0 {
		return true
	}
	return false
}
