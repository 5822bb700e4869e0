/*
 * Corvid - a bitboard chess engine core written in Go
 */

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

// TestMagicMatchesRayWalk is the defining invariant from the spec: for
// every square and every full occupancy, the magic-indexed lookup must
// equal a direct ray walk restricted to that square's mask.
func TestMagicMatchesRayWalk(t *testing.T) {
	occupancies := []Bitboard{
		BbZero,
		BbAll,
		Rank4_Bb | Rank5_Bb,
		FileD_Bb | FileE_Bb,
		SqB2.Bb() | SqG7.Bb() | SqD4.Bb() | SqE5.Bb(),
	}
	for sq := SqA1; sq < SqNone; sq++ {
		for _, occ := range occupancies {
			wantBishop := slidingAttack(bishopDirs, sq, occ&bishopMagics[sq].Mask)
			gotBishop := BishopAttacks(sq, occ)
			assert.Equal(t, wantBishop, gotBishop, "bishop attacks mismatch at %s", sq)

			wantRook := slidingAttack(rookDirs, sq, occ&rookMagics[sq].Mask)
			gotRook := RookAttacks(sq, occ)
			assert.Equal(t, wantRook, gotRook, "rook attacks mismatch at %s", sq)
		}
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	got := KnightAttacks(SqA1)
	want := SqB3.Bb() | SqC2.Bb()
	assert.Equal(t, want, got)
}

func TestKingAttacksCorner(t *testing.T) {
	got := KingAttacks(SqA1)
	want := SqA2.Bb() | SqB2.Bb() | SqB1.Bb()
	assert.Equal(t, want, got)
}

func TestPawnAttacksEdgeClip(t *testing.T) {
	assert.Equal(t, SqB3.Bb(), PawnAttacks(White, SqA2))
	assert.Equal(t, SqG6.Bb(), PawnAttacks(Black, SqH7))
}

func TestQueenAttacksIsUnion(t *testing.T) {
	sq := SqD4
	occ := Bitboard(0)
	assert.Equal(t, RookAttacks(sq, occ)|BishopAttacks(sq, occ), QueenAttacks(sq, occ))
}
