/*
 * Corvid - a bitboard chess engine core written in Go
 */

package position

import (
	"github.com/corvidchess/corvid/internal/attacks"
	. "github.com/corvidchess/corvid/internal/types"
)

// AttackersOfTypeTo returns the squares holding a piece of color by and
// type pt that attack sq, given a caller-supplied occupied bitboard
// rather than the position's own. This lets static-exchange evaluation
// walk a capture sequence by shrinking occupied one piece at a time
// without having to materialize an intermediate Position for every step.
func (p *Position) AttackersOfTypeTo(sq Square, by Color, pt PieceType, occupied Bitboard) Bitboard {
	pieces := p.PiecesBb(by, pt) & occupied
	if pieces == BbZero {
		return BbZero
	}
	switch pt {
	case Pawn:
		return attacks.PawnAttacks(by.Opposite(), sq) & pieces
	case Knight:
		return attacks.KnightAttacks(sq) & pieces
	case King:
		return attacks.KingAttacks(sq) & pieces
	case Bishop:
		return attacks.BishopAttacks(sq, occupied) & pieces
	case Rook:
		return attacks.RookAttacks(sq, occupied) & pieces
	case Queen:
		return attacks.QueenAttacks(sq, occupied) & pieces
	default:
		return BbZero
	}
}
