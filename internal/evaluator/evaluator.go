/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package evaluator computes a static centipawn score for a position:
// material balance plus piece-square bonuses, with the king's
// piece-square contribution halved once the position reaches an endgame
// material balance. The score is always reported from the side-to-move's
// perspective, positive meaning good for the side to move.
package evaluator

import (
	"github.com/corvidchess/corvid/internal/config"
	. "github.com/corvidchess/corvid/internal/types"
)

// Evaluate returns pos's static score in centipawns from the side to
// move's perspective. Two calls on equal positions (same piece placement,
// same side to move) always return the same score - the color-symmetry
// and determinism laws the search's transposition table relies on. Pass
// a pointer (e.g. &pos for a position.Position value) since PiecesBb and
// SideToMove are defined on *position.Position.
func Evaluate(pos Position) Value {
	us := pos.SideToMove()
	white := materialAndPlacement(pos, White)
	black := materialAndPlacement(pos, Black)
	score := white - black
	tempo := Value(config.Settings.Eval.Tempo)
	if us == White {
		return score + tempo
	}
	return -score + tempo
}

// Position is a minimal read-only view the evaluator needs from a board;
// declared locally so this package doesn't import position directly,
// keeping the dependency arrow pointing the same way as attacks/position
// (evaluator is a leaf consumer, never a dependency of position).
type Position interface {
	PiecesBb(c Color, pt PieceType) Bitboard
	SideToMove() Color
}

func materialAndPlacement(pos Position, c Color) Value {
	var score Value
	endgame := isEndgame(pos, c)
	for pt := Pawn; pt <= King; pt++ {
		bb := pos.PiecesBb(c, pt)
		for bb != BbZero {
			sq := bb.PopLsb()
			score += pt.Value()
			score += placementBonus(pt, sq, c, endgame)
		}
	}
	return score
}

// isEndgame reports the spec's endgame signal for color c's own pieces:
// true when c has no queen, or exactly one queen and no rooks.
func isEndgame(pos Position, c Color) bool {
	queens := pos.PiecesBb(c, Queen).PopCount()
	if queens == 0 {
		return true
	}
	rooks := pos.PiecesBb(c, Rook).PopCount()
	return queens == 1 && rooks == 0
}

// placementBonus looks up sq (mirrored vertically for Black, per the
// color-symmetry law) in pt's piece-square table, halving the king's
// contribution in the endgame.
func placementBonus(pt PieceType, sq Square, c Color, endgame bool) Value {
	lookupSq := sq
	if c == Black {
		lookupSq = sq.Flipped()
	}
	bonus := Value(pieceSquareTables[pt][lookupSq])
	if pt == King && endgame && config.Settings.Eval.UseEndgameKingHalving {
		bonus /= 2
	}
	return bonus
}
