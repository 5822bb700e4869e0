/*
 * Corvid - a bitboard chess engine core written in Go
 */

package search

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// seeCapture estimates the net material gain of playing capture m,
// swapping off the full exchange sequence on the target square one
// attacker at a time, cheapest attacker first. Slider attacks are
// recomputed against the shrinking occupancy, so x-ray attackers behind a
// piece that has already captured join the exchange. It's still a
// simplification of full static-exchange evaluation (pins are ignored, and
// a pawn recapturing onto the last rank is valued as a pawn) but is
// enough to prune quiescence captures that are obviously losing
// (e.g. a pawn capturing a rook defended by another pawn).
func seeCapture(pos *position.Position, m Move) Value {
	to := m.To()
	us := pos.SideToMove()
	them := us.Opposite()

	var victimValue Value
	if m.Type() == EnPassant {
		victimValue = Pawn.Value()
	} else {
		victimValue = pos.PieceAt(to).TypeOf().Value()
	}

	gain := []Value{victimValue}
	attackerValue := m.Piece().TypeOf().Value()
	occupied := pos.Occupied() &^ m.From().Bb()
	side := them

	for {
		attackerSq, attackerType, found := cheapestAttacker(pos, to, side, occupied)
		if !found {
			break
		}
		gain = append(gain, attackerValue-gain[len(gain)-1])
		attackerValue = attackerType.Value()
		occupied &^= attackerSq.Bb()
		side = side.Opposite()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

// cheapestAttacker finds the least valuable piece of color side attacking
// sq given the (possibly already-reduced) occupied bitboard, used to walk
// the capture-recapture sequence one ply at a time.
func cheapestAttacker(pos *position.Position, sq Square, side Color, occupied Bitboard) (Square, PieceType, bool) {
	for pt := Pawn; pt <= King; pt++ {
		attackers := pos.AttackersOfTypeTo(sq, side, pt, occupied)
		if attackers != BbZero {
			return attackers.Lsb(), pt, true
		}
	}
	return SqNone, PtNone, false
}
