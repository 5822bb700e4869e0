/*
 * Corvid - a bitboard chess engine core written in Go
 */

package search

import (
	"github.com/corvidchess/corvid/internal/config"
	. "github.com/corvidchess/corvid/internal/types"
)

// lmrReduction returns the late-move-reduction amount for the moveIndex-th
// move (0-based) searched at depth from a non-PV, non-tactical, non-check
// node: no reduction before config.Settings.Search.LmrMinDepth or before
// config.Settings.Search.LmrFullMoves moves have been tried, one ply for
// the next two moves after that, two plies beyond. This schedule is a
// tuning knob, not a correctness property - any schedule that never
// reduces below depth 0 and never touches PV/check/tactical moves is
// acceptable.
func lmrReduction(moveIndex, depth int) int {
	minDepth := config.Settings.Search.LmrMinDepth
	fullMoves := config.Settings.Search.LmrFullMoves
	if depth < minDepth || moveIndex < fullMoves {
		return 0
	}
	if moveIndex < fullMoves+2 {
		return 1
	}
	return 2
}

// mateDistancePruning narrows [alpha, beta] to account for the fact that
// a shorter mate can never be beaten by a longer one: a position ply
// plies from the root can never score better than a mate delivered right
// now, nor worse than being mated right now. Returns the (possibly)
// tightened window and whether it has already collapsed (alpha >= beta),
// in which case the caller can return alpha immediately.
func mateDistancePruning(alpha, beta Value, ply int) (Value, Value, bool) {
	if matingScore := MateIn(ply + 1); beta > matingScore {
		beta = matingScore
	}
	if matedScore := MatedIn(ply); alpha < matedScore {
		alpha = matedScore
	}
	return alpha, beta, alpha >= beta
}
