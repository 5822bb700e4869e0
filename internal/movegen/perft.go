/*
 * Corvid - a bitboard chess engine core written in Go
 */

package movegen

import (
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

// PerftResult summarizes one perft run: the total leaf-node count at
// depth, plus the standard move-category breakdown used to localize a
// move generation or make-move bug to a specific move kind.
type PerftResult struct {
	Depth      int
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Duration   time.Duration
}

// Nps returns nodes searched per second for the run.
func (r PerftResult) Nps() uint64 {
	return util.Nps(r.Nodes, r.Duration)
}

// Perft walks the full legal-move tree to depth and counts leaves. It is
// the correctness harness for move generation and make-move: the exact
// leaf counts for a handful of well-known positions are the regression
// check against an accidental square-orientation inversion, a missed
// castling-rights update, or a magic-number collision that silently
// returns a wrong attack set.
func Perft(pos *position.Position, depth int) PerftResult {
	start := time.Now()
	g := NewGenerator()
	var r PerftResult
	r.Depth = depth
	perftRecurse(g, pos, depth, &r)
	r.Duration = time.Since(start)
	return r
}

func perftRecurse(g *Generator, pos *position.Position, depth int, r *PerftResult) {
	if depth == 0 {
		r.Nodes++
		return
	}
	pseudo := moveslice.NewMoveList()
	g.GeneratePseudoLegalMoves(pos, GenAll, pseudo)
	us := pos.SideToMove()

	pseudo.ForEach(func(_ int, m Move) {
		saved := *pos
		pos.DoMove(m)
		if pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			*pos = saved
			return
		}
		if depth == 1 {
			countLeafMove(pos, m, r)
		}
		perftRecurse(g, pos, depth-1, r)
		*pos = saved
	})
}

func countLeafMove(pos *position.Position, m Move, r *PerftResult) {
	if m.IsCapture() {
		r.Captures++
	}
	switch m.Type() {
	case EnPassant:
		r.EnPassant++
	case Castle:
		r.Castles++
	}
	if m.Type().IsPromotion() {
		r.Promotions++
	}
	if pos.InCheck() {
		r.Checks++
	}
}

// PerftDivide runs perft one ply at a time, returning node counts per root
// move - the standard technique for bisecting a perft mismatch down to the
// exact move at fault.
func PerftDivide(pos *position.Position, depth int) map[string]uint64 {
	g := NewGenerator()
	results := make(map[string]uint64)
	if depth == 0 {
		return results
	}
	pseudo := moveslice.NewMoveList()
	g.GeneratePseudoLegalMoves(pos, GenAll, pseudo)
	us := pos.SideToMove()

	pseudo.ForEach(func(_ int, m Move) {
		saved := *pos
		pos.DoMove(m)
		if pos.IsAttacked(pos.KingSquare(us), us.Opposite()) {
			*pos = saved
			return
		}
		var sub PerftResult
		perftRecurse(g, pos, depth-1, &sub)
		results[m.UCI()] = sub.Nodes
		*pos = saved
	})
	return results
}
