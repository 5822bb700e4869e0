/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package history provides the move-ordering tables the search fills in
// as it searches: a history heuristic counter per color/from/to and a
// single counter-move slot per from/to, both consulted by move ordering
// after the TT move and captures have been tried.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// History accumulates move-ordering signal across a search. Counts are
// bumped on a beta cutoff by a quiet move and carried from one search to
// the next; Clear zeroes them all, so old games' history doesn't bias a
// fresh game.
type History struct {
	count        [ColorLength][SqLength][SqLength]int32
	counterMoves [SqLength][SqLength]Move
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Clear resets all counters and counter-moves.
func (h *History) Clear() {
	*h = History{}
}

// Bump rewards a quiet move that caused a beta cutoff at the given depth
// - deeper cutoffs move the counter further, the standard "depth squared"
// history update that makes the heuristic converge quickly on the moves
// that matter without needing a separate decay pass.
func (h *History) Bump(us Color, m Move, depth int) {
	bonus := int32(depth * depth)
	h.count[us][m.From()][m.To()] += bonus
}

// Score returns the current history count for a quiet move - used as the
// sort key for moves that aren't the TT move, a killer, or a capture.
func (h *History) Score(us Color, m Move) int {
	return int(h.count[us][m.From()][m.To()])
}

// SetCounterMove records m as the reply that refuted the move made at
// (from, to) one ply earlier.
func (h *History) SetCounterMove(parentFrom, parentTo Square, m Move) {
	h.counterMoves[parentFrom][parentTo] = m
}

// CounterMove returns the recorded reply to a move at (from, to), or
// MoveNone if none has been recorded.
func (h *History) CounterMove(parentFrom, parentTo Square) Move {
	return h.counterMoves[parentFrom][parentTo]
}

func (h *History) String() string {
	var sb strings.Builder
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			w, b := h.count[White][sf][st], h.count[Black][sf][st]
			if w == 0 && b == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("%s%s: w=%d b=%d\n", sf, st, w, b))
		}
	}
	return sb.String()
}
