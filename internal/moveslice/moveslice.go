/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package moveslice provides MoveList, the fixed-capacity ordered
// container the move generator fills and the search reorders and walks.
package moveslice

import (
	"sort"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// MaxMoves is the move list capacity. The maximum number of pseudo-legal
// moves from any legal chess position is below 220; 256 leaves headroom.
const MaxMoves = 256

// MoveList is a fixed-capacity ordered sequence of moves. The zero value
// is an empty, ready-to-use list.
type MoveList []Move

// NewMoveList returns an empty list pre-allocated to MaxMoves capacity.
func NewMoveList() *MoveList {
	ml := make(MoveList, 0, MaxMoves)
	return &ml
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return len(*ml) }

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() { *ml = (*ml)[:0] }

// PushBack appends a move. Panics if the list is already at capacity -
// the generator must never produce more pseudo-legal moves than MaxMoves
// allows (spec's MoveListOverflow invariant violation).
func (ml *MoveList) PushBack(m Move) {
	if len(*ml) >= MaxMoves {
		panic("moveslice: move list overflow, capacity exceeded")
	}
	*ml = append(*ml, m)
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move { return (*ml)[i] }

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) { (*ml)[i] = m }

// Swap exchanges the moves at i and j.
func (ml *MoveList) Swap(i, j int) { (*ml)[i], (*ml)[j] = (*ml)[j], (*ml)[i] }

// ForEach calls f with each move's index in order. f may call Set/Swap on
// the same list but must not change its length.
func (ml *MoveList) ForEach(f func(i int, m Move)) {
	for i, m := range *ml {
		f(i, m)
	}
}

// Filter keeps only the moves for which keep returns true, compacting in
// place and preserving relative order.
func (ml *MoveList) Filter(keep func(m Move) bool) {
	out := (*ml)[:0]
	for _, m := range *ml {
		if keep(m) {
			out = append(out, m)
		}
	}
	*ml = out
}

// SortByScore stable-sorts the list descending by the score function -
// used for MVV-LVA and history-heuristic ordering passes.
func (ml *MoveList) SortByScore(score func(m Move) int) {
	sort.SliceStable(*ml, func(i, j int) bool {
		return score((*ml)[i]) > score((*ml)[j])
	})
}

// MoveToFront moves the first occurrence of m to index 0, shifting the
// rest down by one. A no-op if m is not present or already at the front.
// The search does not use it: it ranks the TT move and killer moves first
// through SortByScore.
func (ml *MoveList) MoveToFront(m Move) {
	for i, candidate := range *ml {
		if candidate == m {
			if i != 0 {
				copy((*ml)[1:i+1], (*ml)[0:i])
				(*ml)[0] = m
			}
			return
		}
	}
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for _, candidate := range *ml {
		if candidate == m {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the list.
func (ml *MoveList) Clone() *MoveList {
	c := make(MoveList, len(*ml), cap(*ml))
	copy(c, *ml)
	return &c
}

// StringUci renders the list as space-separated UCI move strings, the
// format used for principal-variation output.
func (ml *MoveList) StringUci() string {
	var b strings.Builder
	for i, m := range *ml {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.UCI())
	}
	return b.String()
}
