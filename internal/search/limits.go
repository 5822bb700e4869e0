/*
 * Corvid - a bitboard chess engine core written in Go
 */

package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
)

// Limits controls how long and how deep a single Go() call may search.
// The UCI adapter (C15) builds one of these from a "go" command's
// options; the test-suite runner builds one directly with just Depth or
// MoveTime set.
type Limits struct {
	Infinite bool
	Ponder   bool
	Mate     int

	Depth int
	Nodes uint64
	Moves moveslice.MoveList // restrict the root to these moves if non-empty

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns a zero-value Limits ready for the caller to fill in.
func NewLimits() *Limits {
	return &Limits{}
}

// effectiveMoveTime collapses whichever time-control fields are set into
// a single budget for the side to move, dividing remaining clock time by
// a conservative estimate of moves remaining when the game isn't using an
// explicit "moves to go" count.
func (l *Limits) effectiveMoveTime(whiteToMove bool) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if !l.TimeControl {
		return 0
	}
	remaining, inc := l.BlackTime, l.BlackInc
	if whiteToMove {
		remaining, inc = l.WhiteTime, l.WhiteInc
	}
	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := remaining/time.Duration(movesToGo) + inc/2
	if budget > remaining-50*time.Millisecond {
		budget = remaining - 50*time.Millisecond
	}
	if budget < time.Millisecond {
		budget = time.Millisecond
	}
	return budget
}
