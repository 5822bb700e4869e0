/*
 * Corvid - a bitboard chess engine core written in Go
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestSeeWinningCaptureIsPositive(t *testing.T) {
	// White pawn on e4 can take a black knight on d5 undefended.
	pos := position.New("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	m := NewMove(SqE4, SqD5, WhitePawn, Capture, PtNone)
	assert.Greater(t, int(seeCapture(&pos, m)), 0)
}

func TestSeeLosingCaptureIsNegative(t *testing.T) {
	// White queen takes a pawn on d5 that is defended by a black knight on b6.
	pos := position.New("4k3/8/1n6/3p4/8/8/8/3QK3 w - - 0 1")
	m := NewMove(SqD1, SqD5, WhiteQueen, Capture, PtNone)
	assert.Less(t, int(seeCapture(&pos, m)), 0)
}
