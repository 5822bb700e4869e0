/*
 * Corvid - a bitboard chess engine core written in Go
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestStoreThenProbeHits(t *testing.T) {
	tt := NewTable(1)
	m := NewMove(SqE2, SqE4, WhitePawn, DoublePush, PtNone)
	tt.Store(0x1234, m, Value(55), Value(50), 4, BoundExact, 0)

	gotMove, gotValue, gotEval, gotDepth, gotBound, ok := tt.Probe(0x1234, 0)
	assert.True(t, ok)
	assert.Equal(t, m, gotMove)
	assert.Equal(t, Value(55), gotValue)
	assert.Equal(t, Value(50), gotEval)
	assert.Equal(t, int8(4), gotDepth)
	assert.Equal(t, BoundExact, gotBound)
}

func TestProbeMissOnUnseenKey(t *testing.T) {
	tt := NewTable(1)
	_, _, _, _, _, ok := tt.Probe(0xDEAD, 0)
	assert.False(t, ok)
}

func TestMateScoreNormalizationRoundTrips(t *testing.T) {
	tt := NewTable(1)
	winningAtPly3 := MateIn(2) // winning mate score as the search reports it at a node at ply 3
	tt.Store(0xAAAA, MoveNone, winningAtPly3, ValueZero, 10, BoundExact, 3)

	_, gotAtSamePly, _, _, _, ok := tt.Probe(0xAAAA, 3)
	assert.True(t, ok)
	assert.Equal(t, winningAtPly3, gotAtSamePly)

	// Probing from the root (ply 0) subtracts nothing further, surfacing
	// the node-relative value the store step produced by adding the
	// original node's ply.
	_, gotAtRoot, _, _, _, ok := tt.Probe(0xAAAA, 0)
	assert.True(t, ok)
	assert.Equal(t, winningAtPly3+Value(3), gotAtRoot)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTable(1)
	tt.Store(0x1, MoveNone, Value(1), Value(1), 1, BoundExact, 0)
	tt.Clear()
	_, _, _, _, _, ok := tt.Probe(0x1, 0)
	assert.False(t, ok)
}

func TestNewSearchBumpsAge(t *testing.T) {
	tt := NewTable(1)
	before := tt.age
	tt.NewSearch()
	assert.Equal(t, before+1, tt.age)
}
