/*
 * Corvid - a bitboard chess engine core written in Go
 */

package openingbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/position"
)

const sampleBook = `
# two short lines sharing the same opening position
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1;e2e4;e7e5;g1f3
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1;d2d4;d7d5
`

func TestParseIndexesStartingPosition(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleBook))
	require.NoError(t, err)

	start := position.New("")
	move, ok := b.Probe(start.ZobristKey())
	require.True(t, ok)
	assert.Contains(t, []string{"e2e4", "d2d4"}, move.UCI())
}

func TestParseIndexesReplyPosition(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleBook))
	require.NoError(t, err)

	pos := position.New("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	move, ok := b.Probe(pos.ZobristKey())
	require.True(t, ok)
	assert.Equal(t, "e7e5", move.UCI())
}

func TestProbeMissReturnsFalse(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleBook))
	require.NoError(t, err)

	pos := position.New("8/8/8/4k3/8/8/8/4K2R w K - 0 1")
	_, ok := b.Probe(pos.ZobristKey())
	assert.False(t, ok)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"not-a-fen;e2e4",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1;z9z9",
	}, "\n")
	b, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestLenCountsDistinctPositions(t *testing.T) {
	b, err := Parse(strings.NewReader(sampleBook))
	require.NoError(t, err)
	assert.Equal(t, 4, b.Len())
}
