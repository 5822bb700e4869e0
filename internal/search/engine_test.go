/*
 * Corvid - a bitboard chess engine core written in Go
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

func newTestEngine() *Engine {
	return NewEngine(transpositiontable.NewTable(4))
}

func TestMateInOneIsFound(t *testing.T) {
	e := newTestEngine()
	pos := position.New("7k/6Q1/8/8/8/8/8/7K w - - 0 1")
	limits := Limits{Depth: 4}
	result := e.Go(pos, limits, nil)
	assert.Greater(t, int(result.Score), int(ValueMateThreshold))
	destinations := map[Square]bool{
		SqH7: true, SqH8: true, SqG8: true, SqF8: true,
		SqF7: true, SqE7: true, SqD7: true, SqC7: true, SqB7: true,
	}
	assert.True(t, destinations[result.BestMove.To()], "unexpected mating move %s", result.BestMove.UCI())
}

func TestFreeCaptureIsPreferred(t *testing.T) {
	e := newTestEngine()
	pos := position.New("rnb1kbnr/pppp1ppp/8/4p3/3q4/2N5/PPPPPPPP/R1BQKBNR w KQkq - 0 1")
	limits := Limits{Depth: 3}
	result := e.Go(pos, limits, nil)
	assert.Equal(t, SqC3, result.BestMove.From())
	assert.Equal(t, SqD4, result.BestMove.To())
}

func TestStalematePositionReturnsDraw(t *testing.T) {
	e := newTestEngine()
	pos := position.New("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	limits := Limits{Depth: 2}
	result := e.Go(pos, limits, nil)
	assert.Equal(t, ValueDraw, result.Score)
	assert.Equal(t, MoveNone, result.BestMove)
}

func TestNodeLimitStopsSearch(t *testing.T) {
	e := newTestEngine()
	pos := position.New("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	limits := Limits{Depth: 32, Nodes: 2000}
	result := e.Go(pos, limits, nil)
	assert.LessOrEqual(t, result.Nodes, uint64(2000)+nodeCheckInterval)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestIterationCallbackFiresPerDepth(t *testing.T) {
	e := newTestEngine()
	pos := position.New("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var depths []int
	e.Go(pos, Limits{Depth: 3}, func(r Result) {
		depths = append(depths, r.Depth)
	})
	assert.Equal(t, []int{1, 2, 3}, depths)
}
