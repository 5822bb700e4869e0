/*
 * Corvid - a bitboard chess engine core written in Go
 */

package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
)

func init() {
	config.Setup()
}

func TestUciCommandAnnouncesIdentity(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader("uci\nquit\n"), out)
	e.Run()
	result := out.String()
	assert.Contains(t, result, "id name")
	assert.Contains(t, result, "id author")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader("isready\nquit\n"), out)
	e.Run()
	assert.Contains(t, out.String(), "readyok")
}

func TestPositionStartposThenMoves(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader(""), out)
	e.handlePosition(strings.Fields("position startpos"))
	assert.Equal(t, position.StartFen, e.pos.Fen())

	e.handlePosition(strings.Fields("position startpos moves e2e4 e7e5"))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", e.pos.Fen())
}

func TestPositionFenDirective(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader(""), out)
	fen := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	e.handlePosition(strings.Fields("position fen " + fen))
	assert.Equal(t, fen, e.pos.Fen())
}

func TestGoRunsSearchAndReturnsBestMove(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader(""), out)
	e.SetPosition(position.StartFen, nil)
	result := e.Go(search.Limits{Depth: 2}, nil)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestRunHandlesFullSearchProtocol(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader("position startpos\ngo depth 2\nquit\n"), out)
	e.Run()
	result := out.String()
	assert.Contains(t, result, "bestmove")
}

func TestSetOptionHashResize(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader(""), out)
	e.handleSetOption(strings.Fields("setoption name Hash value 16"))
	assert.Equal(t, 16, config.Settings.Search.TTSizeMB)
}

func TestSetOptionClearHashDoesNotPanic(t *testing.T) {
	out := new(bytes.Buffer)
	e := NewEngine(strings.NewReader(""), out)
	require.NotPanics(t, func() {
		e.handleSetOption([]string{"setoption", "name", "Clear", "Hash"})
	})
}

func TestScoreStringFormatsCentipawnsAndMate(t *testing.T) {
	assert.Equal(t, "cp 150", scoreString(150))
	assert.Equal(t, "mate 1", scoreString(MateIn(1)))
	assert.Equal(t, "mate -2", scoreString(MatedIn(3)))
}
