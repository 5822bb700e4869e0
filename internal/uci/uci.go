/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package uci implements the text side of the Universal Chess Interface
// protocol: reading command lines from a UCI-speaking GUI and writing the
// id/option/bestmove/info responses it expects. The engine-facing surface
// (NewGame, SetPosition, Go, Stop) is plain Go method calls a caller other
// than Run can drive directly - this package's tests do exactly that,
// bypassing the text protocol entirely.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	corvidlogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/openingbook"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

const engineName = "Corvid 1.0"
const engineAuthor = "the corvidchess project"

var log *logging.Logger

func init() {
	log = corvidlogging.GetLog()
}

// Engine owns everything one UCI session needs: the current position, the
// search engine, its backing transposition table and an optional opening
// book. A single Engine is not meant to run two searches concurrently -
// the UCI protocol itself is single-threaded per session, one "go" active
// at a time until "stop" or "bestmove".
type Engine struct {
	pos     position.Position
	search  *search.Engine
	tt      *transpositiontable.Table
	gen     *movegen.Generator
	book    *openingbook.Book

	in  *bufio.Scanner
	out *bufio.Writer

	mu        sync.Mutex
	searching bool
	stopCh    chan struct{}
}

// NewEngine returns a UCI engine reading from in and writing to out, with
// a transposition table sized per config.Settings.Search.TTSizeMB.
func NewEngine(in io.Reader, out io.Writer) *Engine {
	tt := transpositiontable.NewTable(config.Settings.Search.TTSizeMB)
	e := &Engine{
		pos:    position.New(position.StartFen),
		search: search.NewEngine(tt),
		tt:     tt,
		gen:    movegen.NewGenerator(),
		in:     bufio.NewScanner(in),
		out:    bufio.NewWriter(out),
	}
	e.in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	e.loadBook()
	return e
}

func (e *Engine) loadBook() {
	if !config.Settings.Search.UseBook || config.Settings.Search.BookPath == "" {
		return
	}
	b, err := openingbook.Load(config.Settings.Search.BookPath)
	if err != nil {
		log.Warningf("uci: book unavailable, disabling: %v", err)
		return
	}
	e.book = b
	e.search.SetBook(b)
	log.Infof("uci: loaded book with %d positions", b.Len())
}

// NewGame resets search state for a new game - a fresh hash table, killer
// and history tables - the same reset "ucinewgame" triggers.
func (e *Engine) NewGame() {
	e.search.ClearHash()
}

// SetPosition replaces the current position with the one reached from
// startFen (StartFen if empty) after playing moves in order. A move that
// fails to resolve against the position it's played from stops replay at
// that point.
func (e *Engine) SetPosition(startFen string, moves []string) {
	if startFen == "" {
		startFen = position.StartFen
	}
	p, err := position.NewFromFEN(startFen)
	if err != nil {
		log.Warningf("uci: bad FEN %q: %v", startFen, err)
		return
	}
	for _, ms := range moves {
		m := e.gen.MoveFromUCI(&p, ms)
		if m == MoveNone {
			log.Warningf("uci: move %q illegal in current position, stopping replay", ms)
			break
		}
		p.DoMove(m)
	}
	e.pos = p
}

// Go starts a search under limits and returns once it completes (depth/
// node/time exhaustion) or Stop is called. It reports one "info" line per
// completed iteration via onIteration and returns the final result.
func (e *Engine) Go(limits search.Limits, onIteration func(search.Result)) search.Result {
	e.mu.Lock()
	e.searching = true
	e.stopCh = make(chan struct{})
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.searching = false
		e.mu.Unlock()
	}()

	return e.search.Go(e.pos, limits, onIteration)
}

// Stop requests that a running Go call return as soon as its next budget
// check runs.
func (e *Engine) Stop() {
	e.search.Stop()
}

// IsSearching reports whether a Go call is currently in progress.
func (e *Engine) IsSearching() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.searching
}

// Run reads UCI command lines from e's input until "quit" or EOF, writing
// responses to e's output. Unlike Go/SetPosition/NewGame, this owns the
// search lifecycle itself: "go" runs in its own goroutine so a later
// "stop" line can be read and acted on while the search is in flight.
func (e *Engine) Run() {
	var searchWg sync.WaitGroup
	for e.in.Scan() {
		line := e.in.Text()
		if e.handleLine(line, &searchWg) {
			break
		}
	}
	searchWg.Wait()
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// handleLine dispatches one command line, returning true if it was "quit".
func (e *Engine) handleLine(line string, searchWg *sync.WaitGroup) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := whitespaceRe.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		e.send("id name " + engineName)
		e.send("id author " + engineAuthor)
		for _, opt := range optionDescriptors() {
			e.send(opt)
		}
		e.send("uciok")
	case "isready":
		e.send("readyok")
	case "setoption":
		e.handleSetOption(tokens)
	case "ucinewgame":
		e.NewGame()
	case "position":
		e.handlePosition(tokens)
	case "go":
		e.handleGo(tokens, searchWg)
	case "stop":
		e.Stop()
	case "ponderhit":
		// Ponder mode isn't modeled separately - an ordinary search already
		// runs to its own completion, so there's nothing extra to switch.
	case "debug", "register":
		// Accepted and ignored, per the protocol's "may be ignored" clause.
	default:
		log.Warningf("uci: unknown command %q", line)
	}
	return false
}

func (e *Engine) handlePosition(tokens []string) {
	if len(tokens) < 2 {
		log.Warning("uci: position command malformed")
		return
	}
	fen := position.StartFen
	i := 1
	switch tokens[1] {
	case "startpos":
		i = 2
	case "fen":
		i = 2
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(b.String())
	default:
		log.Warningf("uci: position command malformed: %v", tokens)
		return
	}
	var moves []string
	if i < len(tokens) && tokens[i] == "moves" {
		moves = tokens[i+1:]
	}
	e.SetPosition(fen, moves)
}

func (e *Engine) handleGo(tokens []string, searchWg *sync.WaitGroup) {
	limits, err := parseGoLimits(tokens)
	if err != nil {
		log.Warningf("uci: go command malformed: %v", err)
		return
	}
	searchWg.Add(1)
	go func() {
		defer searchWg.Done()
		result := e.Go(limits, func(r search.Result) {
			e.send(infoLine(r))
		})
		e.send(bestMoveLine(result))
	}()
}

func (e *Engine) handleSetOption(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		log.Warning("uci: setoption command malformed")
		return
	}
	applyOption(e, name, value)
}

func infoLine(r search.Result) string {
	nps := uint64(0)
	if r.Duration > 0 {
		nps = uint64(float64(r.Nodes) / r.Duration.Seconds())
	}
	return fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		r.Depth, scoreString(r.Score), r.Nodes, nps, r.Duration.Milliseconds(), pvString(r.PV))
}

func scoreString(v Value) string {
	if v.IsMateScore() {
		plies := int(ValueMate) - int(v)
		if v < 0 {
			plies = int(ValueMate) + int(v)
		}
		mateIn := (plies + 1) / 2
		if v < 0 {
			mateIn = -mateIn
		}
		return fmt.Sprintf("mate %d", mateIn)
	}
	return fmt.Sprintf("cp %d", int(v))
}

func pvString(pv []Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.UCI()
	}
	return strings.Join(parts, " ")
}

func bestMoveLine(r search.Result) string {
	if r.BestMove == MoveNone {
		return "bestmove 0000"
	}
	return "bestmove " + r.BestMove.UCI()
}

func (e *Engine) send(s string) {
	_, _ = e.out.WriteString(s + "\n")
	_ = e.out.Flush()
}

func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 3 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = strings.Join(tokens[i+1:], " ")
	}
	return name, value, name != ""
}

func parseGoLimits(tokens []string) (search.Limits, error) {
	limits := search.Limits{}
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			v, err := intArg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.Depth = v
			i += 2
		case "nodes":
			v, err := int64Arg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.Nodes = uint64(v)
			i += 2
		case "mate":
			v, err := intArg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.Mate = v
			i += 2
		case "movetime", "moveTime":
			v, err := int64Arg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i += 2
		case "wtime":
			v, err := int64Arg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i += 2
		case "btime":
			v, err := int64Arg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i += 2
		case "winc":
			v, err := int64Arg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.WhiteInc = time.Duration(v) * time.Millisecond
			i += 2
		case "binc":
			v, err := int64Arg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.BlackInc = time.Duration(v) * time.Millisecond
			i += 2
		case "movestogo":
			v, err := intArg(tokens, i)
			if err != nil {
				return limits, err
			}
			limits.MovesToGo = v
			i += 2
		default:
			i++
		}
	}
	return limits, nil
}

func intArg(tokens []string, i int) (int, error) {
	if i+1 >= len(tokens) {
		return 0, fmt.Errorf("missing value for %q", tokens[i])
	}
	return strconv.Atoi(tokens[i+1])
}

func int64Arg(tokens []string, i int) (int64, error) {
	if i+1 >= len(tokens) {
		return 0, fmt.Errorf("missing value for %q", tokens[i])
	}
	return strconv.ParseInt(tokens[i+1], 10, 64)
}
