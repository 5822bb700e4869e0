/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package testsuite runs a batch of EPD-style chess positions against the
// engine and reports pass/fail per record. Each record carries a FEN plus
// either a set of acceptable best moves or a set of moves the engine must
// avoid - the "bm"/"am" EPD opcodes, the two most common in public test
// suites (STS, Win At Chess and similar). Records run concurrently, each
// over its own Position/Engine/Table so one slow search never blocks
// another - multiple independent single-threaded searches side by side,
// not a parallelized single search.
package testsuite

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/corvidchess/corvid/internal/config"
	corvidlogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger

func init() {
	log = corvidlogging.GetLog()
}

// Record is one EPD-derived test case: a position and the acceptable (or
// forbidden) replies from it.
type Record struct {
	FEN        string
	BestMoves  []string
	AvoidMoves []string
	ID         string
}

// Result is one Record's outcome after running it through a search.
type Result struct {
	Record   Record
	Actual   Move
	Score    Value
	Nodes    uint64
	Duration time.Duration
	Passed   bool
}

var epdLineRe = regexp.MustCompile(`^\s*(.*?)\s+(bm|am)\s+(.*?);(.*\bid\s+"(.*?)";)?.*$`)

// LoadRecords reads EPD-style lines from path, keeping only the "bm"
// (best move) and "am" (avoid move) opcodes - "dm" (direct mate) and any
// other opcode are skipped with a logged notice, since Record has no
// field to carry a mate depth.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, ok := parseEPDLine(line)
		if !ok {
			log.Warningf("testsuite: line %d: not a recognized bm/am EPD record, skipping", lineNo)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	return records, nil
}

func parseEPDLine(line string) (Record, bool) {
	matches := epdLineRe.FindStringSubmatch(line)
	if matches == nil {
		return Record{}, false
	}
	fen := strings.TrimSpace(matches[1])
	opcode := matches[2]
	moves := strings.Fields(strings.NewReplacer("!", "", "?", "").Replace(matches[3]))
	id := matches[5]

	rec := Record{FEN: fen, ID: id}
	switch opcode {
	case "bm":
		rec.BestMoves = moves
	case "am":
		rec.AvoidMoves = moves
	}
	return rec, len(moves) > 0
}

// RunSuite runs every record concurrently, bounded to workers simultaneous
// searches, each searching to depth (if > 0) or moveTime (if > 0) - at
// least one of the two must be set. It returns one Result per record in
// the same order as records, or an error if any worker's search setup
// itself failed (a malformed FEN).
func RunSuite(ctx context.Context, records []Record, depth int, moveTime time.Duration, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	results := make([]Result, len(records))

	g, ctx := errgroup.WithContext(ctx)
	for i, rec := range records {
		i, rec := i, rec
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			r, err := runRecord(rec, depth, moveTime)
			if err != nil {
				return fmt.Errorf("testsuite: record %q: %w", rec.ID, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runRecord(rec Record, depth int, moveTime time.Duration) (Result, error) {
	pos, err := position.NewFromFEN(rec.FEN)
	if err != nil {
		return Result{}, fmt.Errorf("bad FEN %q: %w", rec.FEN, err)
	}

	priorUseBook := config.Settings.Search.UseBook
	config.Settings.Search.UseBook = false
	defer func() { config.Settings.Search.UseBook = priorUseBook }()

	tt := transpositiontable.NewTable(16)
	engine := search.NewEngine(tt)
	limits := search.Limits{Depth: depth, MoveTime: moveTime}
	if moveTime > 0 {
		limits.TimeControl = true
	}

	result := engine.Go(pos, limits, nil)

	gen := movegen.NewGenerator()
	passed := judge(gen, &pos, rec, result.BestMove)

	return Result{
		Record:   rec,
		Actual:   result.BestMove,
		Score:    result.Score,
		Nodes:    result.Nodes,
		Duration: result.Duration,
		Passed:   passed,
	}, nil
}

func judge(gen *movegen.Generator, pos *position.Position, rec Record, actual Move) bool {
	if len(rec.BestMoves) > 0 {
		for _, uci := range rec.BestMoves {
			if gen.MoveFromUCI(pos, uci) == actual {
				return true
			}
		}
		return false
	}
	for _, uci := range rec.AvoidMoves {
		if gen.MoveFromUCI(pos, uci) == actual {
			return false
		}
	}
	return true
}

// RunDirectory loads every ".epd" file in dir and runs all of their
// records together through RunSuite - the batch entry point a CLI flag
// drives to sweep a whole folder of test suites in one pass.
func RunDirectory(ctx context.Context, dir string, depth int, moveTime time.Duration, workers int) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".epd" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fileRecords, err := LoadRecords(path)
		if err != nil {
			log.Warningf("testsuite: skipping %s: %v", path, err)
			continue
		}
		records = append(records, fileRecords...)
	}
	return RunSuite(ctx, records, depth, moveTime, workers)
}

// Summarize reports pass/fail/total counts over results.
func Summarize(results []Result) (passed, failed, total int) {
	for _, r := range results {
		total++
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed, total
}
