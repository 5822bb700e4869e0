/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package openingbook loads a small line-oriented opening repertoire and
// answers "what has been played from this position before" by Zobrist
// key. Each line in the source file is a starting FEN followed by a
// semicolon-separated list of UCI moves for one recorded game; the
// loader replays every line move by move and indexes each prefix
// position reached along the way, so a later Probe of any position on a
// known line - not just the final one - returns a recorded reply.
package openingbook

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/op/go-logging"

	corvidlogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger

func init() {
	log = corvidlogging.GetLog()
}

// Book maps a Zobrist key to every move recorded from that position.
type Book struct {
	lines map[Key][]Move
}

// Load reads the book file at path and builds a Book from it. A line
// that fails to parse (bad FEN, unresolvable move) is skipped with a
// logged warning rather than aborting the whole load - one bad line in a
// large hand-curated repertoire file shouldn't sink the rest of it.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("openingbook: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse builds a Book by reading the line-oriented format from r.
func Parse(r io.Reader) (*Book, error) {
	b := &Book{lines: make(map[Key][]Move)}
	gen := movegen.NewGenerator()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		fen := strings.TrimSpace(fields[0])
		moveStrs := fields[1:]

		pos, err := position.NewFromFEN(fen)
		if err != nil {
			log.Warningf("openingbook: line %d: bad FEN %q: %v", lineNo, fen, err)
			continue
		}

		for _, ms := range moveStrs {
			ms = strings.TrimSpace(ms)
			if ms == "" {
				continue
			}
			m := gen.MoveFromUCI(&pos, ms)
			if m == MoveNone {
				log.Warningf("openingbook: line %d: move %q illegal in position", lineNo, ms)
				break
			}
			key := pos.ZobristKey()
			b.lines[key] = appendUnique(b.lines[key], m)
			pos.DoMove(m)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("openingbook: %w", err)
	}
	return b, nil
}

func appendUnique(moves []Move, m Move) []Move {
	for _, existing := range moves {
		if existing == m {
			return moves
		}
	}
	return append(moves, m)
}

// Probe returns a uniformly-chosen recorded move for key, or (MoveNone,
// false) on a miss.
func (b *Book) Probe(key Key) (Move, bool) {
	moves, ok := b.lines[key]
	if !ok || len(moves) == 0 {
		return MoveNone, false
	}
	return moves[rand.Intn(len(moves))], true
}

// Len returns the number of distinct positions indexed by the book.
func (b *Book) Len() int {
	return len(b.lines)
}
