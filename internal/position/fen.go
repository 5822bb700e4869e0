/*
 * Corvid - a bitboard chess engine core written in Go
 */

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// NewFromFEN parses a standard six-field FEN string into a Position. It
// fails loudly (returns a non-nil error, never a half-built Position) on
// any malformed field: an unrecognised piece letter, a rank that doesn't
// sum to exactly eight files, a bad castling letter, an en-passant square
// that isn't a real algebraic square, or fewer than four whitespace-
// separated fields. The half-move clock and full-move number default to
// 0 and 1 respectively when the FEN omits them, matching common
// abbreviated FEN usage in test suites.
func NewFromFEN(fen string) (Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("position: malformed FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	p := Empty()

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return Position{}, fmt.Errorf("position: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	cr, ok := ParseCastlingRights(fields[2])
	if !ok {
		return Position{}, fmt.Errorf("position: malformed FEN %q: bad castling field %q", fen, fields[2])
	}
	p.castlingRights = cr

	if fields[3] == "-" {
		p.enPassantTarget = SqNone
	} else {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return Position{}, fmt.Errorf("position: malformed FEN %q: bad en-passant field %q", fen, fields[3])
		}
		p.enPassantTarget = sq
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("position: malformed FEN %q: bad half-move clock %q", fen, fields[4])
		}
		p.halfMoveClock = n
	}

	p.fullMoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Position{}, fmt.Errorf("position: malformed FEN %q: bad full-move number %q", fen, fields[5])
		}
		p.fullMoveNumber = n
	}

	p.RecomputeOccupancy()
	p.RebuildZobristKey()
	return p, nil
}

// parsePlacement decodes FEN's first field (piece placement, ranks 8
// down to 1 separated by "/") onto p.
func parsePlacement(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: malformed FEN placement %q: expected 8 ranks, got %d", field, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			piece, ok := PieceFromChar(byte(c))
			if !ok {
				return fmt.Errorf("position: malformed FEN placement %q: bad piece letter %q", field, c)
			}
			if !f.IsValid() {
				return fmt.Errorf("position: malformed FEN placement %q: rank %d overflows 8 files", field, r+1)
			}
			p.SetPieceAt(piece, SquareOf(f, r))
			f++
		}
		if f != FileNone {
			return fmt.Errorf("position: malformed FEN placement %q: rank %d has %d files, want 8", field, r+1, int(f))
		}
	}
	return nil
}

// Fen renders p back into standard FEN notation. Fen(New(s)) == s for any
// well-formed, fully-specified s (the FEN round-trip law).
func (p *Position) Fen() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.PieceAt(SquareOf(f, r))
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(piece.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantTarget.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullMoveNumber))
	return b.String()
}

// String is an alias for Fen, so a Position prints usefully with %v/%s.
func (p *Position) String() string {
	return p.Fen()
}
