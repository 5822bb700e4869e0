/*
 * Corvid - a bitboard chess engine core written in Go
 */

package movegen

import (
	"regexp"
	"strings"

	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var uciMoveRe = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// MoveFromUCI generates every legal move in pos and returns the one whose
// UCI string matches uciMove, or MoveNone if no legal move matches (an
// illegal or malformed move string). Used to resolve the long-algebraic
// moves found in opening book lines and test-suite records against a
// concrete position - the move encoding itself carries no information
// about the moving piece or move kind, so reconstructing a Move from a
// bare "e2e4" string requires generating and matching, not decoding.
func (g *Generator) MoveFromUCI(pos *position.Position, uciMove string) Move {
	matches := uciMoveRe.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}
	squares := matches[1]
	promo := strings.ToLower(matches[2])

	legal := moveslice.NewMoveList()
	g.GenerateLegalMoves(pos, legal)
	var found Move
	legal.ForEach(func(_ int, m Move) {
		if found != MoveNone {
			return
		}
		if m.From().String()+m.To().String() != squares {
			return
		}
		if m.Type().IsPromotion() && strings.ToLower(m.PromotionType().Char()) != promo {
			return
		}
		found = m
	})
	return found
}
