/*
 * Corvid - a bitboard chess engine core written in Go
 */

package config

// EvalConfig holds the evaluation toggles (C8). Values beyond these
// structural switches (the actual piece-square tables) are not
// configuration - they are frozen tuning data compiled into the
// evaluator package, per spec: the contract mandates structure, not
// specific table values.
type EvalConfig struct {
	UseEndgameKingHalving bool
	Tempo                 int16
}

func init() {
	Settings.Eval.UseEndgameKingHalving = true
	Settings.Eval.Tempo = 10
}
