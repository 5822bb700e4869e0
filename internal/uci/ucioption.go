/*
 * Corvid - a bitboard chess engine core written in Go
 */

package uci

import (
	"strconv"

	"github.com/corvidchess/corvid/internal/config"
)

// optionDescriptors returns the "option name ..." lines sent in response
// to "uci", one per tunable the engine exposes through setoption. Each
// line mirrors a field of config.Settings.Search that the rest of the
// engine already reads every time it runs, so flipping one here takes
// effect on the very next "go".
func optionDescriptors() []string {
	return []string{
		optionCheck("OwnBook", config.Settings.Search.UseBook),
		optionSpin("Hash", config.Settings.Search.TTSizeMB, 1, 4096),
		"option name Clear Hash type button",
		optionCheck("Use_Killer", config.Settings.Search.UseKiller),
		optionCheck("Use_History", config.Settings.Search.UseHistory),
		optionCheck("Use_Quiescence", config.Settings.Search.UseQuiescence),
		optionCheck("Use_LMR", config.Settings.Search.UseLMR),
		optionCheck("Use_MDP", config.Settings.Search.UseMDP),
	}
}

func optionCheck(name string, value bool) string {
	return "option name " + name + " type check default " + strconv.FormatBool(value)
}

func optionSpin(name string, value, min, max int) string {
	return "option name " + name + " type spin default " + strconv.Itoa(value) +
		" min " + strconv.Itoa(min) + " max " + strconv.Itoa(max)
}

// applyOption handles one resolved "setoption name ... value ..." pair,
// updating config.Settings.Search (read by every search.Engine.Go call)
// or poking e's own state directly for options that aren't a simple
// config toggle (Hash resize, Clear Hash).
func applyOption(e *Engine, name, value string) {
	switch name {
	case "OwnBook":
		if v, err := strconv.ParseBool(value); err == nil {
			config.Settings.Search.UseBook = v
			if v {
				e.loadBook()
			}
		}
	case "Hash":
		if v, err := strconv.Atoi(value); err == nil {
			config.Settings.Search.TTSizeMB = v
			e.search.ResizeHash(v)
		}
	case "Clear Hash":
		e.search.ClearHash()
	case "Use_Killer":
		if v, err := strconv.ParseBool(value); err == nil {
			config.Settings.Search.UseKiller = v
		}
	case "Use_History":
		if v, err := strconv.ParseBool(value); err == nil {
			config.Settings.Search.UseHistory = v
		}
	case "Use_Quiescence":
		if v, err := strconv.ParseBool(value); err == nil {
			config.Settings.Search.UseQuiescence = v
		}
	case "Use_LMR":
		if v, err := strconv.ParseBool(value); err == nil {
			config.Settings.Search.UseLMR = v
		}
	case "Use_MDP":
		if v, err := strconv.ParseBool(value); err == nil {
			config.Settings.Search.UseMDP = v
		}
	default:
		log.Warningf("uci: unknown option %q", name)
	}
}
