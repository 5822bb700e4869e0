/*
 * Corvid - a bitboard chess engine core written in Go
 */

package config

// LogConfig holds logging setup shared by every package that logs.
type LogConfig struct {
	LogPath    string
	LogToFile  bool
	SearchTrace bool
}

func init() {
	Settings.Log.LogPath = "./logs"
	Settings.Log.LogToFile = false
	Settings.Log.SearchTrace = false
}

// LogLevels maps the command line / config file spelling of a log level to
// the numeric level GetLog/GetSearchLog expect.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
