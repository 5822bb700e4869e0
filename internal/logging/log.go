/*
 * Corvid - a bitboard chess engine core written in Go
 */

// Package logging is a small helper around "github.com/op/go-logging" so
// that every package that needs a logger gets one pre-configured the same
// way, instead of repeating backend/formatter setup.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard engine logger, configured with the current
// config.LogLevel. Safe to call repeatedly - each call just re-applies the
// current level, matching the teacher's "reset after config read" pattern.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the search-trace logger, independently levelled via
// config.SearchLogLevel so it can be silenced without losing engine logs.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetUciLog returns the UCI protocol logger. When config.Settings.Log.LogToFile
// is set it tees to a file under config.Settings.Log.LogPath in addition to
// stdout.
func GetUciLog() *logging.Logger {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.DEBUG, "")

	if !config.Settings.Log.LogToFile {
		uciLog.SetBackend(leveled)
		return uciLog
	}

	path := filepath.Join(config.Settings.Log.LogPath, "corvid_uci.log")
	var err error
	uciLogFile, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("logging: could not open uci log file, stdout only:", err)
		uciLog.SetBackend(leveled)
		return uciLog
	}
	fileBackend := logging.NewLogBackend(uciLogFile, "", log.Lmsgprefix)
	fileFormatted := logging.NewBackendFormatter(fileBackend, format)
	fileLeveled := logging.AddModuleLevel(fileFormatted)
	fileLeveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(leveled, fileLeveled))
	return uciLog
}
