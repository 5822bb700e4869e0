/*
 * Corvid - a bitboard chess engine core written in Go
 */

package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/testsuite"
	"github.com/corvidchess/corvid/internal/uci"
)

const engineVersion = "1.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	bookFile := flag.String("bookfile", "", "path to an opening book file\nprovide to enable the opening book")
	testSuite := flag.String("testsuite", "", "path to an EPD file or a folder of EPD files to run as a test suite")
	testMoveTime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testDepth := flag.Int("testdepth", 0, "search depth limit for each test position, 0 to use testtime instead")
	testWorkers := flag.Int("testworkers", runtime.NumCPU(), "number of test positions to search concurrently")
	perft := flag.Int("perft", 0, "runs perft on the position given by -fen up to the given depth and exits")
	fen := flag.String("fen", position.StartFen, "fen to use for -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) for the duration of the run")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *bookFile != "" {
		config.Settings.Search.UseBook = true
		config.Settings.Search.BookPath = *bookFile
	}

	// Packages grab a logger at init() time, before flags are parsed, so the
	// level they started with is whatever the config file/defaults said.
	// Re-fetching here applies the flag-resolved level.
	logging.GetLog()

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	if *testSuite != "" {
		runTestSuite(*testSuite, *testDepth, time.Duration(*testMoveTime)*time.Millisecond, *testWorkers)
		return
	}

	u := uci.NewEngine(os.Stdin, os.Stdout)
	u.Run()
}

func runPerft(fen string, maxDepth int) {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid fen %q: %v\n", fen, err)
		return
	}
	for d := 1; d <= maxDepth; d++ {
		result := movegen.Perft(&pos, d)
		out.Printf("perft %d: nodes=%d captures=%d enpassant=%d castles=%d promotions=%d checks=%d time=%s nps=%d\n",
			d, result.Nodes, result.Captures, result.EnPassant, result.Castles, result.Promotions,
			result.Checks, result.Duration, result.Nps())
	}
}

func runTestSuite(path string, depth int, moveTime time.Duration, workers int) {
	fi, err := os.Stat(path)
	if err != nil {
		out.Println(err)
		return
	}

	var results []testsuite.Result
	if fi.IsDir() {
		results, err = testsuite.RunDirectory(context.Background(), path, depth, moveTime, workers)
	} else {
		var records []testsuite.Record
		records, err = testsuite.LoadRecords(path)
		if err == nil {
			results, err = testsuite.RunSuite(context.Background(), records, depth, moveTime, workers)
		}
	}
	if err != nil {
		out.Println(err)
		return
	}

	for _, r := range results {
		status := "FAIL"
		if r.Passed {
			status = "PASS"
		}
		out.Printf("%-4s %-20s best=%s score=%d nodes=%d time=%s\n",
			status, r.Record.ID, r.Actual.UCI(), r.Score, r.Nodes, r.Duration)
	}
	passed, failed, total := testsuite.Summarize(results)
	out.Printf("\n%d/%d passed, %d failed\n", passed, total, failed)
}

func printVersionInfo() {
	out.Printf("Corvid %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
