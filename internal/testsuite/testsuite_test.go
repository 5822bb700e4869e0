/*
 * Corvid - a bitboard chess engine core written in Go
 */

package testsuite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEPD = `
# mate-in-one position, best move is the queen taking on h8
7k/6Q1/8/8/8/8/8/7K w - - bm g7h8; id "mate-in-one";
rnb1kbnr/pppp1ppp/8/4p3/3q4/2N5/PPPPPPPP/R1BQKBNR w KQkq - am d1d4; id "dont-hang-queen";
`

func writeEPD(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.epd")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseEPDLineBestMove(t *testing.T) {
	rec, ok := parseEPDLine(`7k/6Q1/8/8/8/8/8/7K w - - bm g7g8; id "mate-in-one";`)
	require.True(t, ok)
	assert.Equal(t, "7k/6Q1/8/8/8/8/8/7K w - -", rec.FEN)
	assert.Equal(t, []string{"g7g8"}, rec.BestMoves)
	assert.Equal(t, "mate-in-one", rec.ID)
}

func TestParseEPDLineAvoidMove(t *testing.T) {
	rec, ok := parseEPDLine(`rnb1kbnr/pppp1ppp/8/4p3/3q4/2N5/PPPPPPPP/R1BQKBNR w KQkq - am d1d4; id "dont-hang-queen";`)
	require.True(t, ok)
	assert.Equal(t, []string{"d1d4"}, rec.AvoidMoves)
}

func TestLoadRecordsSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeEPD(t, sampleEPD)
	records, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRunSuitePassesBestMoveRecord(t *testing.T) {
	path := writeEPD(t, sampleEPD)
	records, err := LoadRecords(path)
	require.NoError(t, err)

	results, err := RunSuite(context.Background(), records, 3, 0, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	passed, failed, total := Summarize(results)
	assert.Equal(t, 2, total)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 2, passed)
}

func TestRunSuiteRespectsWorkerLimit(t *testing.T) {
	path := writeEPD(t, sampleEPD)
	records, err := LoadRecords(path)
	require.NoError(t, err)

	results, err := RunSuite(context.Background(), records, 2, 0, 1)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRunDirectoryAggregatesAllEpdFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.epd"), []byte(sampleEPD), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	results, err := RunDirectory(context.Background(), dir, 2, 0, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRunSuiteRespectsMoveTimeLimit(t *testing.T) {
	path := writeEPD(t, sampleEPD)
	records, err := LoadRecords(path)
	require.NoError(t, err)

	start := time.Now()
	_, err = RunSuite(context.Background(), records, 0, 200*time.Millisecond, 2)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
