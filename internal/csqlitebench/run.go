package csqlitebench

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nsqlite/csqlite/internal/util/numutil"
	"github.com/nsqlite/csqlite/internal/version"
)

// benchmarkResult stores the outcome of a benchmark.
type benchmarkResult struct {
	Name        string
	Duration    time.Duration
	TotalReads  uint64
	TotalWrites uint64
}

// Run executes benchmarks for two SQLite drivers and prints the results.
func Run(ctx context.Context) error {
	fmt.Println(version.BenchVersion())

	tmpDir, err := os.MkdirTemp("", "csqbench_*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	mattnDb, err := createMattnDriver(tmpDir)
	if err != nil {
		return fmt.Errorf("error opening mattn/go-sqlite3 db: %w", err)
	}
	defer mattnDb.Close()

	csqliteDb, err := createCsqliteDriver(tmpDir)
	if err != nil {
		return fmt.Errorf("error opening csqlite db: %w", err)
	}
	defer csqliteDb.Close()

	fmt.Println("\n--- Benchmarks for mattn/go-sqlite3 ---")
	mattnResults, err := runBenchmark(mattnDb, getMattnConfig())
	if err != nil {
		return fmt.Errorf("error benchmarking mattn/go-sqlite3: %w", err)
	}
	printResults(mattnResults)

	fmt.Println("\n--- Benchmarks for csqlite ---")
	csqliteResults, err := runBenchmark(csqliteDb, getCsqliteConfig())
	if err != nil {
		return fmt.Errorf("error benchmarking csqlite: %w", err)
	}
	printResults(csqliteResults)

	return nil
}

func printResults(results []benchmarkResult) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.AppendHeader(table.Row{"Name", "Reads", "Writes", "Duration"})

	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Name,
			numutil.IntWithCommas(int(r.TotalReads)),
			numutil.IntWithCommas(int(r.TotalWrites)),
			r.Duration,
		})
	}

	fmt.Println(tw.Render())
}

// runBenchmark executes all benchmarks, and returns results.
//
// It recreates the schema before each benchmark.
func runBenchmark(db *sql.DB, cfg benchmarksConfig) ([]benchmarkResult, error) {
	if err := recreateSchema(db); err != nil {
		return nil, err
	}

	benchs := []func(*sql.DB, benchmarksConfig) (benchmarkResult, error){
		runBenchmarkSimple,
		runBenchmarkMany,
		runBenchmarkLarge,
	}

	var results []benchmarkResult

	for _, bench := range benchs {
		if err := recreateSchema(db); err != nil {
			return nil, err
		}

		res, err := bench(db, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}
