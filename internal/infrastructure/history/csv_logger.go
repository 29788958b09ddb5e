// Package history persists every evaluated table cell to CSV, one row per
// (rule, counting model, opening hand, house card, action, EV) tuple —
// the same append-only audit trail shape the teacher kept for game events,
// repurposed here for table-sweep output instead of in-progress rounds.
package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"blackjackodds/internal/domain/odds"
)

// CSVLogger implements odds.RunLogger by appending one row per action per
// evaluated cell to a CSV file.
type CSVLogger struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex

	counting string
}

// NewCSVLogger opens (or creates) the CSV file at path in append mode,
// writing the header only if the file is currently empty. counting names
// the counting model in use (e.g. "total", "null", "partial-ajhl"); it's
// recorded on every row since a HistoryLogger outlives any one sweep.
func NewCSVLogger(path, counting string) (*CSVLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("history: open log file: %w", err)
	}

	writer := csv.NewWriter(file)

	stat, err := file.Stat()
	if err == nil && stat.Size() == 0 {
		header := []string{"Timestamp", "RunID", "Rule", "CountingModel", "PlayerCard0", "PlayerCard1", "HouseCard", "Action", "ExpectedValue"}
		if err := writer.Write(header); err != nil {
			closeErr := file.Close()
			if closeErr != nil {
				return nil, fmt.Errorf("history: write header: %v; additionally failed to close file: %w", err, closeErr)
			}
			return nil, fmt.Errorf("history: write header: %w", err)
		}
		writer.Flush()
	}

	return &CSVLogger{file: file, writer: writer, counting: counting}, nil
}

// LogCell implements odds.RunLogger, appending one CSV row per evaluated
// action in results.
func (l *CSVLogger) LogCell(runID uuid.UUID, ruleName string, pc0, hc int, pc1 *int, results []odds.ActionValueSummary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format(time.RFC3339)
	pc1Label := ""
	if pc1 != nil {
		pc1Label = strconv.Itoa(*pc1)
	}

	for _, r := range results {
		record := []string{
			timestamp,
			runID.String(),
			ruleName,
			l.counting,
			strconv.Itoa(pc0),
			pc1Label,
			strconv.Itoa(hc),
			string(r.Action),
			strconv.FormatFloat(r.Value, 'f', -1, 64),
		}
		if err := l.writer.Write(record); err != nil {
			fmt.Fprintf(os.Stderr, "history: error writing row: %v\n", err)
		}
	}
	l.writer.Flush()
}

// Close flushes and closes the underlying file.
func (l *CSVLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Flush()
	if err := l.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "history: error closing log file: %v\n", err)
	}
}
