package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// RoundLog appends finished rounds to a CSV file. A nil *RoundLog discards
// everything, so callers need no checks when logging is disabled.
type RoundLog struct {
	path          string
	file          *os.File
	headerWritten bool
}

// OpenRoundLog creates the CSV file at path, truncating an existing one.
// Returns nil if path is empty (log disabled).
func OpenRoundLog(path string) (*RoundLog, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating round log directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating round log: %w", err)
	}
	return &RoundLog{path: path, file: f}, nil
}

// Path returns the file being written, or "" when disabled.
func (l *RoundLog) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Write appends one round. The header row is written with the first record.
func (l *RoundLog) Write(r RoundRecord) error {
	if l == nil {
		return nil
	}

	records := []RoundRecord{r}
	if !l.headerWritten {
		if err := gocsv.Marshal(records, l.file); err != nil {
			return fmt.Errorf("writing round log: %w", err)
		}
		l.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, l.file); err != nil {
		return fmt.Errorf("writing round log: %w", err)
	}
	return nil
}

// Close flushes and closes the file.
func (l *RoundLog) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
