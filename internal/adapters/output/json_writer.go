package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/WhimsicallyDandy/minigrep/internal/core/domain"
	"github.com/WhimsicallyDandy/minigrep/internal/core/ports"
)

// JSONWriter implements ports.ResultWriter for writing a search report to a
// JSON file. Matches accumulate in memory and the whole report is encoded as
// one indented document on Close.
type JSONWriter struct {
	file    *os.File
	results domain.SearchResults
}

// NewJSONWriter creates a new JSONWriter writing to filename
func NewJSONWriter(filename, query, searchedFile string, caseSensitive bool) (ports.ResultWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &JSONWriter{
		file: file,
		results: domain.SearchResults{
			Query:           query,
			Filename:        searchedFile,
			IsCaseSensitive: caseSensitive,
			Matches:         []string{},
		},
	}, nil
}

// WriteLine records a matching line in the report
func (w *JSONWriter) WriteLine(line string) error {
	w.results.Matches = append(w.results.Matches, line)
	return nil
}

// Count returns the number of matches recorded so far
func (w *JSONWriter) Count() int {
	return len(w.results.Matches)
}

// Close encodes the report and closes the file
func (w *JSONWriter) Close() error {
	w.results.MatchCount = len(w.results.Matches)

	encoder := json.NewEncoder(w.file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(w.results); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to encode results: %w", err)
	}

	return w.file.Close()
}
