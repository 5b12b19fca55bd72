package ports

// ResultWriter defines the interface for writing search results
type ResultWriter interface {
	// WriteLine writes a single matching line
	WriteLine(line string) error

	// Count returns the number of lines written so far
	Count() int

	// Close finalizes and closes the writer
	Close() error
}
