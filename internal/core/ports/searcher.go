package ports

// Searcher defines the interface for search functionality
type Searcher interface {
	// Search scans contents line by line and returns the lines containing
	// the query, in their original order. Returned lines are substrings of
	// contents.
	Search(contents string) []string
}
