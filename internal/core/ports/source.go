package ports

// ContentSource defines the interface for loading the text to be searched
type ContentSource interface {
	// ReadAll reads the named file fully into memory and returns its
	// contents as a string.
	ReadAll(name string) (string, error)
}
