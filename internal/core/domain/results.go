package domain

// SearchResults represents the final output format for the JSON report
type SearchResults struct {
	Query           string   `json:"query"`
	Filename        string   `json:"filename"`
	IsCaseSensitive bool     `json:"isCaseSensitive"`
	MatchCount      int      `json:"matchCount"`
	Matches         []string `json:"matches"`
}
