package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters for an entry search.
// It decouples the raw console input from the index engine requirements.
type Query struct {
	RawInput string // The original line typed by the operator
	Terms    string // The actual text to search in the index
	Session  string // Target session, empty means all
	Level    string // Severity filter, empty means all
	Limit    int    // Pagination: number of results
	Offset   int    // Pagination: first result
}

// NewQuery parses a raw line to extract command-line style arguments.
// Example: /find "deadline exceeded" --session 7f3a --level ERROR --limit 20
func NewQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    10, // Default limit
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --session 7f3a or --limit 20
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "session":
				query.Session = val
			case "level":
				query.Level = strings.ToUpper(val)
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			case "offset":
				if n, err := strconv.Atoi(val); err == nil && n >= 0 {
					query.Offset = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		// If it's not a flag, it's a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, strings.Trim(part, `"`))
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
