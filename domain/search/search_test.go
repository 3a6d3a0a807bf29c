package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Query
	}{
		{
			name:  "Plain terms keep the default limit",
			input: "/find deadline exceeded",
			expected: Query{
				Terms: "deadline exceeded",
				Limit: 10,
			},
		},
		{
			name:  "Session and level flags",
			input: `/find "timeout" --session 7f3a --level error`,
			expected: Query{
				Terms:   "timeout",
				Session: "7f3a",
				Level:   "ERROR",
				Limit:   10,
			},
		},
		{
			name:  "Limit and offset flags",
			input: "/find retry --limit 25 --offset 50",
			expected: Query{
				Terms:  "retry",
				Limit:  25,
				Offset: 50,
			},
		},
		{
			name:  "Bad limit keeps the default",
			input: "/find retry --limit zero",
			expected: Query{
				Terms: "retry",
				Limit: 10,
			},
		},
		{
			name:  "Flags only, no terms",
			input: "/find --session abc",
			expected: Query{
				Session: "abc",
				Limit:   10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got := NewQuery(tt.input)
			tt.expected.RawInput = tt.input
			req.Equal(tt.expected, *got)
		})
	}
}
