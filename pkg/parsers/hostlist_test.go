package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHostList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Plain List",
			input:    "www.example.com\napi.example.com\n",
			expected: []string{"www.example.com", "api.example.com"},
		},
		{
			name:     "Blank And Whitespace Lines Dropped",
			input:    "www.example.com\n\n   \n\tapi.example.com  \n\n",
			expected: []string{"www.example.com", "api.example.com"},
		},
		{
			name:     "Intra Batch Duplicates Collapse",
			input:    "a.example.com\nb.example.com\na.example.com\n",
			expected: []string{"a.example.com", "b.example.com"},
		},
		{
			name:     "Case Folded Before Dedup",
			input:    "WWW.Example.COM\nwww.example.com\n",
			expected: []string{"www.example.com"},
		},
		{
			name:     "Comment Lines Dropped",
			input:    "# discovered 2026-08-20\nwww.example.com\n",
			expected: []string{"www.example.com"},
		},
		{
			name:     "Empty Input",
			input:    "",
			expected: nil,
		},
		{
			name:     "No Trailing Newline",
			input:    "solo.example.com",
			expected: []string{"solo.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := ParseHostList(strings.NewReader(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}
