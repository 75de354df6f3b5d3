// Package parsers turns raw external inputs into clean domain values.
package parsers

import (
	"bufio"
	"io"
	"strings"
)

// ParseHostList reads a line-oriented hostname list and returns the cleaned
// names in input order. Lines are trimmed and lowercased, blanks and
// comment lines are dropped, and repeats within the batch collapse to the
// first occurrence.
func ParseHostList(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
