package checker

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadInputs returns the non-blank lines of r with line endings removed.
// Surrounding spaces are kept; whether they matter is the skip set's call.
func ReadInputs(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return out, nil
}

// Summary counts results by outcome.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Run applies fn to every input in order and returns the results with a summary.
func Run(inputs []string, fn func(string) Result) ([]Result, Summary) {
	results := make([]Result, 0, len(inputs))
	var sum Summary
	for _, in := range inputs {
		r := fn(in)
		results = append(results, r)
		sum.Total++
		if r.Valid {
			sum.Passed++
		} else {
			sum.Failed++
		}
	}

	return results, sum
}
