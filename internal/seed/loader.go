// Package seed bulk-loads contacts from a line-oriented text source: one
// contact per line, six comma-separated fields (id, first name, last name,
// phone, email, address). Records that are malformed, fail validation, or
// collide with an existing ID are skipped without aborting the batch.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// fieldCount is the number of comma-separated fields per line.
const fieldCount = 6

// Summary reports the outcome of a bulk load.
type Summary struct {
	Loaded  int      // records added to the store
	Skipped int      // records discarded
	Reasons []string // one human-readable reason per skipped record
}

// Load reads contacts from r and adds each valid record to the store.
// Blank lines are ignored. The address field keeps any trailing commas, so
// street addresses with embedded commas survive intact.
func Load(store types.Store, r io.Reader) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, err := parseLine(line)
		if err != nil {
			summary.skip(lineNo, err)
			continue
		}

		if _, err := store.Add(c); err != nil {
			summary.skip(lineNo, err)
			continue
		}
		summary.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("reading seed source: %w", err)
	}
	return summary, nil
}

// parseLine splits a line into the six contact fields.
func parseLine(line string) (*types.Contact, error) {
	fields := strings.SplitN(line, ",", fieldCount)
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return &types.Contact{
		ID:        fields[0],
		FirstName: fields[1],
		LastName:  fields[2],
		Phone:     fields[3],
		Email:     fields[4],
		Address:   fields[5],
	}, nil
}

func (s *Summary) skip(lineNo int, err error) {
	s.Skipped++
	s.Reasons = append(s.Reasons, fmt.Sprintf("line %d: %v", lineNo, err))
}
