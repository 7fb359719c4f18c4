// Contact field validation. Validate is the single source of truth for
// field rules; every store runs it before committing a mutation, so a
// partial or invalid record never persists.
package types

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Report maps a field name to a human-readable reason it failed validation.
type Report map[string]string

// ValidationError carries the complete validation report for a rejected
// candidate. All failing fields are collected; validation never stops at the
// first failure, so callers can render every problem at once.
type ValidationError struct {
	Fields Report
}

// Error lists the failing fields in sorted order.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil for an empty report, otherwise a *ValidationError
// wrapping it.
func (r Report) Err() error {
	if len(r) == 0 {
		return nil
	}
	return &ValidationError{Fields: r}
}

var (
	// emailPattern accepts local@domain.tld with no embedded whitespace and
	// at least one dot after the @.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern accepts NANP-style numbers: optional leading +1, optional
	// separators between the 3-3-4 digit groups, optional parens around the
	// area code.
	phonePattern = regexp.MustCompile(`^(\+1[ .-]?)?\(?\d{3}\)?[ .-]?\d{3}[ .-]?\d{4}$`)
)

// Validate checks every field of the candidate and returns the complete
// report. It is a pure function: no side effects, same report for the same
// candidate. Duplicate-ID detection is a store concern and is not part of
// field validation.
func Validate(c *Contact) Report {
	report := make(Report)

	if strings.TrimSpace(c.ID) == "" {
		report["id"] = "id is required"
	} else if len(c.ID) > MaxIDLength {
		report["id"] = fmt.Sprintf("id must be %d characters or fewer", MaxIDLength)
	}

	if strings.TrimSpace(c.FirstName) == "" {
		report["firstName"] = "first name is required"
	}
	if strings.TrimSpace(c.LastName) == "" {
		report["lastName"] = "last name is required"
	}

	if strings.TrimSpace(c.Email) == "" {
		report["email"] = "email is required"
	} else if !emailPattern.MatchString(c.Email) {
		report["email"] = "email must look like local@domain.tld"
	}

	if strings.TrimSpace(c.Phone) == "" {
		report["phone"] = "phone is required"
	} else if msg := checkPhone(c.Phone); msg != "" {
		report["phone"] = msg
	}

	if len(c.Address) > MaxAddressLength {
		report["address"] = fmt.Sprintf("address must be %d characters or fewer", MaxAddressLength)
	}

	return report
}

// checkPhone strips the accepted separator characters, requires at least 10
// digits to remain, then matches the original string against the NANP
// pattern. Returns an empty string when the phone is acceptable.
func checkPhone(phone string) string {
	stripped := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)

	digits := 0
	for _, r := range stripped {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 10 {
		return "phone must contain at least 10 digits"
	}

	if !phonePattern.MatchString(phone) {
		return "phone must be a valid North American number"
	}
	return ""
}
