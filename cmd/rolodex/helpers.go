// Shared helpers for rolodex CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/rolodex/internal/memory"
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// openStore builds the store selected by --backend/config and returns it
// with a cleanup function. The caller must defer the cleanup.
func openStore() (types.Store, func() error, error) {
	backend := resolveBackend()

	cfg := types.Config{Backend: backend}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("backend %q: %w", backend, err)
	}

	switch backend {
	case types.BackendMemory:
		return memory.NewIndex(), func() error { return nil }, nil
	default:
		dataDir, err := resolveDataDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dataDir

		b := sqlite.NewBackend()
		if err := b.Attach(cfg); err != nil {
			return nil, nil, fmt.Errorf("attach backend: %w", err)
		}
		return b, b.Detach, nil
	}
}

// renderError prints a store error for humans. Validation failures list
// every failing field on its own line.
func renderError(err error) error {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		fmt.Println("Validation failed:")
		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Printf("  %s: %s\n", f, verr.Fields[f])
		}
	}
	return err
}

// printContact prints a single contact, as JSON when --json is set.
func printContact(c *types.Contact) error {
	if flagJSON {
		output, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contact: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("ID:      %s\n", c.ID)
	fmt.Printf("Name:    %s %s\n", c.FirstName, c.LastName)
	fmt.Printf("Phone:   %s\n", c.Phone)
	fmt.Printf("Email:   %s\n", c.Email)
	if c.Address != "" {
		fmt.Printf("Address: %s\n", c.Address)
	}
	return nil
}

// printContactTable prints contacts in a human-readable table format.
func printContactTable(contacts []*types.Contact) {
	if len(contacts) == 0 {
		fmt.Println("No contacts found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL")
	fmt.Fprintln(w, "--\t----\t-----\t-----")
	for _, c := range contacts {
		name := c.FirstName + " " + c.LastName
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, name, c.Phone, c.Email)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d contact(s)\n", len(contacts))
}
