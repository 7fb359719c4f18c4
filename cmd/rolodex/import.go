// Import command bulk-loads contacts from a line-oriented text file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/seed"
)

var importVerbose bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-load contacts from a text file",
	Long: `Import reads one contact per line: six comma-separated fields
(id, first name, last name, phone, email, address). Records that are
malformed, fail validation, or collide with an existing id are skipped;
the rest of the batch still loads.

Example:
  rolodex import contacts.txt
  rolodex import contacts.txt --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importVerbose, "verbose", false, "print a reason for every skipped record")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := seed.Load(store, f)
	if err != nil {
		return err
	}

	cmd.Printf("Imported %d contact(s), skipped %d\n", summary.Loaded, summary.Skipped)
	if importVerbose {
		for _, reason := range summary.Reasons {
			cmd.Printf("  skipped %s\n", reason)
		}
	}
	return nil
}
