// List command enumerates all contacts in ascending id order.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Long: `List prints every contact ordered ascending by id.

Example:
  rolodex list
  rolodex list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	contacts, err := store.List()
	if err != nil {
		return err
	}

	if flagJSON {
		output, err := json.MarshalIndent(contacts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contacts: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printContactTable(contacts)
	return nil
}
