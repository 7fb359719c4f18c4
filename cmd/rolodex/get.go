// Get command retrieves a single contact by id.
package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a contact by id",
	Long: `Get looks up a single contact by its exact id.

Example:
  rolodex get A1
  rolodex get A1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	contact, err := store.Get(args[0])
	if err != nil {
		return err
	}
	return printContact(contact)
}
