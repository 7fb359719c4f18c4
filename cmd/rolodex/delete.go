// Delete command removes a contact by id.
package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact by id",
	Long: `Delete removes the contact with the given id.

Example:
  rolodex delete A1`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.Remove(args[0]); err != nil {
		return err
	}
	cmd.Printf("Deleted contact: %s\n", args[0])
	return nil
}
