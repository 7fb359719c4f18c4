// Update command applies a partial update to an existing contact.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var (
	updateFirstName string
	updateLastName  string
	updatePhone     string
	updateEmail     string
	updateAddress   string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing contact",
	Long: `Update overwrites only the fields whose flags are supplied; the rest of
the record is kept. The merged record is validated as a whole before it is
committed, so an update that would leave any field invalid is rejected and
the prior record stays unchanged. The id itself cannot be changed.

Example:
  rolodex update A1 --phone 555-987-6543
  rolodex update A1 --email jo@new.org --address ""`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateFirstName, "first", "", "first name")
	updateCmd.Flags().StringVar(&updateLastName, "last", "", "last name")
	updateCmd.Flags().StringVar(&updatePhone, "phone", "", "phone number")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "email address")
	updateCmd.Flags().StringVar(&updateAddress, "address", "", "street address")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	// Only flags the user actually set become part of the patch, so an
	// unset flag never clobbers a stored field with "".
	var patch types.Patch
	if cmd.Flags().Changed("first") {
		patch.FirstName = &updateFirstName
	}
	if cmd.Flags().Changed("last") {
		patch.LastName = &updateLastName
	}
	if cmd.Flags().Changed("phone") {
		patch.Phone = &updatePhone
	}
	if cmd.Flags().Changed("email") {
		patch.Email = &updateEmail
	}
	if cmd.Flags().Changed("address") {
		patch.Address = &updateAddress
	}

	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	updated, err := store.Update(args[0], patch)
	if err != nil {
		return renderError(err)
	}

	if flagJSON {
		return printContact(updated)
	}
	cmd.Printf("Updated contact: %s\n", updated.ID)
	return nil
}
