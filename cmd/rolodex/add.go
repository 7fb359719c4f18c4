// Add command creates a new contact.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var (
	addID        string
	addFirstName string
	addLastName  string
	addPhone     string
	addEmail     string
	addAddress   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new contact",
	Long: `Add creates a new contact after validating every field.

The id is the unique sort key (10 characters or fewer) and cannot be
changed later.

Example:
  rolodex add --id A1 --first Jo --last Li --phone 555-123-4567 --email jo@x.com
  rolodex add --id B2 --first Ann --last Wu --phone "+1 555-222-3333" --email ann@y.org --address "2 Oak Ave" --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "unique contact id (required)")
	addCmd.Flags().StringVar(&addFirstName, "first", "", "first name (required)")
	addCmd.Flags().StringVar(&addLastName, "last", "", "last name (required)")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "phone number (required)")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address (required)")
	addCmd.Flags().StringVar(&addAddress, "address", "", "street address (optional)")
	_ = addCmd.MarkFlagRequired("id")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	stored, err := store.Add(&types.Contact{
		ID:        addID,
		FirstName: addFirstName,
		LastName:  addLastName,
		Phone:     addPhone,
		Email:     addEmail,
		Address:   addAddress,
	})
	if err != nil {
		return renderError(err)
	}

	if flagJSON {
		return printContact(stored)
	}
	cmd.Printf("Created contact: %s\n", stored.ID)
	return nil
}
