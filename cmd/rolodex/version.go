// Version command for the rolodex CLI.
package main

import (
	"github.com/spf13/cobra"
)

// Version is the CLI version reported by --version and the version command.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("rolodex v%s\n", Version)
	},
}
