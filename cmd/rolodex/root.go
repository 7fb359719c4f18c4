// Root command for the rolodex CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
)

// Config values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configBackend    string
	configDataDir    string
	configListenAddr string
)

var rootCmd = &cobra.Command{
	Use:     "rolodex",
	Short:   "Rolodex is a contact book with an ordered index",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configListenAddr = cfg.GetString(cfgKeyListenAddr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.rolodex-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: memory or sqlite (default: sqlite)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ROLODEX_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > ROLODEX_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveBackend returns the backend name, flag winning over config.
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	if configBackend != "" {
		return configBackend
	}
	return defaultBackend
}
