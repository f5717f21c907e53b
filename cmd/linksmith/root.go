// Root command for the linksmith CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-robotics/linksmith/internal/paths"
	"github.com/mesh-robotics/linksmith/pkg/linksmith"
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
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "linksmith",
	Short:   "Linksmith edits joint constraints on robot model links",
	Version: linksmith.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage links in the scene store",
}

var jointCmd = &cobra.Command{
	Use:   "joint",
	Short: "Classify and synthesize joint constraints",
}

var motorCmd = &cobra.Command{
	Use:   "motor",
	Short: "Attach motor records to links",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.linksmith-scene)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(jointCmd)
	rootCmd.AddCommand(motorCmd)

	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkGetCmd)
	linkCmd.AddCommand(linkDeleteCmd)

	jointCmd.AddCommand(jointApplyCmd)
	jointCmd.AddCommand(jointShowCmd)
	jointCmd.AddCommand(jointCheckCmd)

	motorCmd.AddCommand(motorAttachCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > LINKSMITH_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > LINKSMITH_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
