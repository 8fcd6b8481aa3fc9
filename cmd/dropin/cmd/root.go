package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath   string
	settingsPath string
	debug        bool
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "dropin",
	Short: "Versioned deployment of drop-in files into privileged directories",
	Long: `dropin keeps single files deployed into privileged, host-owned
directories at known versions. It copies a file into place only when the
installed copy is missing or outdated, records the installed version in a
settings file so repeated checks are cheap, and removes both the file and
the record on teardown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dropin %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "dropin.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to settings file (default from config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every reconciler decision")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
