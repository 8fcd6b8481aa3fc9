package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [deployment-name...]",
	Short: "Reconcile deployments, installing where missing or outdated",
	Long: `Compares each deployment against the privileged directory and the
recorded installed version, and copies the file into place only when it is
missing or outdated. Safe to run on every trigger; does nothing when
everything is current.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		results, err := client.Check(cmd.Context(), args...)
		if err != nil {
			return err
		}

		return reportResults("installed", results)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
