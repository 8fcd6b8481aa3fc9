package cmd

import (
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [deployment-name...]",
	Short: "Tear deployments down, as on host deactivation",
	Long: `Deletes each deployment's file from its privileged directory and clears
the recorded installed version. A missing file is a successful no-op. For
deployments with strict_teardown, a failed removal aborts with an error;
otherwise failures are reported and the exit code reflects them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		results, err := client.Remove(cmd.Context(), args...)
		reportErr := reportResults("removed", results)
		if err != nil {
			// Strict teardown escalation outranks the summary error.
			return err
		}
		return reportErr
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
