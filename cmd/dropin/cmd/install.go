package cmd

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [deployment-name...]",
	Short: "Deploy files unconditionally, as on host activation",
	Long: `Copies each deployment's source file into its privileged directory,
overwriting any existing copy, and records the installed version. Unlike
'check' this does not skip current deployments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		results, err := client.Install(cmd.Context(), args...)
		if err != nil {
			return err
		}

		return reportResults("installed", results)
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
