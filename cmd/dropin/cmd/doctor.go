package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dropin-dev/dropin/internal/notice"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [deployment-name...]",
	Short: "Diagnose whether deployment targets are writable",
	Long: `Checks each deployment's privileged directory and destination file for
writability and reports the ones an install or remove would likely fail on.
This is purely diagnostic: 'check', 'install', and 'remove' always attempt
their work regardless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		statuses, err := client.Status(cmd.Context(), args...)
		if err != nil {
			return err
		}

		blocked := 0
		for _, s := range statuses {
			if s.Writable {
				detail("ok       %s (%s)", s.Name, s.Dir)
				continue
			}
			blocked++
			info("blocked  %s: %s", s.Name, notice.NewWarning(s.Dir))
		}

		if blocked == 0 {
			info("All deployment targets are writable.")
			return nil
		}
		return fmt.Errorf("%d deployment target(s) not writable", blocked)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
