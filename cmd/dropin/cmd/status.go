package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ver "github.com/dropin-dev/dropin/internal/version"
)

var statusCmd = &cobra.Command{
	Use:   "status [deployment-name...]",
	Short: "Show the observed state of all deployments",
	Long: `Shows deployment name, target file, configured version, the version the
settings record claims is installed, and whether the file is actually
present in the privileged directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		statuses, err := client.Status(cmd.Context(), args...)
		if err != nil {
			return err
		}

		if len(statuses) == 0 {
			info("No deployments configured.")
			return nil
		}

		fmt.Printf("%-20s %-24s %-10s %-10s %-8s %s\n", "DEPLOYMENT", "FILE", "VERSION", "RECORDED", "PRESENT", "STATE")
		for _, s := range statuses {
			recorded := s.InstalledVersion
			if recorded == "" {
				recorded = "-"
			}
			fmt.Printf("%-20s %-24s %-10s %-10s %-8v %s\n",
				s.Name, s.File, s.Version, recorded, s.Present, statusWord(s.Present, s.Version, s.InstalledVersion))
		}
		return nil
	},
}

func statusWord(present bool, want, recorded string) string {
	switch {
	case !present:
		return "missing"
	case recorded == "":
		return "unrecorded"
	case ver.Newer(want, recorded):
		return "outdated"
	}
	return "current"
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
