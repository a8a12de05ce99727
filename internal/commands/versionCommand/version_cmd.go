package versioncommand

import (
	"fmt"

	"github.com/redjax/weathercli/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return
			}

			// Print version string
			fmt.Fprintf(cmd.OutOrStdout(), "version:%s commit:%s date:%s\n", version.Version, version.Commit, version.Date)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return cmd
}
