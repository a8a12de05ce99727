package showCommand

import (
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show commands print information in the selected domain, i.e. show config.",
		Long: `Print configuration/debug data.

Run weathercli show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewConfigCmd())

	return showCmd
}
