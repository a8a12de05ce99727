package weathercommand

import (
	"github.com/spf13/cobra"

	promptservice "github.com/redjax/weathercli/internal/services/promptService"
	"github.com/redjax/weathercli/internal/utils/spinner"
	"github.com/redjax/weathercli/internal/utils/terminal"
)

// RunInteractive loads config and runs the menu on the command's stdin and
// stdout. Config errors are returned before anything is printed.
func RunInteractive(cmd *cobra.Command, args []string) error {
	rt, err := NewRuntime(cmd)
	if err != nil {
		return err
	}

	loop := promptservice.New(promptservice.Config{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Querier:   rt.Service,
		Formatter: rt.Formatter,
		Banner:    terminal.Renderer(rt.Styles.Banner),
		Alert:     terminal.Renderer(rt.Styles.Error),
		Spinner:   spinner.StartSpinner,
	})

	return loop.Run(cmd.Context())
}
