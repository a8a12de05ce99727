// The root command for the CLI.
// Running it without a subcommand starts the interactive menu. The root also
// provides global config flags like --debug and --api-key.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redjax/weathercli/internal/commands/showCommand"
	versioncommand "github.com/redjax/weathercli/internal/commands/versionCommand"
	weathercommand "github.com/redjax/weathercli/internal/commands/weatherCommand"
	"github.com/redjax/weathercli/internal/config"
	"github.com/redjax/weathercli/internal/version"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "weathercli",
	// A short description of what the command does
	Short: "Current weather, forecasts and air pollution from OpenWeatherMap",
	// A longer description for the command
	Long: `Look up the current weather, a short forecast, or air pollution for a city.

Run without a subcommand for an interactive menu, or use one of the
subcommands (current, forecast, pollution) for a single lookup.

The OpenWeatherMap API key is read from $API, a .env file in the working
directory, $WEATHERCLI_API_KEY, a --config file, or --api-key.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          weathercommand.RunInteractive,
}

// Execute the root Cobra command
func Execute() {
	err := rootCmd.Execute()

	if errors.Is(err, config.ErrMissingAPIKey) {
		fmt.Fprintln(os.Stderr, "API key not found. Please check your .env file.")
		os.Exit(1)
	}

	cobra.CheckErr(err)
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON, YAML, TOML or .env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	config.RegisterFlags(rootCmd.PersistentFlags())

	// Add other CLI subcommands
	rootCmd.AddCommand(weathercommand.NewQueryCommands()...)
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(version.NewSelfCommand())
	rootCmd.AddCommand(versioncommand.NewVersionCommand())
}
