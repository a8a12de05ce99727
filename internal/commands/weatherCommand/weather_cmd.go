package weathercommand

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	weatherservice "github.com/redjax/weathercli/internal/services/weatherService"
	"github.com/redjax/weathercli/internal/utils/spinner"
)

// NewQueryCommands returns the one-shot query commands: current, forecast
// and pollution.
func NewQueryCommands() []*cobra.Command {
	return []*cobra.Command{
		NewCurrentCommand(),
		NewForecastCommand(),
		NewPollutionCommand(),
	}
}

// runQuery handles the parts every one-shot command shares: city argument,
// runtime, Ctrl-C and the spinner.
func runQuery(cmd *cobra.Command, location string, args []string, what string, fn func(ctx context.Context, rt *Runtime, city string) error) error {
	city, err := cityArg(location, args)
	if err != nil {
		return err
	}

	rt, err := NewRuntime(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	stopSpinner := spinner.StartSpinner(fmt.Sprintf("Fetching %s for %s...", what, city))
	err = fn(ctx, rt, city)
	stopSpinner()

	if err != nil {
		return fmt.Errorf("%q: %w", city, err)
	}

	return nil
}

func NewCurrentCommand() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "current [city]",
		Short: "Show the current weather for a city",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, location, args, "current weather", func(ctx context.Context, rt *Runtime, city string) error {
				reading, err := rt.Service.CurrentWeather(ctx, city)
				if err != nil {
					return err
				}

				printLines(cmd.OutOrStdout(), rt.Formatter.Current(reading))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "City to get the weather for")

	return cmd
}

func NewForecastCommand() *cobra.Command {
	var location string
	var asTable bool

	cmd := &cobra.Command{
		Use:   "forecast [city]",
		Short: "Show the next forecast slots (3-hour steps) for a city",
		Long: `Show the first 5 slots of the 5-day / 3-hour forecast for a city.

Slots are printed in the order the provider returns them. Use --table to
print them as a single table instead of one block per slot.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, location, args, "weather forecast", func(ctx context.Context, rt *Runtime, city string) error {
				entries, err := rt.Service.Forecast(ctx, city)
				if err != nil {
					return err
				}

				if asTable {
					weatherservice.RenderForecastTable(cmd.OutOrStdout(), city, entries)
					return nil
				}

				printLines(cmd.OutOrStdout(), rt.Formatter.Forecast(city, entries))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "City to get the forecast for")
	cmd.Flags().BoolVar(&asTable, "table", false, "Print the forecast as a table")

	return cmd
}

func NewPollutionCommand() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:     "pollution [city]",
		Aliases: []string{"air"},
		Short:   "Show the current air pollution for a city",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, location, args, "air pollution", func(ctx context.Context, rt *Runtime, city string) error {
				reading, err := rt.Service.AirPollution(ctx, city)
				if err != nil {
					return err
				}

				printLines(cmd.OutOrStdout(), rt.Formatter.AirPollution(city, reading))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "City to get air pollution for")

	return cmd
}
