package showCommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redjax/weathercli/internal/config"
)

func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration (API key redacted)",
		Long: `Show the configuration weathercli would run with after merging the
config file, .env, environment variables and flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API Key:  %s\n", config.RedactKey(cfg.API.Key))
			fmt.Fprintf(out, "Base URL: %s\n", cfg.API.BaseURL)
			if cfg.HTTP.Timeout == 0 {
				fmt.Fprintln(out, "Timeout:  none")
			} else {
				fmt.Fprintf(out, "Timeout:  %s\n", cfg.HTTP.Timeout)
			}

			return nil
		},
	}
}
