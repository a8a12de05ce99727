package weathercommand

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/weathercli/internal/config"
	weatherservice "github.com/redjax/weathercli/internal/services/weatherService"
	"github.com/redjax/weathercli/internal/utils/terminal"
)

// Runtime is what every weather command needs once config has loaded.
type Runtime struct {
	Config    config.Config
	Service   *weatherservice.Service
	Formatter weatherservice.Formatter
	Styles    terminal.Styles
	Logger    *log.Logger
}

// NewRuntime loads config using the root's persistent --config/--debug flags
// and builds the weather service. Returns config.ErrMissingAPIKey when no key
// was configured.
func NewRuntime(cmd *cobra.Command) (*Runtime, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return nil, err
	}

	logger := log.New(io.Discard, "", 0)
	if debug {
		logger = log.New(cmd.ErrOrStderr(), "[debug] ", log.LstdFlags)
		logger.Printf("base url: %s, timeout: %s", cfg.API.BaseURL, cfg.HTTP.Timeout)
	}

	styles := terminal.NewStyles(cmd.OutOrStdout())

	return &Runtime{
		Config:    cfg,
		Service:   weatherservice.NewService(cfg, logger),
		Formatter: weatherservice.Formatter{Heading: terminal.Renderer(styles.Heading)},
		Styles:    styles,
		Logger:    logger,
	}, nil
}

// cityArg takes the city from --location, falling back to the first
// positional argument.
func cityArg(location string, args []string) (string, error) {
	city := strings.TrimSpace(location)
	if city == "" && len(args) > 0 {
		city = strings.TrimSpace(args[0])
	}
	if city == "" {
		return "", fmt.Errorf("a city is required, pass it as an argument or with --location")
	}

	return city, nil
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
