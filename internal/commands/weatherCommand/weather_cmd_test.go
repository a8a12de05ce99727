package weathercommand

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redjax/weathercli/internal/config"
	weatherservice "github.com/redjax/weathercli/internal/services/weatherService"
)

const testKey = "cmd-test-key"

func fakeProvider(t *testing.T) *httptest.Server {
	t.Helper()

	bodies := map[string]string{
		"/data/2.5/weather": `{"name": "Lisbon", "main": {"temp": 19.5, "feels_like": 19.1, "humidity": 60},
			"weather": [{"description": "clear sky"}], "wind": {"speed": 3.6}}`,
		"/data/2.5/forecast": `{"list": [
			{"dt_txt": "2025-06-01 12:00:00", "main": {"temp": 24, "feels_like": 24.2, "humidity": 40}, "weather": [{"description": "few clouds"}], "wind": {"speed": 4}}
		]}`,
		"/geo/1.0/direct":         `[]`,
		"/data/2.5/air_pollution": `{"list": []}`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != testKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("q") == "Atlantis" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(bodies[r.URL.Path]))
	}))
	t.Cleanup(srv.Close)

	return srv
}

// newRoot mirrors the real root command's persistent flags.
func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "weathercli",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          RunInteractive,
	}
	root.PersistentFlags().String("config", "", "")
	root.PersistentFlags().BoolP("debug", "D", false, "")
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(NewQueryCommands()...)

	return root
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRoot()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func setup(t *testing.T) {
	t.Helper()

	t.Chdir(t.TempDir())
	for _, name := range []string{"API", "WEATHERCLI_API_KEY", "WEATHERCLI_API_BASE_URL", "WEATHERCLI_HTTP_TIMEOUT"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	srv := fakeProvider(t)
	t.Setenv("API", testKey)
	t.Setenv("WEATHERCLI_API_BASE_URL", srv.URL)
}

func TestCurrentCommand(t *testing.T) {
	setup(t)

	out, _, err := execute(t, "", "current", "--location", "Lisbon")
	require.NoError(t, err)

	assert.Contains(t, out, "City: Lisbon\n")
	assert.Contains(t, out, "Temperature: 19.5°C\n")
	assert.Contains(t, out, "Wind Speed: 3.6 m/s\n")
}

func TestCurrentCommandPositionalCity(t *testing.T) {
	setup(t)

	out, _, err := execute(t, "", "current", "Lisbon")
	require.NoError(t, err)
	assert.Contains(t, out, "Feels Like: 19.1°C")
}

func TestCurrentCommandNotFound(t *testing.T) {
	setup(t)

	_, _, err := execute(t, "", "current", "-l", "Atlantis")
	assert.ErrorIs(t, err, weatherservice.ErrNotFound)
	assert.ErrorContains(t, err, `"Atlantis"`)
}

func TestCityRequired(t *testing.T) {
	setup(t)

	_, _, err := execute(t, "", "forecast")
	assert.ErrorContains(t, err, "a city is required")
}

func TestForecastTable(t *testing.T) {
	setup(t)

	out, _, err := execute(t, "", "forecast", "Lisbon", "--table")
	require.NoError(t, err)

	assert.Contains(t, out, "Weather Forecast for Lisbon")
	assert.Contains(t, out, "Few Clouds")
	assert.Contains(t, out, "2025-06-01 12:00:00")
}

func TestPollutionUnresolvedCity(t *testing.T) {
	setup(t)

	_, _, err := execute(t, "", "pollution", "Nowhere")
	assert.ErrorIs(t, err, weatherservice.ErrNotFound)
}

func TestMissingKeyFailsBeforeInteraction(t *testing.T) {
	setup(t)
	os.Unsetenv("API")

	out, _, err := execute(t, "1\nLisbon\nno\n")
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	assert.Empty(t, out)
}

func TestInteractive(t *testing.T) {
	setup(t)

	out, _, err := execute(t, "1\nAtlantis\nLisbon\nno\n")
	require.NoError(t, err)

	assert.Contains(t, out, "City not found. Please check the city name and try again.")
	assert.Contains(t, out, "Temperature: 19.5°C")
	assert.Contains(t, out, "Goodbye!")
}

func TestDebugLogRedactsKey(t *testing.T) {
	setup(t)

	_, errOut, err := execute(t, "", "current", "Lisbon", "--debug")
	require.NoError(t, err)

	assert.Contains(t, errOut, "[debug]")
	assert.NotContains(t, errOut, testKey)
}
