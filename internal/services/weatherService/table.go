package weatherservice

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/redjax/weathercli/internal/utils/strutils"
)

// RenderForecastTable writes forecast slots as a table, one row per slot.
func RenderForecastTable(w io.Writer, city string, entries []ForecastEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Weather Forecast for " + city)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Date and Time", "Temp (°C)", "Feels Like (°C)", "Humidity (%)", "Weather", "Wind (m/s)"})

	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Time,
			e.Temperature.String(),
			e.FeelsLike.String(),
			e.Humidity.String(),
			strutils.ToTitleCase(e.Description),
			e.WindSpeed.String(),
		})
	}

	t.Render()
}
