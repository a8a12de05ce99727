package weatherservice

import (
	"fmt"
	"strconv"
)

// TimeLayout renders air pollution timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Formatter renders readings as display lines. The zero value produces plain
// text. Heading, when set, decorates section titles.
type Formatter struct {
	Heading func(string) string
}

func (f Formatter) heading(s string) string {
	if f.Heading == nil {
		return s
	}

	return f.Heading(s)
}

func conditionLines(c Conditions) []string {
	return []string{
		fmt.Sprintf("Temperature: %s°C", c.Temperature),
		fmt.Sprintf("Feels Like: %s°C", c.FeelsLike),
		fmt.Sprintf("Humidity: %s%%", c.Humidity),
		fmt.Sprintf("Weather: %s", c.Description),
		fmt.Sprintf("Wind Speed: %s m/s", c.WindSpeed),
	}
}

// Current formats a current weather block.
func (f Formatter) Current(r WeatherReading) []string {
	lines := []string{
		"",
		f.heading("--- Current Weather ---"),
		"City: " + r.City,
	}
	lines = append(lines, conditionLines(r.Conditions)...)

	return append(lines, "------------------------")
}

// Forecast formats forecast slots under a header naming the city as the user
// typed it.
func (f Formatter) Forecast(city string, entries []ForecastEntry) []string {
	lines := []string{
		"",
		f.heading(fmt.Sprintf("--- Weather Forecast for %s ---", city)),
	}

	for _, entry := range entries {
		lines = append(lines, "", "Date and Time: "+entry.Time)
		lines = append(lines, conditionLines(entry.Conditions)...)
		lines = append(lines, "------------------------------")
	}

	return lines
}

// AirPollution formats an air quality block. The timestamp is shown in local
// time.
func (f Formatter) AirPollution(city string, r AirQualityReading) []string {
	c := r.Components

	return []string{
		"",
		f.heading(fmt.Sprintf("--- Air Pollution in %s ---", city)),
		"Date and Time: " + r.Time.Local().Format(TimeLayout),
		"Air Quality Index (AQI): " + strconv.FormatInt(r.AQI, 10),
		"",
		"Components:",
		pollutantLine("Carbon Monoxide (CO)", c.CO),
		pollutantLine("Nitric Oxide (NO)", c.NO),
		pollutantLine("Nitrogen Dioxide (NO2)", c.NO2),
		pollutantLine("Ozone (O3)", c.O3),
		pollutantLine("Sulfur Dioxide (SO2)", c.SO2),
		pollutantLine("Fine Particles (PM2.5)", c.PM25),
		pollutantLine("Coarse Particles (PM10)", c.PM10),
		pollutantLine("Ammonia (NH3)", c.NH3),
		"---------------------------------",
	}
}

func pollutantLine(name string, v fmt.Stringer) string {
	return fmt.Sprintf("- %s: %s µg/m³", name, v)
}
