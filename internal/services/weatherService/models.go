package weatherservice

import (
	"encoding/json"
	"time"
)

// Conditions are the fields shared by current weather and forecast slots.
// Numbers keep the provider's literal text.
type Conditions struct {
	Temperature json.Number // °C
	FeelsLike   json.Number // °C
	Humidity    json.Number // %
	Description string
	WindSpeed   json.Number // m/s
}

// WeatherReading is the current weather for one city.
type WeatherReading struct {
	City string
	Conditions
}

// ForecastEntry is one 3-hour forecast slot.
type ForecastEntry struct {
	Time string // provider dt_txt, e.g. "2025-01-02 15:00:00"
	Conditions
}

// Coordinates resolved from a city name.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Pollutants are concentrations in µg/m³.
type Pollutants struct {
	CO   json.Number
	NO   json.Number
	NO2  json.Number
	O3   json.Number
	SO2  json.Number
	PM25 json.Number
	PM10 json.Number
	NH3  json.Number
}

// AirQualityReading is the current air pollution at a location.
type AirQualityReading struct {
	Time       time.Time
	AQI        int64
	Components Pollutants
}
