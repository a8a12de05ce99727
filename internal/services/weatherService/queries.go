package weatherservice

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"
)

func metricParams(city string) url.Values {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")

	return params
}

// readConditions maps main.temp, main.feels_like, main.humidity,
// weather[0].description and wind.speed relative to prefix.
func readConditions(e *extractor, prefix ...any) Conditions {
	at := func(path ...any) []any {
		return append(append([]any{}, prefix...), path...)
	}

	return Conditions{
		Temperature: e.number(at("main", "temp")...),
		FeelsLike:   e.number(at("main", "feels_like")...),
		Humidity:    e.number(at("main", "humidity")...),
		Description: e.str(at("weather", 0, "description")...),
		WindSpeed:   e.number(at("wind", "speed")...),
	}
}

// CurrentWeather returns the current conditions for city in metric units.
func (s *Service) CurrentWeather(ctx context.Context, city string) (WeatherReading, error) {
	doc, err := s.client.FetchJSON(ctx, s.endpoint(currentPath, metricParams(city)))
	if err != nil {
		return WeatherReading{}, s.notFound("current", city, err)
	}

	e := newExtractor(doc)
	reading := WeatherReading{
		City:       e.str("name"),
		Conditions: readConditions(e),
	}
	if err := e.err(); err != nil {
		return WeatherReading{}, s.notFound("current", city, err)
	}

	return reading, nil
}

// Forecast returns up to ForecastLimit forecast slots for city, in the order
// the provider listed them.
func (s *Service) Forecast(ctx context.Context, city string) ([]ForecastEntry, error) {
	doc, err := s.client.FetchJSON(ctx, s.endpoint(forecastPath, metricParams(city)))
	if err != nil {
		return nil, s.notFound("forecast", city, err)
	}

	e := newExtractor(doc)
	list := e.array("list")
	if err := e.err(); err != nil {
		return nil, s.notFound("forecast", city, err)
	}
	if len(list) == 0 {
		return nil, s.notFound("forecast", city, errors.New("empty forecast list"))
	}

	n := min(len(list), ForecastLimit)
	entries := make([]ForecastEntry, 0, n)

	for i := range n {
		entries = append(entries, ForecastEntry{
			Time:       e.str("list", i, "dt_txt"),
			Conditions: readConditions(e, "list", i),
		})
	}
	if err := e.err(); err != nil {
		return nil, s.notFound("forecast", city, err)
	}

	return entries, nil
}

// AirPollution resolves city to coordinates and returns the current air
// pollution there. No pollution request is made when the city can't be
// resolved.
func (s *Service) AirPollution(ctx context.Context, city string) (AirQualityReading, error) {
	coords, err := s.Resolve(ctx, city)
	if err != nil {
		return AirQualityReading{}, err
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))

	doc, err := s.client.FetchJSON(ctx, s.endpoint(pollutionPath, params))
	if err != nil {
		return AirQualityReading{}, s.notFound("air pollution", city, err)
	}

	e := newExtractor(doc)
	reading := AirQualityReading{
		Time: time.Unix(e.integer("list", 0, "dt"), 0),
		AQI:  e.integer("list", 0, "main", "aqi"),
	}
	reading.Components = Pollutants{
		CO:   e.number("list", 0, "components", "co"),
		NO:   e.number("list", 0, "components", "no"),
		NO2:  e.number("list", 0, "components", "no2"),
		O3:   e.number("list", 0, "components", "o3"),
		SO2:  e.number("list", 0, "components", "so2"),
		PM25: e.number("list", 0, "components", "pm2_5"),
		PM10: e.number("list", 0, "components", "pm10"),
		NH3:  e.number("list", 0, "components", "nh3"),
	}
	if err := e.err(); err != nil {
		return AirQualityReading{}, s.notFound("air pollution", city, err)
	}

	return reading, nil
}
