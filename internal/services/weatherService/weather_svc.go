package weatherservice

import (
	"errors"
	"io"
	"log"
	"net/url"

	"github.com/redjax/weathercli/internal/config"
)

// ErrNotFound is returned by every query when the provider gave no usable
// answer. The cause is only written to the debug log.
var ErrNotFound = errors.New("city not found")

const (
	currentPath   = "/data/2.5/weather"
	forecastPath  = "/data/2.5/forecast"
	geocodePath   = "/geo/1.0/direct"
	pollutionPath = "/data/2.5/air_pollution"

	// ForecastLimit caps how many forecast slots are returned.
	ForecastLimit = 5
)

// Service runs weather queries against OpenWeatherMap.
type Service struct {
	client  *Client
	apiKey  string
	baseURL string
	logger  *log.Logger
}

// NewService builds a Service from a loaded config. A nil logger discards
// debug output.
func NewService(cfg config.Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Service{
		client:  NewClient(cfg.HTTP.Timeout, logger),
		apiKey:  cfg.API.Key,
		baseURL: cfg.API.BaseURL,
		logger:  logger,
	}
}

// endpoint builds a request URL with the API key appended.
func (s *Service) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("appid", s.apiKey)

	return s.baseURL + path + "?" + params.Encode()
}

// notFound logs why a query failed and returns the uniform error.
func (s *Service) notFound(query, city string, cause error) error {
	s.logger.Printf("%s %q: %v", query, city, cause)
	return ErrNotFound
}
