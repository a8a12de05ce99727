package weatherservice

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/redjax/weathercli/internal/config"
)

const testKey = "secret-test-key"

const currentJSON = `{
  "name": "Amsterdam",
  "main": {"temp": 12.34, "feels_like": 10.9, "humidity": 81, "pressure": 1012},
  "weather": [{"main": "Rain", "description": "light rain"}],
  "wind": {"speed": 5.14, "deg": 220}
}`

const forecastJSON = `{
  "city": {"name": "Amsterdam", "country": "NL"},
  "list": [
    {"dt_txt": "2025-01-01 00:00:00", "main": {"temp": 1, "feels_like": -2.5, "humidity": 90}, "weather": [{"description": "clear sky"}], "wind": {"speed": 2}},
    {"dt_txt": "2025-01-01 03:00:00", "main": {"temp": 2, "feels_like": -1.5, "humidity": 89}, "weather": [{"description": "few clouds"}], "wind": {"speed": 2.1}},
    {"dt_txt": "2025-01-01 06:00:00", "main": {"temp": 3, "feels_like": -0.5, "humidity": 88}, "weather": [{"description": "scattered clouds"}], "wind": {"speed": 2.2}},
    {"dt_txt": "2025-01-01 09:00:00", "main": {"temp": 4, "feels_like": 0.5, "humidity": 87}, "weather": [{"description": "broken clouds"}], "wind": {"speed": 2.3}},
    {"dt_txt": "2025-01-01 12:00:00", "main": {"temp": 5, "feels_like": 1.5, "humidity": 86}, "weather": [{"description": "overcast clouds"}], "wind": {"speed": 2.4}},
    {"dt_txt": "2025-01-01 15:00:00", "main": {"temp": 6, "feels_like": 2.5, "humidity": 85}, "weather": [{"description": "light rain"}], "wind": {"speed": 2.5}},
    {"dt_txt": "2025-01-01 18:00:00", "main": {"temp": 7, "feels_like": 3.5, "humidity": 84}, "weather": [{"description": "rain"}], "wind": {"speed": 2.6}}
  ]
}`

const geocodeJSON = `[{"name": "Amsterdam", "lat": 52.3727598, "lon": 4.8936041, "country": "NL"}]`

const pollutionJSON = `{
  "coord": {"lon": 4.8936, "lat": 52.3728},
  "list": [{
    "dt": 1735732800,
    "main": {"aqi": 2},
    "components": {"co": 230.31, "no": 0.01, "no2": 12.5, "o3": 55.08, "so2": 1.2, "pm2_5": 4.37, "pm10": 6.1, "nh3": 0.5}
  }]
}`

// provider is a fake OpenWeatherMap that serves canned bodies per path and
// records the requests it saw.
type provider struct {
	mu       sync.Mutex
	bodies   map[string]string
	statuses map[string]int
	hits     map[string]int
	queries  map[string][]string
}

func newProvider() *provider {
	return &provider{
		bodies: map[string]string{
			currentPath:   currentJSON,
			forecastPath:  forecastJSON,
			geocodePath:   geocodeJSON,
			pollutionPath: pollutionJSON,
		},
		statuses: map[string]int{},
		hits:     map[string]int{},
		queries:  map[string][]string{},
	}
}

func (p *provider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hits[r.URL.Path]++
	p.queries[r.URL.Path] = append(p.queries[r.URL.Path], r.URL.RawQuery)

	if r.URL.Query().Get("appid") != testKey {
		http.Error(w, `{"cod": 401, "message": "Invalid API key"}`, http.StatusUnauthorized)
		return
	}

	if status, ok := p.statuses[r.URL.Path]; ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
		return
	}

	body, ok := p.bodies[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (p *provider) hitCount(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.hits[path]
}

func (p *provider) lastQuery(path string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	q := p.queries[path]
	if len(q) == 0 {
		return ""
	}

	return q[len(q)-1]
}

func newTestService(t *testing.T, p *provider) *Service {
	t.Helper()

	srv := httptest.NewServer(p)
	t.Cleanup(srv.Close)

	cfg := config.Config{
		API: config.APIConfig{Key: testKey, BaseURL: srv.URL},
	}

	return NewService(cfg, nil)
}
