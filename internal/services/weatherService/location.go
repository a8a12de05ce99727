package weatherservice

import (
	"context"
	"errors"
	"net/url"
)

// Resolve looks a city up with the geocoding endpoint and returns the
// coordinates of the first match. Ambiguous names get whatever the provider
// ranks first.
func (s *Service) Resolve(ctx context.Context, city string) (Coordinates, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("limit", "1")

	doc, err := s.client.FetchJSON(ctx, s.endpoint(geocodePath, params))
	if err != nil {
		return Coordinates{}, s.notFound("geocode", city, err)
	}

	results, ok := doc.([]any)
	if !ok {
		return Coordinates{}, s.notFound("geocode", city, ErrMalformed)
	}
	if len(results) == 0 {
		return Coordinates{}, s.notFound("geocode", city, errors.New("no results"))
	}

	e := newExtractor(results[0])
	coords := Coordinates{
		Lat: e.float("lat"),
		Lon: e.float("lon"),
	}
	if err := e.err(); err != nil {
		return Coordinates{}, s.notFound("geocode", city, err)
	}

	return coords, nil
}
