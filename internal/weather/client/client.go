// Package client talks to the OpenWeather API: one geocoding call to
// resolve a city to coordinates, one current-conditions call.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"atlas/internal/platform/config"
	"atlas/internal/weather/models"
	dErrors "atlas/pkg/domain-errors"
)

// OpenWeatherClient issues the two outbound calls of the weather path.
type OpenWeatherClient struct {
	http       *http.Client
	geoURL     string
	weatherURL string
	apiKey     string
	units      string
	lang       string
}

// New builds a client for the configured provider with a bounded per-call
// timeout.
func New(cfg config.OpenWeather, timeout time.Duration) *OpenWeatherClient {
	return &OpenWeatherClient{
		http:       &http.Client{Timeout: timeout},
		geoURL:     cfg.GeoURL,
		weatherURL: cfg.WeatherURL,
		apiKey:     cfg.APIKey,
		units:      cfg.Units,
		lang:       cfg.Lang,
	}
}

// Geocode resolves a city name to coordinates. An empty result set means
// the city does not exist for the provider and is Not-Found.
func (c *OpenWeatherClient) Geocode(ctx context.Context, city string) (models.Coordinates, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var results []models.Coordinates
	if err := c.getJSON(ctx, c.geoURL, q, &results); err != nil {
		return models.Coordinates{}, err
	}
	if len(results) == 0 {
		return models.Coordinates{}, dErrors.Newf(dErrors.CodeNotFound, "city %q not found", city)
	}
	return results[0], nil
}

// Current fetches the current conditions for the given coordinates.
func (c *OpenWeatherClient) Current(ctx context.Context, coords models.Coordinates) (models.Conditions, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)
	q.Set("lang", c.lang)

	var conditions models.Conditions
	if err := c.getJSON(ctx, c.weatherURL, q, &conditions); err != nil {
		return models.Conditions{}, err
	}
	return conditions, nil
}

func (c *OpenWeatherClient) getJSON(ctx context.Context, base string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to build provider request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "weather provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return dErrors.New(dErrors.CodeNotFound, "weather provider reported not found")
	}
	if resp.StatusCode != http.StatusOK {
		return dErrors.Upstream(resp.StatusCode, fmt.Sprintf("weather provider returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, "failed to decode provider response")
	}
	return nil
}
