// Package config builds the process configuration from environment
// variables once at startup so main stays lean and no package reads the
// environment on its own.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full configuration surface of the gateway.
type Config struct {
	Addr            string
	UpstreamTimeout time.Duration
	RestCountries   RestCountries
	OpenWeather     OpenWeather
}

// RestCountries configures the country data provider.
type RestCountries struct {
	BaseURL string
}

// OpenWeather configures the weather provider. APIKey is required.
type OpenWeather struct {
	GeoURL     string
	WeatherURL string
	APIKey     string
	Units      string
	Lang       string
}

// FromEnv builds a Config from environment variables. A missing weather
// API key is a startup error: the process must not accept traffic without it.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr: getenv("ATLAS_ADDR", ":8080"),
		RestCountries: RestCountries{
			BaseURL: getenv("RESTCOUNTRIES_BASE_URL", "https://restcountries.com/v3.1"),
		},
		OpenWeather: OpenWeather{
			GeoURL:     getenv("OPENWEATHER_GEO_URL", "https://api.openweathermap.org/geo/1.0/direct"),
			WeatherURL: getenv("OPENWEATHER_WEATHER_URL", "https://api.openweathermap.org/data/2.5/weather"),
			APIKey:     os.Getenv("OPENWEATHER_API_KEY"),
			Units:      getenv("OPENWEATHER_UNITS", "metric"),
			Lang:       getenv("OPENWEATHER_LANG", "en"),
		},
	}

	if cfg.OpenWeather.APIKey == "" {
		return Config{}, fmt.Errorf("OPENWEATHER_API_KEY is not set")
	}

	timeoutRaw := getenv("UPSTREAM_TIMEOUT_SECONDS", "10")
	seconds, err := strconv.Atoi(timeoutRaw)
	if err != nil || seconds <= 0 {
		return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT_SECONDS %q", timeoutRaw)
	}
	cfg.UpstreamTimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
