// Package service assembles weather reports: geocode the city, fetch the
// current conditions, build the record.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"atlas/internal/weather/metrics"
	"atlas/internal/weather/models"
	dErrors "atlas/pkg/domain-errors"
)

// WeatherClient is the outbound dependency of the service.
type WeatherClient interface {
	Geocode(ctx context.Context, city string) (models.Coordinates, error)
	Current(ctx context.Context, coords models.Coordinates) (models.Conditions, error)
}

// Service implements the weather report operation.
type Service struct {
	client  WeatherClient
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates the weather service. metrics may be nil.
func New(client WeatherClient, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{client: client, logger: logger, metrics: m}
}

// Report resolves the city to coordinates, then fetches the current
// conditions. The returned record carries the caller's city string, not the
// provider's resolved spelling.
func (s *Service) Report(ctx context.Context, city string) (*models.Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "city name is required")
	}

	s.logger.DebugContext(ctx, "weather report", "city", city)
	start := time.Now()
	report, err := s.report(ctx, city)
	s.metrics.ObserveReport(outcome(err), start)
	return report, err
}

func (s *Service) report(ctx context.Context, city string) (*models.Report, error) {
	coords, err := s.client.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	conditions, err := s.client.Current(ctx, coords)
	if err != nil {
		return nil, err
	}
	if len(conditions.Weather) == 0 {
		// The provider always lists at least one condition for a resolvable
		// location; an empty list is a broken payload, not a miss.
		return nil, dErrors.New(dErrors.CodeInternal, "provider conditions payload has no weather entries")
	}

	return &models.Report{
		City:        city,
		Temperature: conditions.Main.Temp,
		Humidity:    conditions.Main.Humidity,
		Description: conditions.Weather[0].Description,
	}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		return "not_found"
	default:
		return "error"
	}
}
