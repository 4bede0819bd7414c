package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/weather/models"
	dErrors "atlas/pkg/domain-errors"
)

type mockClient struct {
	geocode func(ctx context.Context, city string) (models.Coordinates, error)
	current func(ctx context.Context, coords models.Coordinates) (models.Conditions, error)
}

func (m *mockClient) Geocode(ctx context.Context, city string) (models.Coordinates, error) {
	return m.geocode(ctx, city)
}

func (m *mockClient) Current(ctx context.Context, coords models.Coordinates) (models.Conditions, error) {
	return m.current(ctx, coords)
}

func newTestService(c WeatherClient) *Service {
	return New(c, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil)
}

func conditionsFixture() models.Conditions {
	var c models.Conditions
	c.Main.Temp = 14.2
	c.Main.Humidity = 87
	c.Weather = []struct {
		Description string `json:"description"`
	}{{Description: "light rain"}, {Description: "mist"}}
	return c
}

func TestReport_GeocodesBeforeConditions(t *testing.T) {
	var order []string

	svc := newTestService(&mockClient{
		geocode: func(ctx context.Context, city string) (models.Coordinates, error) {
			order = append(order, "geocode")
			assert.Equal(t, "Bogotá", city)
			return models.Coordinates{Lat: 4.65, Lon: -74.08}, nil
		},
		current: func(ctx context.Context, coords models.Coordinates) (models.Conditions, error) {
			order = append(order, "current")
			assert.InDelta(t, 4.65, coords.Lat, 1e-9)
			return conditionsFixture(), nil
		},
	})

	report, err := svc.Report(context.Background(), "Bogotá")

	require.NoError(t, err)
	assert.Equal(t, []string{"geocode", "current"}, order)
	assert.Equal(t, "Bogotá", report.City)
	assert.InDelta(t, 14.2, report.Temperature, 1e-9)
	assert.Equal(t, 87, report.Humidity)
	assert.Equal(t, "light rain", report.Description)
}

func TestReport_CityEchoedVerbatim(t *testing.T) {
	svc := newTestService(&mockClient{
		geocode: func(ctx context.Context, city string) (models.Coordinates, error) {
			return models.Coordinates{}, nil
		},
		current: func(ctx context.Context, coords models.Coordinates) (models.Conditions, error) {
			return conditionsFixture(), nil
		},
	})

	// Odd casing must survive; only surrounding whitespace is trimmed.
	report, err := svc.Report(context.Background(), "  bOGotA ")

	require.NoError(t, err)
	assert.Equal(t, "bOGotA", report.City)
}

func TestReport_EmptyCityRejected(t *testing.T) {
	svc := newTestService(&mockClient{})

	_, err := svc.Report(context.Background(), "   ")

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestReport_GeocodeFailureShortCircuits(t *testing.T) {
	currentCalled := false
	svc := newTestService(&mockClient{
		geocode: func(ctx context.Context, city string) (models.Coordinates, error) {
			return models.Coordinates{}, dErrors.Newf(dErrors.CodeNotFound, "city %q not found", city)
		},
		current: func(ctx context.Context, coords models.Coordinates) (models.Conditions, error) {
			currentCalled = true
			return models.Conditions{}, nil
		},
	})

	_, err := svc.Report(context.Background(), "Nowhereville")

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.False(t, currentCalled, "conditions call must not happen when geocoding fails")
}

func TestReport_EmptyConditionsListIsInternal(t *testing.T) {
	svc := newTestService(&mockClient{
		geocode: func(ctx context.Context, city string) (models.Coordinates, error) {
			return models.Coordinates{}, nil
		},
		current: func(ctx context.Context, coords models.Coordinates) (models.Conditions, error) {
			c := conditionsFixture()
			c.Weather = nil
			return c, nil
		},
	})

	_, err := svc.Report(context.Background(), "Bogotá")

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
