package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/countries/models"
	dErrors "atlas/pkg/domain-errors"
)

// mockClient implements CountryClient with per-call hooks.
type mockClient struct {
	byName     func(ctx context.Context, name string) ([]models.ProviderCountry, error)
	byCode     func(ctx context.Context, code string) ([]models.ProviderCountry, error)
	byCurrency func(ctx context.Context, code string) ([]models.ProviderCountry, error)
	byLanguage func(ctx context.Context, code string) ([]models.ProviderCountry, error)
}

func (m *mockClient) ByName(ctx context.Context, name string) ([]models.ProviderCountry, error) {
	return m.byName(ctx, name)
}
func (m *mockClient) ByCode(ctx context.Context, code string) ([]models.ProviderCountry, error) {
	return m.byCode(ctx, code)
}
func (m *mockClient) ByCurrency(ctx context.Context, code string) ([]models.ProviderCountry, error) {
	return m.byCurrency(ctx, code)
}
func (m *mockClient) ByLanguage(ctx context.Context, code string) ([]models.ProviderCountry, error) {
	return m.byLanguage(ctx, code)
}

func newTestService(c CountryClient) *Service {
	return New(c, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil)
}

func colombiaRecord(t *testing.T) models.ProviderCountry {
	t.Helper()
	raw := `{
		"name":{"common":"Colombia","official":"Republic of Colombia"},
		"capital":["Bogotá"],
		"population":50882884,
		"region":"Americas",
		"subregion":"South America",
		"currencies":{"COP":{"name":"Colombian peso","symbol":"$"}},
		"languages":{"spa":"Spanish"},
		"flags":{"png":"https://flagcdn.com/w320/co.png"},
		"cca2":"CO"
	}`
	var rec models.ProviderCountry
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

func TestByName_MapsEveryField(t *testing.T) {
	svc := newTestService(&mockClient{
		byName: func(ctx context.Context, name string) ([]models.ProviderCountry, error) {
			assert.Equal(t, "colombia", name)
			return []models.ProviderCountry{colombiaRecord(t)}, nil
		},
	})

	country, err := svc.ByName(context.Background(), "  colombia ")

	require.NoError(t, err)
	assert.Equal(t, models.Country{
		Name:         "Colombia",
		OfficialName: "Republic of Colombia",
		Capital:      "Bogotá",
		Population:   50882884,
		Region:       "Americas",
		Subregion:    "South America",
		Currencies:   []models.Currency{{Code: "COP", Name: "Colombian peso", Symbol: "$"}},
		Languages:    []string{"Spanish"},
		Flag:         "https://flagcdn.com/w320/co.png",
		CountryCode:  "CO",
	}, *country)
}

func TestByName_FirstMatchWins(t *testing.T) {
	first := colombiaRecord(t)
	second := colombiaRecord(t)
	second.Name.Common = "Colombia Lookalike"

	svc := newTestService(&mockClient{
		byName: func(ctx context.Context, name string) ([]models.ProviderCountry, error) {
			return []models.ProviderCountry{first, second}, nil
		},
	})

	country, err := svc.ByName(context.Background(), "colombia")
	require.NoError(t, err)
	assert.Equal(t, "Colombia", country.Name)
}

func TestByName_EmptyKeyRejected(t *testing.T) {
	svc := newTestService(&mockClient{})

	_, err := svc.ByName(context.Background(), "   ")

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestByName_OptionalFieldsDefaulted(t *testing.T) {
	rec := models.ProviderCountry{
		Name: models.ProviderName{Common: "Nowhere", Official: "Republic of Nowhere"},
	}
	svc := newTestService(&mockClient{
		byName: func(ctx context.Context, name string) ([]models.ProviderCountry, error) {
			return []models.ProviderCountry{rec}, nil
		},
	})

	country, err := svc.ByName(context.Background(), "Nowhere")

	require.NoError(t, err)
	assert.Empty(t, country.Capital)
	assert.Zero(t, country.Population)
	assert.Empty(t, country.Region)
	assert.Empty(t, country.Subregion)
	assert.Empty(t, country.Currencies)
	assert.Empty(t, country.Languages)
	assert.Empty(t, country.Flag)
	assert.Empty(t, country.CountryCode)
}

func TestByName_MissingNameIsInternal(t *testing.T) {
	rec := colombiaRecord(t)
	rec.Name.Official = ""
	svc := newTestService(&mockClient{
		byName: func(ctx context.Context, name string) ([]models.ProviderCountry, error) {
			return []models.ProviderCountry{rec}, nil
		},
	})

	_, err := svc.ByName(context.Background(), "broken")

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestByCode_UppercasesKey(t *testing.T) {
	svc := newTestService(&mockClient{
		byCode: func(ctx context.Context, code string) ([]models.ProviderCountry, error) {
			assert.Equal(t, "CO", code)
			return []models.ProviderCountry{colombiaRecord(t)}, nil
		},
	})

	country, err := svc.ByCode(context.Background(), " co ")
	require.NoError(t, err)
	assert.Equal(t, "Colombia", country.Name)
}

func TestByCurrency_OrderPreserved(t *testing.T) {
	first := colombiaRecord(t)
	second := colombiaRecord(t)
	second.Name.Common = "Ecuador"

	svc := newTestService(&mockClient{
		byCurrency: func(ctx context.Context, code string) ([]models.ProviderCountry, error) {
			assert.Equal(t, "USD", code)
			return []models.ProviderCountry{first, second}, nil
		},
	})

	countries, err := svc.ByCurrency(context.Background(), "usd")

	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Colombia", countries[0].Name)
	assert.Equal(t, "Ecuador", countries[1].Name)
}

func TestByCurrency_NotFoundPropagates(t *testing.T) {
	svc := newTestService(&mockClient{
		byCurrency: func(ctx context.Context, code string) ([]models.ProviderCountry, error) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "no country matched %q", code)
		},
	})

	_, err := svc.ByCurrency(context.Background(), "XXX")

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.Contains(t, err.Error(), "XXX")
}

func TestByLanguage_MappingSharedAcrossKinds(t *testing.T) {
	svc := newTestService(&mockClient{
		byLanguage: func(ctx context.Context, code string) ([]models.ProviderCountry, error) {
			return []models.ProviderCountry{colombiaRecord(t)}, nil
		},
	})

	countries, err := svc.ByLanguage(context.Background(), "spa")

	require.NoError(t, err)
	require.Len(t, countries, 1)
	// Same field-for-field result as the by-name path.
	assert.Equal(t, "Republic of Colombia", countries[0].OfficialName)
	assert.Equal(t, []string{"Spanish"}, countries[0].Languages)
}
