// Package service maps raw provider records into the normalized country
// records served to callers. The field-extraction policy is identical for
// every lookup kind.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"atlas/internal/countries/metrics"
	"atlas/internal/countries/models"
	dErrors "atlas/pkg/domain-errors"
)

// CountryClient is the outbound dependency of the service. Each call issues
// one HTTP GET against the provider.
type CountryClient interface {
	ByName(ctx context.Context, name string) ([]models.ProviderCountry, error)
	ByCode(ctx context.Context, code string) ([]models.ProviderCountry, error)
	ByCurrency(ctx context.Context, code string) ([]models.ProviderCountry, error)
	ByLanguage(ctx context.Context, code string) ([]models.ProviderCountry, error)
}

// Service implements the country lookup operations.
type Service struct {
	client  CountryClient
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates the countries service. metrics may be nil.
func New(client CountryClient, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{client: client, logger: logger, metrics: m}
}

// ByName returns the best match for a country name. When the provider
// returns several candidates the first one wins.
func (s *Service) ByName(ctx context.Context, name string) (*models.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "country name is required")
	}
	return s.lookupOne(ctx, "name", name, s.client.ByName)
}

// ByCode returns the country for an ISO alpha-2 or alpha-3 code.
func (s *Service) ByCode(ctx context.Context, code string) (*models.Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "country code is required")
	}
	return s.lookupOne(ctx, "code", code, s.client.ByCode)
}

// ByCurrency returns every country using the given currency, in provider
// order. Zero matches is Not-Found, never an empty list.
func (s *Service) ByCurrency(ctx context.Context, code string) ([]models.Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "currency code is required")
	}
	return s.lookupAll(ctx, "currency", code, s.client.ByCurrency)
}

// ByLanguage returns every country speaking the given language, in provider
// order.
func (s *Service) ByLanguage(ctx context.Context, code string) ([]models.Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "language code is required")
	}
	return s.lookupAll(ctx, "language", code, s.client.ByLanguage)
}

type lookupFunc func(ctx context.Context, key string) ([]models.ProviderCountry, error)

func (s *Service) lookupOne(ctx context.Context, kind, key string, fetch lookupFunc) (*models.Country, error) {
	s.logger.DebugContext(ctx, "country lookup", "kind", kind, "key", key)
	start := time.Now()
	records, err := fetch(ctx, key)
	if err != nil {
		s.metrics.ObserveLookup(kind, outcome(err), start)
		return nil, err
	}
	country, err := mapCountry(records[0])
	s.metrics.ObserveLookup(kind, outcome(err), start)
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (s *Service) lookupAll(ctx context.Context, kind, key string, fetch lookupFunc) ([]models.Country, error) {
	s.logger.DebugContext(ctx, "country lookup", "kind", kind, "key", key)
	start := time.Now()
	records, err := fetch(ctx, key)
	if err != nil {
		s.metrics.ObserveLookup(kind, outcome(err), start)
		return nil, err
	}
	countries := make([]models.Country, 0, len(records))
	for _, rec := range records {
		country, err := mapCountry(rec)
		if err != nil {
			s.metrics.ObserveLookup(kind, "error", start)
			return nil, err
		}
		countries = append(countries, country)
	}
	s.metrics.ObserveLookup(kind, "ok", start)
	return countries, nil
}

// mapCountry applies the field-extraction policy. Common and official names
// are required: a record without them passed the provider's not-found check
// yet is structurally broken, which is a defect rather than a lookup miss.
// Every other field independently falls back to its documented default.
func mapCountry(rec models.ProviderCountry) (models.Country, error) {
	if rec.Name.Common == "" || rec.Name.Official == "" {
		return models.Country{}, dErrors.New(dErrors.CodeInternal, "provider record is missing the country name")
	}

	capital := ""
	if len(rec.Capital) > 0 {
		capital = rec.Capital[0]
	}

	currencies := make([]models.Currency, 0, len(rec.Currencies))
	for _, c := range rec.Currencies {
		currencies = append(currencies, models.Currency{Code: c.Code, Name: c.Name, Symbol: c.Symbol})
	}

	languages := make([]string, 0, len(rec.Languages))
	for _, l := range rec.Languages {
		languages = append(languages, l.Name)
	}

	return models.Country{
		Name:         rec.Name.Common,
		OfficialName: rec.Name.Official,
		Capital:      capital,
		Population:   rec.Population,
		Region:       rec.Region,
		Subregion:    rec.Subregion,
		Currencies:   currencies,
		Languages:    languages,
		Flag:         rec.Flags.PNG,
		CountryCode:  rec.CCA2,
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
