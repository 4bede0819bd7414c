// Package client talks to the REST Countries API. It classifies failures
// into the shared error taxonomy and hands raw provider records to the
// service layer untouched.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"atlas/internal/countries/models"
	"atlas/internal/platform/config"
	dErrors "atlas/pkg/domain-errors"
)

// defaultFields limits provider payloads to the fields the mapping uses.
const defaultFields = "name,capital,population,currencies,languages,flags,region,subregion,cca2,cca3"

// RestCountriesClient issues one HTTP GET per lookup.
type RestCountriesClient struct {
	http    *http.Client
	baseURL string
}

// New builds a client for the configured provider with a bounded per-call
// timeout.
func New(cfg config.RestCountries, timeout time.Duration) *RestCountriesClient {
	return &RestCountriesClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
	}
}

// ByName fetches candidate countries matching a common or official name.
func (c *RestCountriesClient) ByName(ctx context.Context, name string) ([]models.ProviderCountry, error) {
	return c.lookup(ctx, "name", name)
}

// ByCode fetches the country for an ISO alpha-2 or alpha-3 code.
func (c *RestCountriesClient) ByCode(ctx context.Context, code string) ([]models.ProviderCountry, error) {
	return c.lookup(ctx, "alpha", code)
}

// ByCurrency fetches all countries using a currency.
func (c *RestCountriesClient) ByCurrency(ctx context.Context, code string) ([]models.ProviderCountry, error) {
	return c.lookup(ctx, "currency", code)
}

// ByLanguage fetches all countries speaking a language.
func (c *RestCountriesClient) ByLanguage(ctx context.Context, code string) ([]models.ProviderCountry, error) {
	return c.lookup(ctx, "lang", code)
}

// lookup performs one GET against a kind-specific path segment. A 404 or an
// empty result on 200 is Not-Found carrying the original key, uniformly for
// every lookup kind; any other non-200 status is an upstream error carrying
// the provider's status code.
func (c *RestCountriesClient) lookup(ctx context.Context, segment, key string) ([]models.ProviderCountry, error) {
	reqURL := fmt.Sprintf("%s/%s/%s?fields=%s", c.baseURL, segment, url.PathEscape(key), url.QueryEscape(defaultFields))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build provider request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "country provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "no country matched %q", key)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, dErrors.Upstream(resp.StatusCode, fmt.Sprintf("country provider returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to read provider response")
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to decode provider response")
	}
	if len(records) == 0 {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "no country matched %q", key)
	}
	return records, nil
}

// decodeRecords accepts either a single object or an array of candidate
// matches; the provider uses both shapes depending on lookup kind.
func decodeRecords(body []byte) ([]models.ProviderCountry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '{' {
		var one models.ProviderCountry
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, err
		}
		return []models.ProviderCountry{one}, nil
	}
	var many []models.ProviderCountry
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return nil, err
	}
	return many, nil
}
