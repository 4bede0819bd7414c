package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProviderCountry is one country record as returned by the upstream
// provider, normalized at the decode boundary: capital is always a slice,
// and the currency/language objects keep the provider's key order.
type ProviderCountry struct {
	Name       ProviderName  `json:"name"`
	Capital    CapitalList   `json:"capital"`
	Population int64         `json:"population"`
	Region     string        `json:"region"`
	Subregion  string        `json:"subregion"`
	Currencies CurrencyList  `json:"currencies"`
	Languages  LanguageList  `json:"languages"`
	Flags      ProviderFlags `json:"flags"`
	CCA2       string        `json:"cca2"`
}

// ProviderName holds the localized country names. Common and Official are
// the only fields the provider guarantees for any record that exists.
type ProviderName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// ProviderFlags holds the flag image URLs.
type ProviderFlags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
}

// CapitalList accepts either a JSON array of strings or a bare string, so
// the scalar-vs-list branch never reaches business logic.
type CapitalList []string

func (c *CapitalList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = nil
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = CapitalList{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(trimmed, &ss); err != nil {
		return err
	}
	*c = CapitalList(ss)
	return nil
}

// ProviderCurrency is one entry of the provider's currencies object.
type ProviderCurrency struct {
	Code   string
	Name   string
	Symbol string
}

// CurrencyList decodes the provider's currencies object token by token.
// encoding/json maps would drop the key order, and the order is part of
// the output contract.
type CurrencyList []ProviderCurrency

func (l *CurrencyList) UnmarshalJSON(data []byte) error {
	*l = nil
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("currencies: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		code, _ := keyTok.(string)
		var info struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		}
		if err := dec.Decode(&info); err != nil {
			return fmt.Errorf("currencies[%s]: %w", code, err)
		}
		*l = append(*l, ProviderCurrency{Code: code, Name: info.Name, Symbol: info.Symbol})
	}
	_, err = dec.Token()
	return err
}

// ProviderLanguage is one entry of the provider's languages object.
type ProviderLanguage struct {
	Code string
	Name string
}

// LanguageList decodes the provider's languages object preserving order,
// for the same reason as CurrencyList.
type LanguageList []ProviderLanguage

func (l *LanguageList) UnmarshalJSON(data []byte) error {
	*l = nil
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("languages: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		code, _ := keyTok.(string)
		var name string
		if err := dec.Decode(&name); err != nil {
			return fmt.Errorf("languages[%s]: %w", code, err)
		}
		*l = append(*l, ProviderLanguage{Code: code, Name: name})
	}
	_, err = dec.Token()
	return err
}
