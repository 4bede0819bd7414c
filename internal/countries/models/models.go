// Package models defines the normalized country records served to callers
// and the provider-side records they are built from.
package models

// Country is the normalized record. Its shape is the same no matter which
// lookup path (name, code, currency, language) produced it.
type Country struct {
	Name         string     `json:"name"`
	OfficialName string     `json:"official_name"`
	Capital      string     `json:"capital"`
	Population   int64      `json:"population"`
	Region       string     `json:"region"`
	Subregion    string     `json:"subregion"`
	Currencies   []Currency `json:"currencies"`
	Languages    []string   `json:"languages"`
	Flag         string     `json:"flag"`
	CountryCode  string     `json:"country_code"`
}

// Currency is one currency used by a country.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
