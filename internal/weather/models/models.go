// Package models defines the weather report served to callers and the
// provider-side payloads it is built from.
package models

// Report is the normalized weather record. City is echoed exactly as the
// caller supplied it, never the provider's normalized spelling.
type Report struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}

// Coordinates is one geocoding result.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Conditions is the current-conditions payload from the provider.
type Conditions struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}
