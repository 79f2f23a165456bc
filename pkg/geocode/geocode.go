package geocode

// Client geocodes a single address against some provider. Providers return
// every match they found; an empty slice means the address couldn't be
// resolved.
type Client interface {
	Geocode(address string) ([]Result, error)
}

// Result is a single geocoding match for an address. It's the record that
// gets persisted to the cache file, hence the json tags.
type Result struct {
	FormattedAddress string   `json:"formatted_address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	PlaceID          string   `json:"place_id,omitempty"`
	LocationType     string   `json:"location_type,omitempty"`
	Types            []string `json:"types,omitempty"`
	PartialMatch     bool     `json:"partial_match,omitempty"`
	Country          string   `json:"country,omitempty"`
	CountryCode      string   `json:"country_code,omitempty"`
}
