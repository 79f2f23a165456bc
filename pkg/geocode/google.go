package geocode

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const googleBaseURL = "https://maps.googleapis.com"

// NewGoogleClient creates a client for the Google Geocoding API. An optional
// base URL can be passed to point the client at a fake server in tests.
func NewGoogleClient(h *http.Client, apiKey string, baseURL ...string) *gc {
	base := googleBaseURL
	if len(baseURL) > 0 {
		base = baseURL[0]
	}

	return &gc{h: h, apiKey: apiKey, baseURL: base}
}

type gc struct {
	h       *http.Client
	apiKey  string
	baseURL string
}

var _ Client = (*gc)(nil)

func (c *gc) Geocode(address string) ([]Result, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	res, err := c.h.Get(fmt.Sprintf("%s/maps/api/geocode/json?%s", c.baseURL, q.Encode()))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var d GeocodeResponse
	err = json.Unmarshal(data, &d)
	if err != nil {
		return nil, err
	}

	switch d.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []Result{}, nil
	default:
		if d.ErrorMessage != "" {
			return nil, fmt.Errorf("geocoding request failed with status %s: %s", d.Status, d.ErrorMessage)
		}

		return nil, fmt.Errorf("geocoding request failed with status %s", d.Status)
	}

	results := make([]Result, 0, len(d.Results))
	for _, r := range d.Results {
		country, countryCode := r.Country()

		results = append(results, Result{
			FormattedAddress: r.FormattedAddress,
			Latitude:         r.Geometry.Location.Lat,
			Longitude:        r.Geometry.Location.Lng,
			PlaceID:          r.PlaceID,
			LocationType:     r.Geometry.LocationType,
			Types:            r.Types,
			PartialMatch:     r.PartialMatch,
			Country:          country,
			CountryCode:      countryCode,
		})
	}

	return results, nil
}

type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results,omitempty"`
}

type GeocodeResult struct {
	FormattedAddress  string             `json:"formatted_address,omitempty"`
	PlaceID           string             `json:"place_id,omitempty"`
	Types             []string           `json:"types,omitempty"`
	PartialMatch      bool               `json:"partial_match,omitempty"`
	AddressComponents []AddressComponent `json:"address_components,omitempty"`
	Geometry          struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
		LocationType string `json:"location_type,omitempty"`
	} `json:"geometry"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name,omitempty"`
	ShortName string   `json:"short_name,omitempty"`
	Types     []string `json:"types,omitempty"`
}

// Country digs the country component out of the address components.
func (r GeocodeResult) Country() (name, code string) {
	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			if t == "country" {
				return c.LongName, c.ShortName
			}
		}
	}

	return "", ""
}
