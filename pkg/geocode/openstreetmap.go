package geocode

import (
	"github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
)

// NewOpenstreetmapClient creates a keyless fallback provider backed by
// Nominatim. It returns at most one match per address.
func NewOpenstreetmapClient() *oc {
	geocoder := openstreetmap.Geocoder()
	return &oc{geocoder: geocoder}
}

type oc struct {
	geocoder geo.Geocoder
}

var _ Client = (*oc)(nil)

func (c *oc) Geocode(query string) ([]Result, error) {
	location, err := c.geocoder.Geocode(query)
	if err != nil {
		return nil, err
	}

	if location == nil {
		return []Result{}, nil
	}

	result := Result{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}

	// Nominatim's forward lookup only carries coordinates; a reverse lookup
	// fills in the address fields.
	address, err := c.geocoder.ReverseGeocode(location.Lat, location.Lng)
	if err != nil {
		return nil, err
	}

	if address != nil {
		result.FormattedAddress = address.FormattedAddress
		result.Country = address.Country
		result.CountryCode = address.CountryCode
	}

	return []Result{result}, nil
}
