package geocache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mkonrad/geocachy/pkg/geocode"
)

const cacheVersion = 1

// cacheFile is the on-disk representation of the cache: one mapping from
// address to geocoding results, plus a log of when the provider was hit.
type cacheFile struct {
	Version   int                         `json:"version"`
	Requests  requestLog                  `json:"requests"`
	Geocoding map[string][]geocode.Result `json:"geocoding"`
}

type requestLog struct {
	Geocoding []time.Time `json:"geocoding"`
}

func newCacheFile() *cacheFile {
	return &cacheFile{
		Version:   cacheVersion,
		Geocoding: map[string][]geocode.Result{},
	}
}

func loadCacheFile(path string) (*cacheFile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("creating new cache", "path", path)
		return newCacheFile(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("unable to read cache file: %w", err)
	}

	var c cacheFile
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unable to parse cache file: %w", err)
	}

	if c.Geocoding == nil {
		c.Geocoding = map[string][]geocode.Result{}
	}

	return &c, nil
}

func (c *cacheFile) write(path string) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("unable to serialise cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write cache file: %w", err)
	}

	return nil
}
