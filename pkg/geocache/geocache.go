// package geocache wraps a geocoding provider with a cache persisted to
// disk, so repeated lookups of the same address skip the network call.
//
// The cache is a single JSON file in the configured directory. It's loaded
// wholesale at the start of every operation and written back whenever new
// results were fetched. Nothing ever expires; drop entries with
// RemoveFromCache or the whole file with CleanCache.
package geocache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mkonrad/geocachy/pkg/geocode"
	"github.com/mkonrad/geocachy/pkg/whttp"
)

// CacheFileName is the name of the cache file within the cache directory.
const CacheFileName = "geocachy_cache.json"

// autosaveEveryNthRequest bounds how much fetched work a crash can lose
// when geocoding a large batch.
const autosaveEveryNthRequest = 10

type Geocacher struct {
	client    geocode.Client
	cachefile string

	// guards the load-modify-write cycle on the cache file so a single
	// Geocacher can be shared across goroutines. Multiple processes writing
	// the same cache file remain unsupported.
	mu sync.Mutex
}

// New creates a Geocacher whose cache lives under cacheDir, creating the
// directory if needed. With an API key it geocodes through the Google
// Geocoding API; without one it falls back to OpenStreetMap's Nominatim.
func New(cacheDir, apiKey string) (*Geocacher, error) {
	var client geocode.Client
	if apiKey != "" {
		client = geocode.NewGoogleClient(whttp.NewLoggingClient(), apiKey)
	} else {
		slog.Info("no API key provided, falling back to OpenStreetMap")
		client = geocode.NewOpenstreetmapClient()
	}

	return NewWithClient(cacheDir, client)
}

// NewWithClient is like New but geocodes through the given client.
func NewWithClient(cacheDir string, client geocode.Client) (*Geocacher, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create cache directory: %w", err)
	}

	cachefile := filepath.Join(cacheDir, CacheFileName)
	slog.Info("using cache file", "path", cachefile)

	return &Geocacher{client: client, cachefile: cachefile}, nil
}

// Geocode resolves every address in addresses, preferring cached results
// and hitting the provider only on cache misses. It returns a mapping from
// address to the results found for it: a nil entry means the provider
// errored for that address, an empty one that the address couldn't be
// resolved. Neither is cached, so the next run retries them.
//
// The returned error covers cache I/O only; provider failures never fail
// the batch.
func (g *Geocacher) Geocode(addresses []string) (map[string][]geocode.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cache, err := loadCacheFile(g.cachefile)
	if err != nil {
		return nil, err
	}

	geocoded := make(map[string][]geocode.Result, len(addresses))
	fetchedSinceLastWrite := false

	for i, addr := range addresses {
		if results, ok := cache.Geocoding[addr]; ok {
			slog.Info("geocoding cache hit", "address", addr, "results", len(results))
			geocoded[addr] = results
		} else {
			slog.Info("requesting geocoding API", "address", addr)
			cache.Requests.Geocoding = append(cache.Requests.Geocoding, time.Now())
			fetchedSinceLastWrite = true

			results, err := g.client.Geocode(addr)
			switch {
			case err != nil:
				slog.Error("geocoding failure", "address", addr, "error", err.Error())
				results = nil
			case len(results) == 0:
				slog.Info("address yielded no geocoding results", "address", addr)
			default:
				cache.Geocoding[addr] = results
			}

			geocoded[addr] = results
		}

		if ((i+1)%autosaveEveryNthRequest == 0 || i == len(addresses)-1) && fetchedSinceLastWrite {
			if err := cache.write(g.cachefile); err != nil {
				return nil, err
			}

			fetchedSinceLastWrite = false
		}
	}

	return geocoded, nil
}

// InCache reports which of the given addresses already have cached results,
// without hitting any provider.
func (g *Geocacher) InCache(addresses ...string) (map[string]bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cache, err := loadCacheFile(g.cachefile)
	if err != nil {
		return nil, err
	}

	cached := make(map[string]bool, len(addresses))
	for _, addr := range addresses {
		_, cached[addr] = cache.Geocoding[addr]
	}

	return cached, nil
}

// RemoveFromCache drops the cached results for a single address, if any.
func (g *Geocacher) RemoveFromCache(address string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	cache, err := loadCacheFile(g.cachefile)
	if err != nil {
		return err
	}

	if _, ok := cache.Geocoding[address]; ok {
		delete(cache.Geocoding, address)
		slog.Info("removed address from cache", "address", address)
	}

	return cache.write(g.cachefile)
}

// CleanCache deletes the cache file altogether.
func (g *Geocacher) CleanCache() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := os.Remove(g.cachefile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unable to delete cache file: %w", err)
	}

	return nil
}
