// package env contains simple getters for the environment variables shared
// across the geocachy binaries.
package env

import "os"

// GoogleMapsAPIKey returns the Google Cloud API key, if any. An empty key
// is fine: the wrapper falls back to a keyless provider.
func GoogleMapsAPIKey() string {
	return os.Getenv("GOOGLE_MAPS_API_KEY")
}

// CacheDir returns the directory where the geocoding cache file lives.
func CacheDir() string {
	if dir := os.Getenv("GEOCACHY_CACHE_DIR"); dir != "" {
		return dir
	}

	return ".geocachy"
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}

	return "8080"
}
