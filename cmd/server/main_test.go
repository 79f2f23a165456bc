package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mkonrad/geocachy/pkg/geocache"
	"github.com/mkonrad/geocachy/pkg/geocode"
)

type fakeClient struct {
	results map[string][]geocode.Result
}

func (f *fakeClient) Geocode(address string) ([]geocode.Result, error) {
	return f.results[address], nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := &fakeClient{results: map[string][]geocode.Result{
		"wzb berlin": {{
			FormattedAddress: "Reichpietschufer 50, 10785 Berlin, Germany",
			Latitude:         52.506712,
			Longitude:        13.365418,
		}},
	}}

	g, err := geocache.NewWithClient(t.TempDir(), client)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	r := gin.New()
	r.GET("/geocode", geocodeController(g))
	r.DELETE("/cache", cleanCacheController(g))
	r.DELETE("/cache/entry", removeEntryController(g))
	return r
}

func TestGeocodeController(t *testing.T) {
	testCases := []struct {
		desc       string
		url        string
		wantStatus int
		wantBody   string
	}{
		{
			desc:       "when no address is given, it responds 400",
			url:        "/geocode",
			wantStatus: http.StatusBadRequest,
			wantBody:   "missing address query parameter",
		},
		{
			desc:       "when an address is given, it responds with its results",
			url:        "/geocode?address=wzb+berlin",
			wantStatus: http.StatusOK,
			wantBody:   "Reichpietschufer 50",
		},
		{
			desc:       "when the address is unknown, it still gets an entry",
			url:        "/geocode?address=nowhere+at+all",
			wantStatus: http.StatusOK,
			wantBody:   "nowhere at all",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			r := newTestRouter(t)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tC.url, nil)
			r.ServeHTTP(w, req)

			if w.Code != tC.wantStatus {
				t.Errorf("got status %d, expected %d", w.Code, tC.wantStatus)
			}

			if !strings.Contains(w.Body.String(), tC.wantBody) {
				t.Errorf("expected body to contain %q, got %s", tC.wantBody, w.Body.String())
			}
		})
	}
}

func TestRemoveEntryControllerRequiresAddress(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cache/entry", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, expected %d", w.Code, http.StatusBadRequest)
	}
}

func TestCleanCacheController(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cache", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("got status %d, expected %d", w.Code, http.StatusOK)
	}
}
