package stlouisfed

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestAPIClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error_code": 400, "error_message": "Bad Request. The value for variable api_key is not a 32 character alpha-numeric lower-case string."}`)
	}))
	defer srv.Close()

	g := newTestGeoFRED(t, srv)
	_, err := g.SeriesGroup("WIPCPI")
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status got %d, want 400", apiErr.Status)
	}
	if apiErr.Message == "" {
		t.Error("message got empty, want upstream text")
	}
}

func TestAPIClientErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGeoFRED(t, srv)
	_, err := g.SeriesGroup("WIPCPI")
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("status got %d, want 500", apiErr.Status)
	}
}

func TestAPIClientRateLimit(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, `{"series_group": [{"title": "x", "region_type": "state", "series_group": "1"}]}`)
	}))
	defer srv.Close()

	g, err := NewGeoFRED(testKey,
		WithAPIURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithRateLimit(120, time.Minute),
	)
	if err != nil {
		t.Fatalf("NewGeoFRED() failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := g.SeriesGroup("WIPCPI"); err != nil {
			t.Fatalf("SeriesGroup() failed: %v", err)
		}
	}
	if requests.Load() != 3 {
		t.Errorf("got %d requests, want 3", requests.Load())
	}
}
