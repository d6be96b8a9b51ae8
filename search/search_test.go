package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"wayfare/errs"
	"wayfare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &Client{
		BaseURL: server.URL,
		Token:   "test-token",
		HTTP:    server.Client(),
	}
	return client, server
}

func geocodeHandler(calls *int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"features": [
				{"id": "poi.1", "text": "Paris", "place_name": "Paris, France", "center": [2.3522, 48.8566]},
				{"id": "poi.2", "text": "Paris", "place_name": "Paris, Texas, United States", "center": [-95.5555, 33.6609]}
			]
		}`)
	})
}

func TestSearchEmptyQuerySkipsNetwork(t *testing.T) {
	var calls int64
	client, server := newTestClient(geocodeHandler(&calls))
	defer server.Close()

	for _, query := range []string{"", "   ", "\t"} {
		results, err := client.Search(context.Background(), query)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Len(t, results, 0)
	}
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls), "empty queries must not hit the network")
}

func TestSearchMapsProviderFeatures(t *testing.T) {
	var calls int64
	client, server := newTestClient(geocodeHandler(&calls))
	defer server.Close()

	results, err := client.Search(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// provider order is preserved; center [lon, lat] becomes Lat/Lng
	assert.Equal(t, "poi.1", results[0].ID)
	assert.Equal(t, "Paris", results[0].Name)
	assert.Equal(t, "Paris, France", results[0].Address)
	assert.InDelta(t, 48.8566, results[0].Coordinates.Lat, 1e-9)
	assert.InDelta(t, 2.3522, results[0].Coordinates.Lng, 1e-9)
	assert.Equal(t, "Paris, Texas, United States", results[1].Address)
}

func TestSearchNon2xx(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := client.Search(context.Background(), "Paris")
	require.Error(t, err)
	var se *errs.SearchError
	assert.True(t, errors.As(err, &se))
}

func TestDebouncerLastIssuedWins(t *testing.T) {
	var calls int64
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"features": [{"id": "q", "text": %q, "place_name": %q, "center": [0, 0]}]}`,
			r.URL.Path, r.URL.Path)
	}))
	defer server.Close()

	d := NewDebouncer(client, 50*time.Millisecond)
	delivered := make(chan []models.Location, 2)

	d.Search("Par", func(results []models.Location, err error) {
		require.NoError(t, err)
		delivered <- results
	})
	d.Search("Paris", func(results []models.Location, err error) {
		require.NoError(t, err)
		delivered <- results
	})

	select {
	case results := <-delivered:
		require.Len(t, results, 1)
		assert.Contains(t, results[0].Name, "Paris")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for debounced results")
	}

	// nothing else may surface, and the superseded query never fired
	select {
	case extra := <-delivered:
		t.Fatalf("unexpected second delivery: %v", extra)
	case <-time.After(200 * time.Millisecond):
	}
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestDebouncerSpacedQueriesBothDeliver(t *testing.T) {
	var calls int64
	client, server := newTestClient(geocodeHandler(&calls))
	defer server.Close()

	d := NewDebouncer(client, 10*time.Millisecond)
	delivered := make(chan struct{}, 2)

	d.Search("Paris", func([]models.Location, error) { delivered <- struct{}{} })

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for first delivery")
	}

	d.Search("London", func([]models.Location, error) { delivered <- struct{}{} })

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for second delivery")
	}
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}
