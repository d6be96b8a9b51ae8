package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wayfare/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &Client{
		BaseURL: server.URL,
		APIKey:  "test-key",
		HTTP:    server.Client(),
	}
	return client, server
}

func TestGetCurrent(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"main": {"temp": 21.5, "humidity": 60},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"wind": {"speed": 3.4}
		}`)
	}))
	defer server.Close()

	current, err := client.GetCurrent(context.Background(), 48.8584, 2.2945)
	require.NoError(t, err)
	assert.InDelta(t, 21.5, current.Temperature, 1e-9)
	assert.Equal(t, 60, current.Humidity)
	assert.Equal(t, "clear sky", current.Description)
	assert.Equal(t, "01d", current.Icon)
	assert.InDelta(t, 3.4, current.WindSpeed, 1e-9)
}

// forecastList builds n provider samples in 3-hour steps starting at base.
func forecastList(base time.Time, n int) []map[string]any {
	list := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, map[string]any{
			"dt":      base.Add(time.Duration(i) * 3 * time.Hour).Unix(),
			"main":    map[string]any{"temp": float64(10 + i), "humidity": 50},
			"weather": []map[string]any{{"description": "clouds", "icon": "03d"}},
			"wind":    map[string]any{"speed": 1.0},
		})
	}
	return list
}

func TestGetForecastSamplesDaily(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"list": forecastList(base, 40)})
	}))
	defer server.Close()

	days, err := client.GetForecast(context.Background(), 48.8584, 2.2945)
	require.NoError(t, err)
	require.Len(t, days, 5, "five daily summaries, one per day")

	for i, day := range days {
		wantDate := base.AddDate(0, 0, i).Format("2006-01-02")
		assert.Equal(t, wantDate, day.Date)
		// every 8th 3-hour sample: temps 10, 18, 26, 34, 42
		assert.InDelta(t, float64(10+8*i), day.Temperature, 1e-9)
	}
}

func TestGetForecastShortSeries(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"list": forecastList(base, 10)})
	}))
	defer server.Close()

	days, err := client.GetForecast(context.Background(), 48.8584, 2.2945)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestWeatherNon2xx(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := client.GetCurrent(context.Background(), 0, 0)
	require.Error(t, err)
	var we *errs.WeatherFetchError
	assert.True(t, errors.As(err, &we))

	_, err = client.GetForecast(context.Background(), 0, 0)
	require.Error(t, err)
	assert.True(t, errors.As(err, &we))
}
