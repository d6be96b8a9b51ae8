package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"wayfare/errs"
	"wayfare/models"
)

// Client fetches conditions from an OpenWeather-shaped API. Reads only,
// no caching: every call hits the provider.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("WEATHER_BASE_URL")
	if base == "" {
		base = "https://api.openweathermap.org/data/2.5"
	}
	return &Client{
		BaseURL: base,
		APIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type providerSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (s providerSample) toWeather() models.Weather {
	w := models.Weather{
		Temperature: s.Main.Temp,
		Humidity:    s.Main.Humidity,
		WindSpeed:   s.Wind.Speed,
	}
	if len(s.Weather) > 0 {
		w.Description = s.Weather[0].Description
		w.Icon = s.Weather[0].Icon
	}
	return w
}

func (c *Client) fetch(ctx context.Context, path string, lat, lon float64, out any) error {
	endpoint := fmt.Sprintf("%s/%s?lat=%f&lon=%f&appid=%s&units=metric",
		c.BaseURL, path, lat, lon, c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &errs.WeatherFetchError{Err: err}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &errs.WeatherFetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errs.WeatherFetchError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &errs.WeatherFetchError{Err: err}
	}
	return nil
}

// GetCurrent returns current conditions for the coordinate pair.
func (c *Client) GetCurrent(ctx context.Context, lat, lon float64) (models.Weather, error) {
	var sample providerSample
	if err := c.fetch(ctx, "weather", lat, lon, &sample); err != nil {
		return models.Weather{}, err
	}
	return sample.toWeather(), nil
}

// GetForecast returns up to five daily summaries. The provider's series is
// sampled every 8th entry (3-hour steps, so one sample per day).
func (c *Client) GetForecast(ctx context.Context, lat, lon float64) ([]models.ForecastDay, error) {
	var decoded struct {
		List []providerSample `json:"list"`
	}
	if err := c.fetch(ctx, "forecast", lat, lon, &decoded); err != nil {
		return nil, err
	}

	days := make([]models.ForecastDay, 0, 5)
	for i := 0; i < len(decoded.List) && len(days) < 5; i += 8 {
		sample := decoded.List[i]
		days = append(days, models.ForecastDay{
			Date:    time.Unix(sample.Dt, 0).UTC().Format("2006-01-02"),
			Weather: sample.toWeather(),
		})
	}
	return days, nil
}
