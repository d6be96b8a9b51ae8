package models

// Weather is a single weather sample mapped from the provider response.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// ForecastDay is one daily summary in a forecast, sampled down from the
// provider's finer-grained series.
type ForecastDay struct {
	Date string `json:"date"`
	Weather
}
