package weather

import (
	"log"
	"net/http"
	"strconv"

	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

var client = NewClient()

func parseCoords(r *http.Request) (float64, float64, bool) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, err2 := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	return lat, lon, err1 == nil && err2 == nil
}

// GET /api/weather/current?lat=&lon=
func GetCurrentWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat, lon, ok := parseCoords(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	current, err := client.GetCurrent(r.Context(), lat, lon)
	if err != nil {
		log.Printf("weather: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch weather data")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, current)
}

// GET /api/weather/forecast?lat=&lon=
func GetForecast(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat, lon, ok := parseCoords(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	forecast, err := client.GetForecast(r.Context(), lat, lon)
	if err != nil {
		log.Printf("weather: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch forecast data")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, forecast)
}
