package routes

import (
	"wayfare/auth"
	"wayfare/itinerary"
	"wayfare/middleware"
	"wayfare/profile"
	"wayfare/ratelim"
	"wayfare/search"
	"wayfare/settings"
	"wayfare/weather"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
	router.GET("/api/auth/me", middleware.Authenticate(auth.CurrentUser))

	router.POST("/api/auth/reset", ratelim.RateLimit(auth.RequestPasswordReset))
	router.POST("/api/auth/reset/confirm", ratelim.RateLimit(auth.ConfirmPasswordReset))
	router.POST("/api/auth/password", middleware.Authenticate(auth.UpdatePassword))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.POST("/api/itineraries", middleware.Authenticate(itinerary.CreateItinerary))
	router.GET("/api/itineraries/:id", middleware.OptionalAuth(itinerary.GetItinerary))
	router.PUT("/api/itineraries/:id", middleware.Authenticate(itinerary.UpdateItinerary))
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(itinerary.DeleteItinerary))
	router.POST("/api/itineraries/:id/share", middleware.Authenticate(itinerary.ShareItinerary))
	router.GET("/api/itineraries/:id/export", middleware.Authenticate(itinerary.ExportItinerary))
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditProfile))
	router.PUT("/api/profile/avatar", middleware.Authenticate(profile.UploadAvatar))
}

func AddPreferencesRoutes(router *httprouter.Router) {
	router.GET("/api/preferences", middleware.Authenticate(settings.GetPreferences))
	router.PUT("/api/preferences", middleware.Authenticate(settings.UpdatePreferences))
}

func AddSearchRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/search/locations", rateLimiter.Limit(search.SearchLocations))
}

func AddWeatherRoutes(router *httprouter.Router) {
	router.GET("/api/weather/current", weather.GetCurrentWeather)
	router.GET("/api/weather/forecast", weather.GetForecast)
}
