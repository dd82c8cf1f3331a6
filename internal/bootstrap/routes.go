package bootstrap

import (
	"net/http"

	"weather-lookup/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func InitRoutes(weatherHandler *handlers.WeatherHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/weather", weatherHandler.GetWeather)
	r.Get("/state", weatherHandler.GetState)
	r.Get("/history", weatherHandler.GetHistory)
	r.Get("/forecast/chart", weatherHandler.GetChart)

	return r
}
