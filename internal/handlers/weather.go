package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"weather-lookup/internal/models"
	"weather-lookup/internal/services"
)

type WeatherHandler struct {
	weatherService *services.WeatherService
}

func NewWeatherHandler(weatherService *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// GetWeather runs a query. With wait=forecast the response is held until the
// forecast phase settles too.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	city := strings.TrimSpace(q.Get("city"))
	if city == "" {
		writeError(w, http.StatusBadRequest, "city parameter is required")
		return
	}
	unit, err := models.ParseUnit(q.Get("unit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.weatherService.Query(r.Context(), city, unit)
	if res.Err != nil {
		writeError(w, http.StatusNotFound, services.NoCityFound)
		return
	}

	if q.Get("wait") == "forecast" {
		if _, err := res.Forecast(r.Context()); err != nil && r.Context().Err() != nil {
			log.Printf("Client left before forecast for %q: %v", city, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, h.weatherService.View())
}

func (h *WeatherHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.weatherService.View())
}

func (h *WeatherHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"history": h.weatherService.History()})
}

func (h *WeatherHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	v := h.weatherService.View()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"unit":   v.Unit,
		"symbol": v.Symbol,
		"points": v.Chart,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Encode response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
