package models

import "time"

type ForecastPoint struct {
	Time time.Time `json:"time"`
	Temp float64   `json:"temp"`
}

// Forecast is the short series returned by the provider's forecast endpoint.
type Forecast struct {
	City   string          `json:"city"`
	Unit   Unit            `json:"unit"`
	Points []ForecastPoint `json:"points"`
}
