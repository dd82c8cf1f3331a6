package models

import (
	"fmt"
	"time"
)

const iconURLFormat = "http://openweathermap.org/img/wn/%s.png"

// Weather is the provider's current conditions for one city.
type Weather struct {
	City        string    `json:"city"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Temp        float64   `json:"temp"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Unit        Unit      `json:"unit"`
	Updated     time.Time `json:"updated_at"`
}

func (w Weather) IconURL() string {
	if w.Icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, w.Icon)
}
