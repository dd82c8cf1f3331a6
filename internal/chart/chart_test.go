package chart

import (
	"testing"
	"time"

	"weather-lookup/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	f := &models.Forecast{
		Unit: models.UnitMetric,
		Points: []models.ForecastPoint{
			{Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), Temp: 10.4},
			{Time: time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)), Temp: 11.5},
		},
	}

	got := Points(f)

	assert.Equal(t, []Point{
		{Label: "09:00", Value: 10},
		{Label: "11:00", Value: 12},
	}, got)
}

func TestPointsEmpty(t *testing.T) {
	assert.Nil(t, Points(nil))
	assert.Empty(t, Points(&models.Forecast{}))
	assert.Equal(t, "", Render(nil, 8))
}

func TestRender(t *testing.T) {
	f := &models.Forecast{
		Unit: models.UnitImperial,
		Points: []models.ForecastPoint{
			{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Temp: 50},
			{Time: time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), Temp: 55},
			{Time: time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC), Temp: 52},
		},
	}

	out := Render(f, 5)

	assert.Contains(t, out, "Temperature (°F) 00:00 .. 06:00")
}
