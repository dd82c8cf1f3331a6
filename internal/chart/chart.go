// Package chart turns a forecast series into the labelled points a line chart consumes.
package chart

import (
	"fmt"
	"math"

	"weather-lookup/internal/models"

	"github.com/guptarohit/asciigraph"
)

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Points labels each forecast entry with its UTC wall-clock time (HH:MM) and rounds
// the temperature to whole degrees.
func Points(f *models.Forecast) []Point {
	if f == nil {
		return nil
	}
	out := make([]Point, 0, len(f.Points))
	for _, p := range f.Points {
		out = append(out, Point{
			Label: p.Time.UTC().Format("15:04"),
			Value: math.Round(p.Temp),
		})
	}
	return out
}

// Render draws the series as a terminal line chart. It returns "" for an empty series.
func Render(f *models.Forecast, height int) string {
	points := Points(f)
	if len(points) == 0 {
		return ""
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}

	caption := fmt.Sprintf("Temperature (%s) %s .. %s", f.Unit.Symbol(), points[0].Label, points[len(points)-1].Label)
	return asciigraph.Plot(values, asciigraph.Height(height), asciigraph.Caption(caption))
}
