package services

import (
	"context"

	"weather-lookup/internal/models"

	"github.com/google/uuid"
)

// QueryResult carries the two outcomes of one query. Weather and Err are set by the
// time Query returns; the forecast resolves on its own, later.
type QueryResult struct {
	ID      uuid.UUID
	City    string
	Unit    models.Unit
	Weather *models.Weather
	Err     error

	done        chan struct{}
	forecast    *models.Forecast
	forecastErr error
}

func newQueryResult(city string, unit models.Unit) *QueryResult {
	return &QueryResult{
		ID:   uuid.New(),
		City: city,
		Unit: unit,
		done: make(chan struct{}),
	}
}

// Done is closed once the forecast outcome is known.
func (r *QueryResult) Done() <-chan struct{} {
	return r.done
}

// Forecast waits for the forecast outcome or for ctx to end.
func (r *QueryResult) Forecast(ctx context.Context) (*models.Forecast, error) {
	select {
	case <-r.done:
		return r.forecast, r.forecastErr
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *QueryResult) resolve(f *models.Forecast, err error) {
	r.forecast = f
	r.forecastErr = err
	close(r.done)
}
