package services

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"weather-lookup/internal/chart"
	"weather-lookup/internal/history"
	"weather-lookup/internal/kafka"
	"weather-lookup/internal/models"

	"github.com/google/uuid"
)

// NoCityFound is the only message a failed lookup ever shows, whatever the cause.
const NoCityFound = "No city found"

const DefaultForecastPoints = 10

var ErrForecastSkipped = errors.New("forecast skipped: current conditions lookup failed")

type Provider interface {
	FetchCurrent(ctx context.Context, city string, unit models.Unit) (*models.Weather, error)
	FetchForecast(ctx context.Context, city string, unit models.Unit, count int) (*models.Forecast, error)
}

// View is a read-only copy of what the presentation layer renders.
type View struct {
	Weather  *models.Weather  `json:"weather"`
	IconURL  string           `json:"icon_url,omitempty"`
	Forecast *models.Forecast `json:"forecast"`
	Chart    []chart.Point    `json:"chart"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
	Unit     models.Unit      `json:"unit"`
	Symbol   string           `json:"symbol"`
	History  []string         `json:"history"`
}

// WeatherService owns the lookup state: the last snapshot, the last forecast series,
// the in-flight flag and the error condition.
type WeatherService struct {
	provider Provider
	history  *history.Store
	producer kafka.ProducerInterface
	points   int

	mu       sync.RWMutex
	current  uuid.UUID
	weather  *models.Weather
	forecast *models.Forecast
	loading  bool
	errMsg   string
	unit     models.Unit
}

// NewWeatherService wires the flow. producer may be nil.
func NewWeatherService(provider Provider, hist *history.Store, producer kafka.ProducerInterface, points int) *WeatherService {
	if points <= 0 {
		points = DefaultForecastPoints
	}
	return &WeatherService{
		provider: provider,
		history:  hist,
		producer: producer,
		points:   points,
	}
}

// Query looks up current conditions for city and returns once that lookup settles.
// On success the forecast lookup keeps running in the background; its outcome is
// delivered through the returned result.
func (s *WeatherService) Query(ctx context.Context, city string, unit models.Unit) *QueryResult {
	res := newQueryResult(city, unit)

	s.mu.Lock()
	s.current = res.ID
	s.weather = nil
	s.forecast = nil
	s.loading = true
	s.unit = unit
	s.mu.Unlock()

	res.Weather, res.Err = s.provider.FetchCurrent(ctx, city, unit)

	// The caller may go away once the first phase is over; the rest must not depend on it.
	bg := context.WithoutCancel(ctx)

	if res.Err != nil {
		log.Printf("Weather lookup for %q failed: %v", city, res.Err)
		s.finishPrimary(res)
		res.resolve(nil, ErrForecastSkipped)
		s.publish(res)
		return res
	}

	s.finishPrimary(res)
	if err := s.history.Record(bg, city); err != nil {
		log.Printf("History record for %q failed: %v", city, err)
	}
	s.publish(res)

	go s.fetchForecast(bg, res)
	return res
}

// View returns a copy of the current state.
func (s *WeatherService) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Loading: s.loading,
		Error:   s.errMsg,
		Unit:    s.unit,
		Symbol:  s.unit.Symbol(),
		History: s.history.Recent(),
	}
	if s.weather != nil {
		w := *s.weather
		v.Weather = &w
		v.IconURL = w.IconURL()
	}
	if s.forecast != nil {
		f := *s.forecast
		f.Points = slices.Clone(f.Points)
		v.Forecast = &f
		v.Chart = chart.Points(&f)
	}
	return v
}

func (s *WeatherService) History() []string {
	return s.history.Recent()
}

func (s *WeatherService) finishPrimary(res *QueryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != res.ID {
		log.Printf("Dropping stale weather result for %q (query %s)", res.City, res.ID)
		return
	}
	s.loading = false
	if res.Err != nil {
		s.errMsg = NoCityFound
		return
	}
	s.weather = res.Weather
	s.errMsg = ""
}

func (s *WeatherService) fetchForecast(ctx context.Context, res *QueryResult) {
	f, err := s.provider.FetchForecast(ctx, res.City, res.Unit, s.points)
	if err != nil {
		log.Printf("Error fetching forecast for %q: %v", res.City, err)
		res.resolve(nil, err)
		return
	}

	s.mu.Lock()
	if s.current == res.ID {
		s.forecast = f
	} else {
		log.Printf("Dropping stale forecast for %q (query %s)", res.City, res.ID)
	}
	s.mu.Unlock()

	res.resolve(f, nil)
}

func (s *WeatherService) publish(res *QueryResult) {
	if s.producer == nil {
		return
	}
	event := models.QueryEvent{
		ID:        res.ID.String(),
		City:      res.City,
		Unit:      res.Unit,
		OK:        res.Err == nil,
		CreatedAt: time.Now(),
	}
	if res.Err != nil {
		event.Error = res.Err.Error()
	}
	s.producer.PublishObjectAsync([]byte(strings.ToLower(strings.TrimSpace(res.City))), event)
}
