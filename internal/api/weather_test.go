package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-lookup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const londonCurrent = `{
  "name": "London",
  "weather": [{"description": "light rain", "icon": "10d"}],
  "main": {"temp": 12.4, "feels_like": 11.1, "humidity": 81},
  "wind": {"speed": 4.6}
}`

const londonForecast = `{
  "city": {"name": "London"},
  "list": [
    {"dt": 1700000000, "main": {"temp": 10.2}},
    {"dt": 1700010800, "main": {"temp": 9.6}}
  ]
}`

func TestFetchCurrent(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(londonCurrent))
	}))
	defer srv.Close()

	c := NewClient("secret", srv.URL)
	w, err := c.FetchCurrent(context.Background(), "London", models.UnitMetric)
	require.NoError(t, err)

	assert.Equal(t, "London", w.City)
	assert.Equal(t, "light rain", w.Description)
	assert.Equal(t, "10d", w.Icon)
	assert.InDelta(t, 12.4, w.Temp, 0.001)
	assert.InDelta(t, 11.1, w.FeelsLike, 0.001)
	assert.Equal(t, 81, w.Humidity)
	assert.InDelta(t, 4.6, w.WindSpeed, 0.001)
	assert.Equal(t, models.UnitMetric, w.Unit)

	assert.Equal(t, []string{"London"}, gotQuery["q"])
	assert.Equal(t, []string{"secret"}, gotQuery["appid"])
	assert.Equal(t, []string{"metric"}, gotQuery["units"])
}

func TestFetchCurrentSendsEmptyUnit(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(londonCurrent))
	}))
	defer srv.Close()

	_, err := NewClient("k", srv.URL).FetchCurrent(context.Background(), "London", models.UnitUnset)
	require.NoError(t, err)
	assert.Contains(t, rawQuery, "units=")
}

func TestFetchCurrentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient("k", srv.URL).FetchCurrent(context.Background(), "Zzzznotreal", models.UnitMetric)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCityNotFound))

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "city not found", perr.Message)
}

func TestFetchCurrentUnauthorizedIsNotNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient("bad", srv.URL).FetchCurrent(context.Background(), "London", models.UnitMetric)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCityNotFound))
	assert.Contains(t, err.Error(), "401")
}

func TestFetchCurrentNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := NewClient("k", srv.URL).FetchCurrent(context.Background(), "London", models.UnitMetric)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestFetchForecast(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(londonForecast))
	}))
	defer srv.Close()

	f, err := NewClient("k", srv.URL+"/").FetchForecast(context.Background(), "London", models.UnitImperial, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"10"}, gotQuery["cnt"])
	assert.Equal(t, []string{"imperial"}, gotQuery["units"])
	assert.Equal(t, "London", f.City)
	require.Len(t, f.Points, 2)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), f.Points[0].Time)
	assert.InDelta(t, 9.6, f.Points[1].Temp, 0.001)
}

func TestFetchForecastBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list": "nope"}`))
	}))
	defer srv.Close()

	_, err := NewClient("k", srv.URL).FetchForecast(context.Background(), "London", models.UnitMetric, 10)
	assert.ErrorContains(t, err, "invalid JSON format")
}
