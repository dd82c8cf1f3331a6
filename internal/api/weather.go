package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-lookup/internal/models"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client talks to the OpenWeatherMap current-weather and forecast endpoints.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchCurrent returns current conditions for city. An unset unit is still sent
// (as an empty units parameter); the provider then answers in Kelvin.
func (c *Client) FetchCurrent(ctx context.Context, city string, unit models.Unit) (*models.Weather, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", string(unit))

	body, err := c.get(ctx, "/weather", params)
	if err != nil {
		return nil, err
	}

	var apiResp struct {
		Name    string `json:"name"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}

	w := &models.Weather{
		City:      apiResp.Name,
		Temp:      apiResp.Main.Temp,
		FeelsLike: apiResp.Main.FeelsLike,
		Humidity:  apiResp.Main.Humidity,
		WindSpeed: apiResp.Wind.Speed,
		Unit:      unit,
		Updated:   time.Now(),
	}
	if len(apiResp.Weather) > 0 {
		w.Description = apiResp.Weather[0].Description
		w.Icon = apiResp.Weather[0].Icon
	}
	return w, nil
}

// FetchForecast returns up to count forecast points (3-hour steps) for city.
func (c *Client) FetchForecast(ctx context.Context, city string, unit models.Unit, count int) (*models.Forecast, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("cnt", strconv.Itoa(count))
	params.Set("units", string(unit))

	body, err := c.get(ctx, "/forecast", params)
	if err != nil {
		return nil, err
	}

	var apiResp struct {
		City struct {
			Name string `json:"name"`
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}

	f := &models.Forecast{
		City:   apiResp.City.Name,
		Unit:   unit,
		Points: make([]models.ForecastPoint, 0, len(apiResp.List)),
	}
	for _, item := range apiResp.List {
		f.Points = append(f.Points, models.ForecastPoint{
			Time: time.Unix(item.Dt, 0).UTC(),
			Temp: item.Main.Temp,
		})
	}
	return f, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &errResp)
		if errResp.Message == "" {
			errResp.Message = http.StatusText(resp.StatusCode)
		}
		return nil, &ProviderError{Status: resp.StatusCode, Message: errResp.Message}
	}

	return body, nil
}
