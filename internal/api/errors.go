package api

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrCityNotFound = errors.New("city not found")

// ProviderError is a non-200 answer from the provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("OpenWeatherMap %d: %s", e.Status, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrCityNotFound && e.Status == http.StatusNotFound
}
