package bootstrap

import (
	"weather-lookup/internal/handlers"
	"weather-lookup/internal/history"
	"weather-lookup/internal/kafka"
	"weather-lookup/internal/services"
)

type HandlersBundle struct {
	WeatherHandler *handlers.WeatherHandler
}

type BootstrapBundle struct {
	Handlers       *HandlersBundle
	WeatherService *services.WeatherService
}

// InitBootstrap wires the query flow. producer may be nil when Kafka is not configured.
func InitBootstrap(provider services.Provider, hist *history.Store, producer *kafka.Producer, forecastPoints int) *BootstrapBundle {
	var publisher kafka.ProducerInterface
	if producer != nil {
		publisher = producer
	}

	weatherService := services.NewWeatherService(provider, hist, publisher, forecastPoints)

	return &BootstrapBundle{
		Handlers: &HandlersBundle{
			WeatherHandler: handlers.NewWeatherHandler(weatherService),
		},
		WeatherService: weatherService,
	}
}
