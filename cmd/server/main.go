package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"weather-lookup/internal/api"
	"weather-lookup/internal/bootstrap"
	"weather-lookup/internal/config"
	"weather-lookup/internal/history"
	"weather-lookup/internal/kafka"
	"weather-lookup/internal/storage"
)

func main() {
	cfg := config.Load()
	if cfg.WeatherAPIKey == "" {
		log.Println("OPENWEATHERMAP_API_KEY is empty, every lookup will fail")
	}

	ctx := context.Background()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("History storage (%s) failed: %v", cfg.HistoryBackend, err)
	}
	log.Printf("History backend: %s", cfg.HistoryBackend)

	hist := history.New(store)
	hist.Load(ctx)

	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Printf("Kafka disabled: %v", err)
			producer = nil
		}
	}

	provider := api.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL)
	bundle := bootstrap.InitBootstrap(provider, hist, producer, cfg.ForecastPoints)

	r := bootstrap.InitRoutes(bundle.Handlers.WeatherHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	done := bootstrap.GracefulShutdown(srv, store, producer)

	log.Printf("Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	<-done
	log.Println("Server stopped")
}
