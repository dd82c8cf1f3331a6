package bootstrap

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-lookup/internal/kafka"
	"weather-lookup/internal/storage"
)

// GracefulShutdown stops srv on SIGINT or SIGTERM, then releases the Kafka producer
// and the history storage. The returned channel is closed once all of that is done;
// main must wait on it after ListenAndServe returns.
func GracefulShutdown(srv *http.Server, store storage.Storage, producer *kafka.Producer) <-chan struct{} {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		<-sig
		signal.Stop(sig)
		shutdown(srv, store, producer)
		close(done)
	}()
	return done
}

func shutdown(srv *http.Server, store storage.Storage, producer *kafka.Producer) {
	log.Println("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if producer != nil {
		producer.Close()
	}

	if store != nil {
		if err := store.Close(); err != nil {
			log.Printf("Storage close error: %v", err)
		}
	}
}
