package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"weather-lookup/internal/config"

	_ "github.com/lib/pq"
)

const connectAttempts = 10

func ConnectPostgres(cfg *config.Config) (*sql.DB, error) {
	var err error

	for i := 0; i < connectAttempts; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Printf("sql.Open() failed: %v", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = db.PingContext(ctx)
			cancel()
			if err == nil {
				log.Println("PostgreSQL connected")
				return db, nil
			}
			db.Close()
			log.Printf("attempt %d: PostgreSQL not reachable: %v", i+1, err)
		}

		time.Sleep(3 * time.Second)
	}

	return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", connectAttempts, err)
}
