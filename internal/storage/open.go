package storage

import (
	"context"
	"fmt"

	"weather-lookup/internal/config"
	"weather-lookup/internal/db"
)

// Open builds the backend named by cfg.HistoryBackend.
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.HistoryBackend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendSQLite:
		return NewSQLite(cfg.HistoryDBPath)
	case config.BackendRedis:
		client, err := db.ConnectRedis(cfg)
		if err != nil {
			return nil, err
		}
		return NewRedis(client), nil
	case config.BackendPostgres:
		conn, err := db.ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		pg, err := NewPostgres(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.HistoryBackend)
	}
}
