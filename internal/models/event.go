package models

import "time"

// QueryEvent is published once the current-conditions phase of a query settles.
type QueryEvent struct {
	ID        string    `json:"id"`
	City      string    `json:"city"`
	Unit      Unit      `json:"unit"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
