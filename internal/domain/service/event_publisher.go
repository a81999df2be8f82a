package service

import (
	"context"
	"time"
)

// IngestionEvent announces a committed upload batch.
type IngestionEvent struct {
	EventID     string    `json:"event_id"`
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Family      string    `json:"family"`
	Received    int       `json:"received"`
	Succeeded   int       `json:"succeeded"`
	Skipped     int       `json:"skipped"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishIngestionEvent publishes the outcome of a committed batch
	PublishIngestionEvent(ctx context.Context, event *IngestionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
