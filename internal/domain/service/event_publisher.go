package service

import (
	"context"
	"time"
)

// ListingEvent describes a listing lifecycle change published for other systems.
type ListingEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	ListingID  string    `json:"listing_id"`
	UserID     string    `json:"user_id"`
	Slug       string    `json:"slug"`
	City       string    `json:"city"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a listing lifecycle event
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
