package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToUser sends a push notification to every device of a user
	SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error
}
