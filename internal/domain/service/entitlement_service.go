package service

import (
	"context"

	"github.com/google/uuid"
)

// EntitlementService answers whether a user currently holds a subscription
// that allows an active listing.
type EntitlementService interface {
	HasQualifyingEntitlement(ctx context.Context, userID uuid.UUID) (bool, error)
}
