package repository

import (
	"context"
	"errors"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrSettingsNotFound is returned when no settings have been stored yet.
	ErrSettingsNotFound = errors.New("directory settings not found")

	// ErrEntitlementNotFound is returned when a user has no known entitlement.
	ErrEntitlementNotFound = errors.New("entitlement not found")
)

// SettingsRepository stores the runtime directory settings.
type SettingsRepository interface {
	// Get retrieves the stored settings.
	Get(ctx context.Context) (*entity.DirectorySettings, error)

	// Save creates or replaces the stored settings.
	Save(ctx context.Context, settings *entity.DirectorySettings) error
}

// EntitlementRepository stores the entitlements received from billing events.
type EntitlementRepository interface {
	// Upsert creates or replaces the entitlement of a user.
	Upsert(ctx context.Context, entitlement *entity.Entitlement) error

	// FindByUser retrieves the entitlement of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Entitlement, error)
}
