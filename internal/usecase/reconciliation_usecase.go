package usecase

import (
	"context"
	"time"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// Reconciliation job names
const (
	JobDeactivateExpired = "deactivate_expired"
	JobReactivateRenewed = "reactivate_renewed"
	JobReconcileUser     = "reconcile_user"
)

// SweepResult summarizes one reconciliation run
type SweepResult struct {
	Job          string        `json:"job"`
	Scanned      int           `json:"scanned"`
	Transitioned int           `json:"transitioned"`
	Skipped      int           `json:"skipped"`
	Failed       int           `json:"failed"`
	Duration     time.Duration `json:"duration"`
}

// EntitlementChange is a subscription update received from billing
type EntitlementChange struct {
	UserID           uuid.UUID
	PlanID           string
	Status           entity.EntitlementStatus
	CurrentPeriodEnd *time.Time
}

// ReconciliationUsecase keeps listing activation in line with entitlements
type ReconciliationUsecase interface {
	// DeactivateExpired deactivates active listings whose owner no longer qualifies
	DeactivateExpired(ctx context.Context) (*SweepResult, error)

	// ReactivateRenewed reactivates inactive listings whose owner qualifies again
	ReactivateRenewed(ctx context.Context) (*SweepResult, error)

	// ReconcileUser applies both transitions to the listings of one user
	ReconcileUser(ctx context.Context, userID uuid.UUID) (*SweepResult, error)

	// ApplyEntitlementChange stores the entitlement and reconciles the user's listings
	ApplyEntitlementChange(ctx context.Context, change EntitlementChange) (*SweepResult, error)
}
