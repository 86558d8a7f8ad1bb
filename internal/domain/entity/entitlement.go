package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementStatus mirrors the billing provider's subscription status.
type EntitlementStatus string

const (
	EntitlementActive   EntitlementStatus = "active"
	EntitlementTrialing EntitlementStatus = "trialing"
	EntitlementCanceled EntitlementStatus = "canceled"
	EntitlementExpired  EntitlementStatus = "expired"
)

// Entitlement is the locally known subscription of a user.
type Entitlement struct {
	UserID           uuid.UUID
	PlanID           string
	Status           EntitlementStatus
	CurrentPeriodEnd *time.Time // Nil when the subscription does not expire.
	UpdatedAt        time.Time
}

// Qualifies reports whether the entitlement grants a listing under planID at now.
func (e *Entitlement) Qualifies(planID string, now time.Time) bool {
	if e == nil || e.PlanID != planID {
		return false
	}
	if e.Status != EntitlementActive && e.Status != EntitlementTrialing {
		return false
	}

	return e.CurrentPeriodEnd == nil || e.CurrentPeriodEnd.After(now)
}
