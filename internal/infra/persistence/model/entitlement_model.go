package model

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementModel is the GORM-specific struct for the 'user_entitlements' table.
type EntitlementModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanID           string    `gorm:"type:varchar(255);not null"`
	Status           string    `gorm:"type:varchar(32);not null"`
	CurrentPeriodEnd *time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntitlementModel) TableName() string {
	return "user_entitlements"
}

// All returns every model managed by the directory schema.
func All() []any {
	return []any{
		&ListingModel{},
		&DirectorySettingsModel{},
		&EntitlementModel{},
	}
}
