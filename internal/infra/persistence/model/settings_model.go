package model

import (
	"time"
)

// SettingsRowID is the primary key of the single settings row.
const SettingsRowID = 1

// DirectorySettingsModel is the GORM-specific struct for the 'directory_settings' table.
// The table holds a single row.
type DirectorySettingsModel struct {
	ID                            int      `gorm:"primaryKey;autoIncrement:false"`
	Enabled                       bool     `gorm:"not null"`
	AutoApprove                   bool     `gorm:"not null"`
	MaxImages                     int      `gorm:"not null"`
	ShowInSitemap                 bool     `gorm:"not null"`
	FeaturedLimit                 int      `gorm:"not null"`
	Locations                     []string `gorm:"type:text;serializer:json"`
	Categories                    []string `gorm:"type:text;serializer:json"`
	SubscriptionPlanID            string   `gorm:"type:varchar(255)"`
	SendExpiryNotifications       bool     `gorm:"not null"`
	SendReactivationNotifications bool     `gorm:"not null"`
	UpdatedAt                     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DirectorySettingsModel) TableName() string {
	return "directory_settings"
}
