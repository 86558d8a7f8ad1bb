package model

import (
	"time"

	"github.com/google/uuid"
)

// Index names referenced when translating constraint violations.
const (
	IndexListingSlug       = "idx_business_listings_slug"
	IndexListingActiveUser = "idx_business_listings_active_user"
)

// ServicePackageModel is the JSON shape of a stored service package.
type ServicePackageModel struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

// ListingModel is the GORM-specific struct for the 'business_listings' table.
// The partial unique index on user_id allows at most one active listing per user.
type ListingModel struct {
	ID           uuid.UUID             `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID             `gorm:"type:uuid;not null;index:idx_business_listings_user;uniqueIndex:idx_business_listings_active_user,where:is_active = true"`
	BusinessName string                `gorm:"type:varchar(100);not null"`
	Description  string                `gorm:"type:text;not null"`
	City         string                `gorm:"type:varchar(100);not null;index:idx_business_listings_lookup,priority:1"`
	Category     string                `gorm:"type:varchar(100);not null;index:idx_business_listings_lookup,priority:2"`
	Slug         string                `gorm:"type:varchar(255);not null;uniqueIndex:idx_business_listings_slug"`
	Website      string                `gorm:"type:varchar(255)"`
	Instagram    string                `gorm:"type:varchar(255)"`
	Facebook     string                `gorm:"type:varchar(255)"`
	TikTok       string                `gorm:"column:tiktok;type:varchar(255)"`
	Email        string                `gorm:"type:varchar(255)"`
	Phone        string                `gorm:"type:varchar(50)"`
	Images       []string              `gorm:"type:text;serializer:json"`
	Packages     []ServicePackageModel `gorm:"type:text;serializer:json"`
	IsActive     bool                  `gorm:"not null;index:idx_business_listings_lookup,priority:3"`
	Approved     bool                  `gorm:"not null;index:idx_business_listings_lookup,priority:4"`
	Featured     bool                  `gorm:"not null;index:idx_business_listings_ranking,priority:1"`
	Priority     int                   `gorm:"not null;index:idx_business_listings_ranking,priority:2"`
	ViewsCount   int64                 `gorm:"not null"`
	CreatedAt    time.Time             `gorm:"index:idx_business_listings_ranking,priority:3"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "business_listings"
}
