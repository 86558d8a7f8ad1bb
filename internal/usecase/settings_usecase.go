package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// SettingsInput is a partial update of the directory settings. Nil fields are left unchanged.
type SettingsInput struct {
	Enabled                       *bool    `json:"enabled"`
	AutoApprove                   *bool    `json:"auto_approve"`
	MaxImages                     *int     `json:"max_images"`
	ShowInSitemap                 *bool    `json:"show_in_sitemap"`
	FeaturedLimit                 *int     `json:"featured_limit"`
	Locations                     []string `json:"locations"`
	Categories                    []string `json:"categories"`
	SubscriptionPlanID            *string  `json:"subscription_plan_id"`
	SendExpiryNotifications       *bool    `json:"send_expiry_notifications"`
	SendReactivationNotifications *bool    `json:"send_reactivation_notifications"`
}

// SettingsUsecase defines the interface for directory settings use cases
type SettingsUsecase interface {
	// GetSettings returns the stored settings, or the configured defaults when none are stored
	GetSettings(ctx context.Context) (*entity.DirectorySettings, error)

	// UpdateSettings validates and stores a partial settings update
	UpdateSettings(ctx context.Context, input *SettingsInput) (*entity.DirectorySettings, error)

	// AllowLists returns the live city and category allow-lists
	AllowLists(ctx context.Context) (entity.AllowLists, error)
}
