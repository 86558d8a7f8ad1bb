package usecase

import (
	"context"

	"directory/internal/domain/directory"
	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminAction is a moderation action applied to one or more listings
type AdminAction string

const (
	ActionApprove        AdminAction = "approve"
	ActionFeature        AdminAction = "feature"
	ActionUnfeature      AdminAction = "unfeature"
	ActionActivate       AdminAction = "activate"
	ActionDeactivate     AdminAction = "deactivate"
	ActionUpdatePriority AdminAction = "update_priority"
	ActionDelete         AdminAction = "delete"
	// ActionUpdate edits listing fields; it is the default when no action is named.
	ActionUpdate AdminAction = "update"
)

// Dashboard is the admin overview
type Dashboard struct {
	Stats          *entity.ListingStats
	RecentListings []*entity.Listing
}

// AdminListingQuery holds the admin listing filters
type AdminListingQuery struct {
	Status   string
	City     string
	Category string
	Search   string
	Page     int
}

// AdminListingPage is a page of listings with the facets present in storage
type AdminListingPage struct {
	ListingPage
	Cities     []string
	Categories []string
}

// AdminListingUpdate is a single-listing moderation request
type AdminListingUpdate struct {
	Action   AdminAction
	Priority *int
	Fields   *AdminListingFields
}

// AdminListingFields is the staff-editable content of a listing
type AdminListingFields struct {
	directory.ListingInput
	Approved *bool `json:"approved"`
	Featured *bool `json:"featured"`
	IsActive *bool `json:"is_active"`
	Priority *int  `json:"priority"`
}

// AdminUpdateResult reports the outcome of a single-listing action
type AdminUpdateResult struct {
	Listing *entity.Listing
	Message string
}

// BulkResult reports the outcome of a bulk action
type BulkResult struct {
	Action   AdminAction
	Affected int64
	Skipped  int64
	Message  string
}

// MonthCount is the number of listings created in a calendar month ("2006-01")
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// Analytics is the admin analytics report
type Analytics struct {
	ByMonth    []MonthCount
	ByCity     []entity.ValueCount
	ByCategory []entity.ValueCount
	MostViewed []*entity.Listing
}

// AdminUsecase defines the interface for staff moderation use cases
type AdminUsecase interface {
	// GetDashboard returns the listing counters and the most recent listings
	GetDashboard(ctx context.Context) (*Dashboard, error)

	// ListListings returns a page of listings in any state
	ListListings(ctx context.Context, query AdminListingQuery) (*AdminListingPage, error)

	// UpdateListing applies a moderation action or field update to a listing
	UpdateListing(ctx context.Context, id uuid.UUID, update AdminListingUpdate) (*AdminUpdateResult, error)

	// DeleteListing removes a listing
	DeleteListing(ctx context.Context, id uuid.UUID) error

	// BulkAction applies an action to several listings
	BulkAction(ctx context.Context, action AdminAction, ids []uuid.UUID) (*BulkResult, error)

	// GetAnalytics returns listings by month, the top cities and categories and the most viewed listings
	GetAnalytics(ctx context.Context) (*Analytics, error)

	// RemoveUserListings deletes every listing of a user
	RemoveUserListings(ctx context.Context, userID uuid.UUID) (int64, error)
}
