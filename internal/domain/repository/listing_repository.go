// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrListingNotFound is returned when a listing does not exist.
	ErrListingNotFound = errors.New("listing not found")

	// ErrActiveListingExists is returned when a write would give a user a second active listing.
	ErrActiveListingExists = errors.New("user already has an active listing")

	// ErrSlugTaken is returned when a listing slug is already in use.
	ErrSlugTaken = errors.New("listing slug already taken")
)

// ListingFlags are the moderation flags updated in bulk. Nil fields are left unchanged.
type ListingFlags struct {
	Approved *bool
	Featured *bool
}

// ListingGroup is a column listings can be grouped by.
type ListingGroup string

const (
	GroupByCity     ListingGroup = "city"
	GroupByCategory ListingGroup = "category"
)

// ListingRepository defines the persistence operations for business listings.
type ListingRepository interface {
	// Create persists a new listing. Returns ErrSlugTaken or ErrActiveListingExists on constraint violations.
	Create(ctx context.Context, listing *entity.Listing) error

	// Update writes the editable content and moderation fields of a listing.
	// The slug, owner, views counter and active flag are never written.
	Update(ctx context.Context, listing *entity.Listing) error

	// Delete removes a listing.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteMany removes the listings with the given ids and returns the number removed.
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)

	// DeleteByUser removes every listing of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindByID retrieves a listing by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// Reload retrieves a listing by id from the primary database.
	Reload(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindBySlug retrieves a listing by slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Listing, error)

	// FindActiveByUser retrieves the active listing of a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Listing, error)

	// FindByUser retrieves every listing of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)

	// SlugExists reports whether a slug is already in use.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Find returns the listings matching the filter in display order.
	Find(ctx context.Context, filter entity.ListingFilter, offset, limit int) ([]*entity.Listing, error)

	// Recent returns the most recently created listings in any state, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.Listing, error)

	// Count returns the number of listings matching the filter.
	Count(ctx context.Context, filter entity.ListingFilter) (int64, error)

	// FindBatch returns up to limit listings with the given active state and an id greater than after, ordered by id.
	FindBatch(ctx context.Context, active bool, after uuid.UUID, limit int) ([]*entity.Listing, error)

	// IncrementViews atomically adds one to the views counter.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// SetActive flips the active flag when it differs and reports whether the row changed.
	// Returns ErrActiveListingExists when activation violates the one-active-per-user constraint.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)

	// SetFlags updates moderation flags of the given listings and returns the number updated.
	SetFlags(ctx context.Context, ids []uuid.UUID, flags ListingFlags) (int64, error)

	// LockFeatured serializes featured-limit checks until the surrounding
	// transaction ends. Outside a transaction the lock is released immediately.
	LockFeatured(ctx context.Context) error

	// SetPriority updates the ranking priority of a listing.
	SetPriority(ctx context.Context, id uuid.UUID, priority int) error

	// Stats returns the dashboard counters; RecentSignups counts listings created after since.
	Stats(ctx context.Context, since time.Time) (*entity.ListingStats, error)

	// CountByGroup returns listing counts per value of the column, largest first.
	CountByGroup(ctx context.Context, group ListingGroup, limit int) ([]entity.ValueCount, error)

	// MostViewed returns the visible listings with the highest views counter.
	MostViewed(ctx context.Context, limit int) ([]*entity.Listing, error)

	// CreatedSince returns the creation times of listings created after since.
	CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)

	// DistinctValues returns the sorted distinct values of the column over all listings.
	DistinctValues(ctx context.Context, group ListingGroup) ([]string, error)

	// CityCategoryCounts returns the visible listing counts per city/category pair.
	CityCategoryCounts(ctx context.Context) ([]entity.CityCategory, error)
}
