package impl

import (
	"context"
	"strings"

	"directory/config"
	"directory/internal/domain/directory"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
)

// findPage runs a listing query and computes its pagination.
func findPage(ctx context.Context, repo repository.ListingRepository, filter entity.ListingFilter, page, pageSize int) (usecase.ListingPage, error) {
	page = directory.NormalizePage(page)

	total, err := repo.Count(ctx, filter)
	if err != nil {
		return usecase.ListingPage{}, errors.Wrap(err, "failed to count listings")
	}

	result := usecase.ListingPage{
		Listings:   []*entity.Listing{},
		Pagination: directory.NewPagination(page, pageSize, total),
	}
	if directory.PastEnd(page, pageSize, total) {
		return result, nil
	}

	result.Listings, err = repo.Find(ctx, filter, directory.Offset(page, pageSize), pageSize)
	if err != nil {
		return usecase.ListingPage{}, errors.Wrap(err, "failed to find listings")
	}

	return result, nil
}

// findListing loads a listing by id, translating a missing row into NotFound.
func findListing(ctx context.Context, repo repository.ListingRepository, id uuid.UUID) (*entity.Listing, error) {
	listing, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// siteBaseURL returns the absolute origin used in canonical URLs.
func siteBaseURL(cfg *config.Config) string {
	if cfg.Directory == nil {
		return ""
	}
	if cfg.Directory.BaseURL != "" {
		return strings.TrimRight(cfg.Directory.BaseURL, "/")
	}
	if cfg.Directory.SiteName != "" {
		return "https://" + strings.ToLower(cfg.Directory.SiteName)
	}

	return ""
}

func siteName(cfg *config.Config) string {
	if cfg.Directory == nil {
		return ""
	}

	return cfg.Directory.SiteName
}

// absoluteURL joins the site origin and a root-relative path.
func absoluteURL(cfg *config.Config, path string) string {
	return siteBaseURL(cfg) + path
}

// activeListingConflict is the validation error reported for a second active listing.
func activeListingConflict() error {
	return domainerrors.NewValidationError(domainerrors.FieldError{
		Field:   "user_id",
		Message: "can only have one active business listing",
	})
}
