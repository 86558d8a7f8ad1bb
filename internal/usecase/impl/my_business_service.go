package impl

import (
	"context"
	"log/slog"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/directory"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// maxSlugAttempts bounds slug generation when concurrent creates race for the same name.
const maxSlugAttempts = 20

// myBusinessService implements the MyBusinessUsecase interface.
type myBusinessService struct {
	listingRepo  repository.ListingRepository
	settings     usecase.SettingsUsecase
	entitlements service.EntitlementService
	validator    *directory.Validator
	config       *config.Config
	logger       *slog.Logger
}

// MyBusinessServiceParams holds dependencies for MyBusinessService, injected by Fx.
type MyBusinessServiceParams struct {
	fx.In

	ListingRepo  repository.ListingRepository
	Settings     usecase.SettingsUsecase
	Entitlements service.EntitlementService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMyBusinessService is the constructor for myBusinessService.
func NewMyBusinessService(params MyBusinessServiceParams) usecase.MyBusinessUsecase {
	return &myBusinessService{
		listingRepo:  params.ListingRepo,
		settings:     params.Settings,
		entitlements: params.Entitlements,
		validator:    directory.NewValidator(),
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (srv *myBusinessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *myBusinessService) enabledSettings(ctx context.Context) (*entity.DirectorySettings, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "directory disabled")
	}

	return settings, nil
}

// GetMyBusiness returns the caller's active listing and the form choices.
func (srv *myBusinessService) GetMyBusiness(ctx context.Context, actor entity.Actor) (*usecase.MyBusiness, error) {
	settings, err := srv.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}

	listing, err := srv.listingRepo.FindActiveByUser(ctx, actor.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(err, "failed to find active listing")
		}
		listing = nil
	}

	entitled, err := srv.entitlements.HasQualifyingEntitlement(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check entitlement")
	}

	lists := settings.AllowLists()

	return &usecase.MyBusiness{
		Listing:   listing,
		CanCreate: entitled && listing == nil,
		Config: usecase.FormConfig{
			Cities:     lists.SortedCities(),
			Categories: lists.SortedCategories(),
			MaxImages:  settings.MaxImages,
		},
	}, nil
}

// CreateListing publishes a new active listing for the caller.
func (srv *myBusinessService) CreateListing(ctx context.Context, actor entity.Actor, input directory.ListingInput) (*entity.Listing, error) {
	settings, err := srv.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}

	qualifies, err := srv.entitlements.HasQualifyingEntitlement(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check entitlement")
	}
	if !qualifies {
		return nil, errors.WithStack(domainerrors.ErrEntitlementRequired)
	}

	if _, err := srv.listingRepo.FindActiveByUser(ctx, actor.UserID); err == nil {
		return nil, activeListingConflict()
	} else if !errors.Is(err, repository.ErrListingNotFound) {
		return nil, errors.Wrap(err, "failed to find active listing")
	}

	lists := settings.AllowLists()
	input = directory.Normalize(input, lists)
	if err := srv.validator.ValidateListing(input, lists, settings.MaxImages); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	listing := &entity.Listing{
		UserID:    actor.UserID,
		Approved:  settings.AutoApprove,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(listing)

	if err := srv.insertWithUniqueSlug(ctx, listing); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing created",
		slog.String("listing_id", listing.ID.String()),
		slog.String("user_id", actor.UserID.String()),
		slog.String("slug", listing.Slug),
	)

	return listing, nil
}

// insertWithUniqueSlug picks the first free slug candidate and inserts the listing.
// A unique index race moves on to the next candidate.
func (srv *myBusinessService) insertWithUniqueSlug(ctx context.Context, listing *entity.Listing) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := directory.SlugCandidate(listing.BusinessName, attempt)

		taken, err := srv.listingRepo.SlugExists(ctx, candidate)
		if err != nil {
			return errors.Wrap(err, "failed to check slug")
		}
		if taken {
			continue
		}

		listing.Slug = candidate
		err = srv.listingRepo.Create(ctx, listing)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrSlugTaken):
			continue
		case errors.Is(err, repository.ErrActiveListingExists):
			return activeListingConflict()
		default:
			return errors.Wrap(err, "failed to create listing")
		}
	}

	return errors.Errorf("no free slug for %q after %d attempts", listing.BusinessName, maxSlugAttempts)
}

// UpdateListing edits the content of a listing the caller may manage.
func (srv *myBusinessService) UpdateListing(ctx context.Context, actor entity.Actor, id uuid.UUID, input directory.ListingInput) (*entity.Listing, error) {
	settings, err := srv.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}

	listing, err := srv.manageableListing(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	lists := settings.AllowLists()
	input = directory.Normalize(input, lists)
	if err := srv.validator.ValidateListing(input, lists, settings.MaxImages); err != nil {
		return nil, err
	}

	input.Apply(listing)
	listing.UpdatedAt = time.Now().UTC()

	if err := srv.listingRepo.Update(ctx, listing); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing deleted during update")
		}

		return nil, errors.Wrap(err, "failed to update listing")
	}

	return listing, nil
}

// DeleteListing removes a listing the caller may manage.
func (srv *myBusinessService) DeleteListing(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	if _, err := srv.enabledSettings(ctx); err != nil {
		return err
	}

	listing, err := srv.manageableListing(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := srv.listingRepo.Delete(ctx, listing.ID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing already deleted")
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	srv.log(ctx).Info("Listing deleted",
		slog.String("listing_id", listing.ID.String()),
		slog.String("actor_id", actor.UserID.String()),
	)

	return nil
}

func (srv *myBusinessService) manageableListing(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Listing, error) {
	listing, err := findListing(ctx, srv.listingRepo, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(listing) {
		return nil, errors.WithStack(domainerrors.ErrListingAccessDenied)
	}

	return listing, nil
}
