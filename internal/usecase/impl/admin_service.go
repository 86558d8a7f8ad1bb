package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
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

const (
	defaultAdminPageSize = 50
	recentListingsLimit  = 10
	recentSignupsWindow  = 7 * 24 * time.Hour
	analyticsMonths      = 12
	analyticsGroupLimit  = 20
	mostViewedLimit      = 10
)

// statusAliases maps the admin status filter values accepted on the query string.
var statusAliases = map[string]entity.ListingStatus{
	"active":           entity.StatusActive,
	"inactive":         entity.StatusInactive,
	"featured":         entity.StatusFeatured,
	"pending":          entity.StatusPendingApproval,
	"pending_approval": entity.StatusPendingApproval,
}

var bulkPastTense = map[usecase.AdminAction]string{
	usecase.ActionApprove:    "approved",
	usecase.ActionFeature:    "featured",
	usecase.ActionUnfeature:  "unfeatured",
	usecase.ActionActivate:   "activated",
	usecase.ActionDeactivate: "deactivated",
	usecase.ActionDelete:     "deleted",
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	listingRepo repository.ListingRepository
	txManager   repository.TransactionManager
	settings    usecase.SettingsUsecase
	validator   *directory.Validator
	metrics     service.DirectoryMetrics
	config      *config.Config
	logger      *slog.Logger
	now         func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	TxManager   repository.TransactionManager
	Settings    usecase.SettingsUsecase
	Metrics     service.DirectoryMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		listingRepo: params.ListingRepo,
		txManager:   params.TxManager,
		settings:    params.Settings,
		validator:   directory.NewValidator(),
		metrics:     params.Metrics,
		config:      params.Config,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) pageSize() int {
	if srv.config.Directory != nil && srv.config.Directory.AdminPageSize > 0 {
		return srv.config.Directory.AdminPageSize
	}

	return defaultAdminPageSize
}

// GetDashboard returns the listing counters and the most recent listings.
func (srv *adminService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	stats, err := srv.listingRepo.Stats(ctx, srv.now().Add(-recentSignupsWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing stats")
	}

	recent, err := srv.listingRepo.Recent(ctx, recentListingsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent listings")
	}

	return &usecase.Dashboard{
		Stats:          stats,
		RecentListings: recent,
	}, nil
}

// ListListings returns a page of listings in any state with the stored facets.
func (srv *adminService) ListListings(ctx context.Context, query usecase.AdminListingQuery) (*usecase.AdminListingPage, error) {
	filter := entity.ListingFilter{
		Scope:    entity.ScopeAdminAll,
		City:     strings.TrimSpace(query.City),
		Category: strings.TrimSpace(query.Category),
		Search:   strings.TrimSpace(query.Search),
	}

	if status := strings.ToLower(strings.TrimSpace(query.Status)); status != "" && status != "all" {
		listingStatus, ok := statusAliases[status]
		if !ok {
			return nil, domainerrors.NewValidationError(domainerrors.FieldError{
				Field:   "status",
				Message: "is not a valid status",
			})
		}
		filter.Scope = entity.ScopeAdminStatus
		filter.Status = listingStatus
	}

	page, err := findPage(ctx, srv.listingRepo, filter, query.Page, srv.pageSize())
	if err != nil {
		return nil, err
	}

	cities, err := srv.listingRepo.DistinctValues(ctx, repository.GroupByCity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	categories, err := srv.listingRepo.DistinctValues(ctx, repository.GroupByCategory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.AdminListingPage{
		ListingPage: page,
		Cities:      cities,
		Categories:  categories,
	}, nil
}

// UpdateListing applies a moderation action or a field update to a listing.
func (srv *adminService) UpdateListing(ctx context.Context, id uuid.UUID, update usecase.AdminListingUpdate) (*usecase.AdminUpdateResult, error) {
	listing, err := findListing(ctx, srv.listingRepo, id)
	if err != nil {
		return nil, err
	}

	action := update.Action
	if action == "" {
		action = usecase.ActionUpdate
	}

	switch action {
	case usecase.ActionApprove, usecase.ActionFeature, usecase.ActionUnfeature,
		usecase.ActionActivate, usecase.ActionDeactivate, usecase.ActionUpdatePriority:
		if err := srv.checkPlacement(ctx, listing); err != nil {
			return nil, err
		}
	}

	var message string
	switch action {
	case usecase.ActionApprove:
		err = srv.setFlags(ctx, []uuid.UUID{id}, repository.ListingFlags{Approved: boolPtr(true)})
		message = "Listing approved"
	case usecase.ActionFeature:
		_, err = srv.featureListings(ctx, []uuid.UUID{id})
		message = "Listing featured"
	case usecase.ActionUnfeature:
		err = srv.setFlags(ctx, []uuid.UUID{id}, repository.ListingFlags{Featured: boolPtr(false)})
		message = "Listing unfeatured"
	case usecase.ActionActivate:
		_, err = srv.setActive(ctx, id, true)
		message = "Listing activated"
	case usecase.ActionDeactivate:
		_, err = srv.setActive(ctx, id, false)
		message = "Listing deactivated"
	case usecase.ActionUpdatePriority:
		if update.Priority == nil {
			return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "priority", Message: "can't be blank"})
		}
		err = srv.listingRepo.SetPriority(ctx, id, *update.Priority)
		message = "Priority updated"
	case usecase.ActionUpdate:
		err = srv.updateFields(ctx, listing, update.Fields)
		message = "Listing updated"
	case usecase.ActionDelete:
		if err := srv.DeleteListing(ctx, id); err != nil {
			return nil, err
		}

		return &usecase.AdminUpdateResult{Message: "Listing deleted"}, nil
	default:
		return nil, errors.Wrapf(domainerrors.ErrInvalidBulkAction, "unknown action %q", action)
	}
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing deleted during update")
		}

		return nil, err
	}

	updated, err := findListing(ctx, srv.listingRepo, id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Listing moderated",
		slog.String("listing_id", id.String()),
		slog.String("action", string(action)),
	)

	return &usecase.AdminUpdateResult{
		Listing: updated,
		Message: message,
	}, nil
}

// updateFields writes staff edits: content, moderation flags, priority and activation.
func (srv *adminService) updateFields(ctx context.Context, listing *entity.Listing, fields *usecase.AdminListingFields) error {
	if fields == nil {
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: "listing", Message: "can't be blank"})
	}

	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return err
	}

	lists := settings.AllowLists()
	input := directory.Normalize(fields.ListingInput, lists)
	if err := srv.validator.ValidateListing(input, lists, settings.MaxImages); err != nil {
		return err
	}

	featuring := fields.Featured != nil && *fields.Featured && !listing.Featured
	activation := fields.IsActive != nil && *fields.IsActive != listing.IsActive

	input.Apply(listing)
	if fields.Approved != nil {
		listing.Approved = *fields.Approved
	}
	if fields.Featured != nil {
		listing.Featured = *fields.Featured
	}
	if fields.Priority != nil {
		listing.Priority = *fields.Priority
	}
	listing.UpdatedAt = srv.now().UTC()

	// The edit is discarded when the activation change is refused.
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		listingRepo := repos.NewListingRepository()

		if featuring {
			if err := listingRepo.LockFeatured(ctx); err != nil {
				return err
			}
			if err := ensureFeaturedCapacity(ctx, listingRepo, settings.FeaturedLimit, 1); err != nil {
				return err
			}
		}

		if err := listingRepo.Update(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to update listing")
		}

		if activation {
			if _, err := listingRepo.SetActive(ctx, listing.ID, *fields.IsActive); err != nil {
				if errors.Is(err, repository.ErrActiveListingExists) {
					return activeListingConflict()
				}

				return err
			}
		}

		return nil
	})
}

// DeleteListing removes a listing.
func (srv *adminService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := srv.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	srv.log(ctx).Info("Listing deleted by staff", slog.String("listing_id", id.String()))

	return nil
}

// BulkAction applies an action to several listings. Activation and
// deactivation run per listing so one conflict does not abort the batch.
func (srv *adminService) BulkAction(ctx context.Context, action usecase.AdminAction, ids []uuid.UUID) (*usecase.BulkResult, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoListingsSelected)
	}

	var (
		affected int64
		err      error
	)
	switch action {
	case usecase.ActionApprove:
		affected, err = srv.listingRepo.SetFlags(ctx, ids, repository.ListingFlags{Approved: boolPtr(true)})
	case usecase.ActionFeature:
		affected, err = srv.featureListings(ctx, ids)
	case usecase.ActionUnfeature:
		affected, err = srv.listingRepo.SetFlags(ctx, ids, repository.ListingFlags{Featured: boolPtr(false)})
	case usecase.ActionActivate, usecase.ActionDeactivate:
		affected, err = srv.bulkSetActive(ctx, ids, action == usecase.ActionActivate)
	case usecase.ActionDelete:
		affected, err = srv.listingRepo.DeleteMany(ctx, ids)
	default:
		return nil, errors.Wrapf(domainerrors.ErrInvalidBulkAction, "unknown bulk action %q", action)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s listings", action)
	}

	srv.metrics.BulkAction(string(action), int(affected))
	srv.log(ctx).Info("Bulk action applied",
		slog.String("action", string(action)),
		slog.Int("requested", len(ids)),
		slog.Int64("affected", affected),
	)

	return &usecase.BulkResult{
		Action:   action,
		Affected: affected,
		Skipped:  int64(len(ids)) - affected,
		Message:  fmt.Sprintf("%d listings %s", affected, bulkPastTense[action]),
	}, nil
}

// featureListings features the listings that are not featured yet, failing
// when that would exceed the featured limit. Concurrent callers are serialized
// by the featured lock, so the count stays valid until the update commits.
func (srv *adminService) featureListings(ctx context.Context, ids []uuid.UUID) (int64, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return 0, err
	}

	var affected int64
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		listingRepo := repos.NewListingRepository()
		if err := listingRepo.LockFeatured(ctx); err != nil {
			return err
		}

		pending := make([]uuid.UUID, 0, len(ids))
		for _, id := range ids {
			listing, err := listingRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrListingNotFound) {
					continue
				}

				return err
			}
			if !listing.Featured {
				pending = append(pending, id)
			}
		}
		if len(pending) == 0 {
			return nil
		}

		if err := ensureFeaturedCapacity(ctx, listingRepo, settings.FeaturedLimit, len(pending)); err != nil {
			return err
		}

		n, err := listingRepo.SetFlags(ctx, pending, repository.ListingFlags{Featured: boolPtr(true)})
		affected = n

		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

func (srv *adminService) bulkSetActive(ctx context.Context, ids []uuid.UUID, active bool) (int64, error) {
	var affected int64
	for _, id := range ids {
		changed, err := srv.setActive(ctx, id, active)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) || errors.Is(err, domainerrors.ErrValidationFailed) {
				srv.log(ctx).Warn("Skipping listing in bulk action",
					slog.String("listing_id", id.String()),
					slog.Bool("active", active),
					slog.Any("error", err),
				)

				continue
			}

			return affected, err
		}
		if changed {
			affected++
		}
	}

	return affected, nil
}

func (srv *adminService) setFlags(ctx context.Context, ids []uuid.UUID, flags repository.ListingFlags) error {
	if _, err := srv.listingRepo.SetFlags(ctx, ids, flags); err != nil {
		return errors.Wrap(err, "failed to update listing flags")
	}

	return nil
}

func (srv *adminService) setActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	changed, err := srv.listingRepo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, repository.ErrActiveListingExists) {
			return false, activeListingConflict()
		}

		return false, err
	}

	return changed, nil
}

// checkPlacement rejects moderating a listing whose city or category has been
// removed from the allow-lists since it was saved.
func (srv *adminService) checkPlacement(ctx context.Context, listing *entity.Listing) error {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return err
	}

	return srv.validator.ValidatePlacement(listing, settings.AllowLists())
}

func ensureFeaturedCapacity(ctx context.Context, listingRepo repository.ListingRepository, limit, adding int) error {
	if limit <= 0 {
		return nil
	}

	featured, err := listingRepo.Count(ctx, entity.ListingFilter{
		Scope:  entity.ScopeAdminStatus,
		Status: entity.StatusFeatured,
	})
	if err != nil {
		return errors.Wrap(err, "failed to count featured listings")
	}
	if featured+int64(adding) > int64(limit) {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "featured",
			Message: fmt.Sprintf("limit of %d featured listings reached", limit),
		})
	}

	return nil
}

// GetAnalytics returns listing creation per month over the last year, the
// top cities and categories and the most viewed visible listings.
func (srv *adminService) GetAnalytics(ctx context.Context) (*usecase.Analytics, error) {
	now := srv.now().UTC()
	start := time.Date(now.Year(), now.Month()-(analyticsMonths-1), 1, 0, 0, 0, 0, time.UTC)

	created, err := srv.listingRepo.CreatedSince(ctx, start.Add(-time.Nanosecond))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creation times")
	}

	byMonth := make([]usecase.MonthCount, analyticsMonths)
	index := make(map[string]int, analyticsMonths)
	for i := range byMonth {
		month := start.AddDate(0, i, 0).Format("2006-01")
		byMonth[i] = usecase.MonthCount{Month: month}
		index[month] = i
	}
	for _, createdAt := range created {
		if i, ok := index[createdAt.UTC().Format("2006-01")]; ok {
			byMonth[i].Count++
		}
	}

	byCity, err := srv.listingRepo.CountByGroup(ctx, repository.GroupByCity, analyticsGroupLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count listings by city")
	}

	byCategory, err := srv.listingRepo.CountByGroup(ctx, repository.GroupByCategory, analyticsGroupLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count listings by category")
	}

	mostViewed, err := srv.listingRepo.MostViewed(ctx, mostViewedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find most viewed listings")
	}

	return &usecase.Analytics{
		ByMonth:    byMonth,
		ByCity:     byCity,
		ByCategory: byCategory,
		MostViewed: mostViewed,
	}, nil
}

// RemoveUserListings deletes every listing of a removed user.
func (srv *adminService) RemoveUserListings(ctx context.Context, userID uuid.UUID) (int64, error) {
	deleted, err := srv.listingRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete user listings")
	}

	srv.log(ctx).Info("User listings removed",
		slog.String("user_id", userID.String()),
		slog.Int64("deleted", deleted),
	)

	return deleted, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || slices.Contains(unique, id) {
			continue
		}
		unique = append(unique, id)
	}

	return unique
}

func boolPtr(v bool) *bool {
	return &v
}
