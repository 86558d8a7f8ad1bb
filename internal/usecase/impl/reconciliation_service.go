package impl

import (
	"context"
	"log/slog"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/constants"
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
	defaultSweepBatchSize = 200

	transitionDeactivated = "deactivated"
	transitionReactivated = "reactivated"
)

// outcome is the result of reconciling one listing.
type outcome int

const (
	outcomeUnchanged outcome = iota
	outcomeTransitioned
	outcomeSkipped
	outcomeFailed
)

// reconciliationService implements the ReconciliationUsecase interface.
type reconciliationService struct {
	listingRepo     repository.ListingRepository
	entitlementRepo repository.EntitlementRepository
	settings        usecase.SettingsUsecase
	entitlements    service.EntitlementService
	notifier        service.NotificationService
	publisher       service.EventPublisher
	metrics         service.DirectoryMetrics
	config          *config.Config
	logger          *slog.Logger
	now             func() time.Time
}

// ReconciliationServiceParams holds dependencies for ReconciliationService, injected by Fx.
type ReconciliationServiceParams struct {
	fx.In

	ListingRepo     repository.ListingRepository
	EntitlementRepo repository.EntitlementRepository
	Settings        usecase.SettingsUsecase
	Entitlements    service.EntitlementService
	Notifier        service.NotificationService
	Publisher       service.EventPublisher
	Metrics         service.DirectoryMetrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReconciliationService is the constructor for reconciliationService.
func NewReconciliationService(params ReconciliationServiceParams) usecase.ReconciliationUsecase {
	return &reconciliationService{
		listingRepo:     params.ListingRepo,
		entitlementRepo: params.EntitlementRepo,
		settings:        params.Settings,
		entitlements:    params.Entitlements,
		notifier:        params.Notifier,
		publisher:       params.Publisher,
		metrics:         params.Metrics,
		config:          params.Config,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *reconciliationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reconciliationService) batchSize() int {
	if srv.config.Scheduler != nil && srv.config.Scheduler.BatchSize > 0 {
		return srv.config.Scheduler.BatchSize
	}

	return defaultSweepBatchSize
}

// gatedSettings returns the settings, or nil when reconciliation has nothing to enforce.
func (srv *reconciliationService) gatedSettings(ctx context.Context, job string) (*entity.DirectorySettings, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled || settings.SubscriptionPlanID == "" {
		srv.log(ctx).Info("Reconciliation skipped",
			slog.String("job", job),
			slog.Bool("enabled", settings.Enabled),
			slog.Bool("gated", settings.SubscriptionPlanID != ""),
		)

		return nil, nil
	}

	return settings, nil
}

// DeactivateExpired deactivates active listings whose owner no longer qualifies.
func (srv *reconciliationService) DeactivateExpired(ctx context.Context) (*usecase.SweepResult, error) {
	return srv.sweep(ctx, usecase.JobDeactivateExpired, true, srv.deactivateIfExpired)
}

// ReactivateRenewed reactivates inactive listings whose owner qualifies again.
func (srv *reconciliationService) ReactivateRenewed(ctx context.Context) (*usecase.SweepResult, error) {
	return srv.sweep(ctx, usecase.JobReactivateRenewed, false, srv.reactivateIfRenewed)
}

type reconcileFunc func(ctx context.Context, settings *entity.DirectorySettings, listing *entity.Listing) outcome

// sweep pages through the listings with the given active state in id order
// and reconciles each one independently.
func (srv *reconciliationService) sweep(ctx context.Context, job string, active bool, reconcile reconcileFunc) (*usecase.SweepResult, error) {
	start := time.Now()
	result := &usecase.SweepResult{Job: job}

	settings, err := srv.gatedSettings(ctx, job)
	if err != nil || settings == nil {
		return result, err
	}

	size := srv.batchSize()
	cursor := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)

			return result, errors.Wrapf(err, "%s sweep interrupted", job)
		}

		batch, err := srv.listingRepo.FindBatch(ctx, active, cursor, size)
		if err != nil {
			result.Duration = time.Since(start)

			return result, errors.Wrap(err, "failed to load listing batch")
		}

		for _, listing := range batch {
			if err := ctx.Err(); err != nil {
				result.Duration = time.Since(start)

				return result, errors.Wrapf(err, "%s sweep interrupted", job)
			}

			result.Scanned++
			record(result, reconcile(ctx, settings, listing))
			cursor = listing.ID
		}

		if len(batch) < size {
			break
		}
	}

	result.Duration = time.Since(start)
	srv.log(ctx).Info("Reconciliation sweep finished",
		slog.String("job", job),
		slog.Int("scanned", result.Scanned),
		slog.Int("transitioned", result.Transitioned),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

// ReconcileUser applies both transitions to the listings of one user.
func (srv *reconciliationService) ReconcileUser(ctx context.Context, userID uuid.UUID) (*usecase.SweepResult, error) {
	start := time.Now()
	result := &usecase.SweepResult{Job: usecase.JobReconcileUser}

	settings, err := srv.gatedSettings(ctx, usecase.JobReconcileUser)
	if err != nil || settings == nil {
		return result, err
	}

	listings, err := srv.listingRepo.FindByUser(ctx, userID)
	if err != nil {
		return result, errors.Wrap(err, "failed to find user listings")
	}

	for _, listing := range listings {
		result.Scanned++
		if listing.IsActive {
			record(result, srv.deactivateIfExpired(ctx, settings, listing))
		} else {
			record(result, srv.reactivateIfRenewed(ctx, settings, listing))
		}
	}

	result.Duration = time.Since(start)
	srv.log(ctx).Info("User listings reconciled",
		slog.String("user_id", userID.String()),
		slog.Int("scanned", result.Scanned),
		slog.Int("transitioned", result.Transitioned),
	)

	return result, nil
}

// ApplyEntitlementChange stores the entitlement and reconciles the user's listings.
func (srv *reconciliationService) ApplyEntitlementChange(ctx context.Context, change usecase.EntitlementChange) (*usecase.SweepResult, error) {
	if change.UserID == uuid.Nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "user_id", Message: "can't be blank"})
	}

	entitlement := &entity.Entitlement{
		UserID:           change.UserID,
		PlanID:           change.PlanID,
		Status:           change.Status,
		CurrentPeriodEnd: change.CurrentPeriodEnd,
		UpdatedAt:        srv.now().UTC(),
	}
	if err := srv.entitlementRepo.Upsert(ctx, entitlement); err != nil {
		return nil, errors.Wrap(err, "failed to store entitlement")
	}

	return srv.ReconcileUser(ctx, change.UserID)
}

func (srv *reconciliationService) deactivateIfExpired(ctx context.Context, settings *entity.DirectorySettings, listing *entity.Listing) outcome {
	qualifies, err := srv.entitlements.HasQualifyingEntitlement(ctx, listing.UserID)
	if err != nil {
		return srv.fail(ctx, usecase.JobDeactivateExpired, listing, err)
	}
	if qualifies {
		return outcomeUnchanged
	}

	changed, err := srv.listingRepo.SetActive(ctx, listing.ID, false)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return outcomeSkipped
		}

		return srv.fail(ctx, usecase.JobDeactivateExpired, listing, err)
	}
	if !changed {
		return outcomeSkipped
	}

	listing.IsActive = false
	srv.transitioned(ctx, listing, transitionDeactivated, constants.EventListingDeactivated)
	if settings.SendExpiryNotifications {
		srv.notify(ctx, listing, "Directory listing expired",
			"Your directory listing has expired and is no longer visible. Renew your subscription to restore it.")
	}

	return outcomeTransitioned
}

func (srv *reconciliationService) reactivateIfRenewed(ctx context.Context, settings *entity.DirectorySettings, listing *entity.Listing) outcome {
	qualifies, err := srv.entitlements.HasQualifyingEntitlement(ctx, listing.UserID)
	if err != nil {
		return srv.fail(ctx, usecase.JobReactivateRenewed, listing, err)
	}
	if !qualifies {
		return outcomeUnchanged
	}

	current, err := srv.listingRepo.Reload(ctx, listing.ID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return outcomeSkipped
		}

		return srv.fail(ctx, usecase.JobReactivateRenewed, listing, err)
	}
	if current.IsActive {
		return outcomeSkipped
	}

	changed, err := srv.listingRepo.SetActive(ctx, current.ID, true)
	if err != nil {
		if errors.IsAny(err, repository.ErrActiveListingExists, repository.ErrListingNotFound) {
			srv.log(ctx).Info("Listing not reactivated",
				slog.String("listing_id", current.ID.String()),
				slog.String("user_id", current.UserID.String()),
				slog.String("reason", err.Error()),
			)

			return outcomeSkipped
		}

		return srv.fail(ctx, usecase.JobReactivateRenewed, current, err)
	}
	if !changed {
		return outcomeSkipped
	}

	listing.IsActive = true
	srv.transitioned(ctx, current, transitionReactivated, constants.EventListingReactivated)
	if settings.SendReactivationNotifications {
		srv.notify(ctx, current, "Directory listing reactivated",
			"Your directory listing has been reactivated and is visible again.")
	}

	return outcomeTransitioned
}

func (srv *reconciliationService) fail(ctx context.Context, job string, listing *entity.Listing, err error) outcome {
	srv.metrics.ReconciliationFailure(job)
	srv.log(ctx).Error("Failed to reconcile listing",
		slog.String("job", job),
		slog.String("listing_id", listing.ID.String()),
		slog.String("user_id", listing.UserID.String()),
		slog.Any("error", err),
	)

	return outcomeFailed
}

// transitioned records a state change and publishes it. Publishing is best-effort.
func (srv *reconciliationService) transitioned(ctx context.Context, listing *entity.Listing, transition, eventType string) {
	srv.metrics.ListingTransition(transition)
	srv.log(ctx).Info("Listing "+transition,
		slog.String("listing_id", listing.ID.String()),
		slog.String("user_id", listing.UserID.String()),
	)

	event := &service.ListingEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ListingID:  listing.ID.String(),
		UserID:     listing.UserID.String(),
		Slug:       listing.Slug,
		City:       listing.City,
		Category:   listing.Category,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishListingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish listing event",
			slog.String("type", eventType),
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err),
		)
	}
}

// notify pushes a message to the listing owner. Failures never undo the transition.
func (srv *reconciliationService) notify(ctx context.Context, listing *entity.Listing, title, body string) {
	data := map[string]string{
		"listing_id": listing.ID.String(),
		"slug":       listing.Slug,
		"url":        absoluteURL(srv.config, listing.ProfilePath()),
	}
	if err := srv.notifier.SendToUser(ctx, listing.UserID, title, body, data); err != nil {
		srv.log(ctx).Warn("Failed to send listing notification",
			slog.String("listing_id", listing.ID.String()),
			slog.String("user_id", listing.UserID.String()),
			slog.Any("error", err),
		)
	}
}

func record(result *usecase.SweepResult, o outcome) {
	switch o {
	case outcomeTransitioned:
		result.Transitioned++
	case outcomeSkipped:
		result.Skipped++
	case outcomeFailed:
		result.Failed++
	case outcomeUnchanged:
	}
}
