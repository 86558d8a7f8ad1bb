package impl

import (
	"context"
	"time"

	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// entitlementService answers entitlement questions from the locally stored
// billing state and the configured subscription plan.
type entitlementService struct {
	entitlementRepo repository.EntitlementRepository
	settings        usecase.SettingsUsecase
	now             func() time.Time
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	EntitlementRepo repository.EntitlementRepository
	Settings        usecase.SettingsUsecase
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) service.EntitlementService {
	return &entitlementService{
		entitlementRepo: params.EntitlementRepo,
		settings:        params.Settings,
		now:             time.Now,
	}
}

// HasQualifyingEntitlement reports whether the user holds the configured plan.
// Every user qualifies while no plan is configured.
func (srv *entitlementService) HasQualifyingEntitlement(ctx context.Context, userID uuid.UUID) (bool, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return false, err
	}
	if settings.SubscriptionPlanID == "" {
		return true, nil
	}

	entitlement, err := srv.entitlementRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEntitlementNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find entitlement")
	}

	return entitlement.Qualifies(settings.SubscriptionPlanID, srv.now()), nil
}
