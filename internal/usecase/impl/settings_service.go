// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/usecase"

	"go.uber.org/fx"
)

const maxImagesUpperBound = 50

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	config       *config.Config
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DefaultSettings builds the settings used until staff store their own.
func DefaultSettings(cfg *config.Config) *entity.DirectorySettings {
	settings := &entity.DirectorySettings{}
	if dir := cfg.Directory; dir != nil {
		settings.Enabled = dir.Enabled
		settings.AutoApprove = dir.AutoApprove
		settings.MaxImages = dir.MaxImages
		settings.ShowInSitemap = dir.ShowInSitemap
		settings.FeaturedLimit = dir.FeaturedLimit
		settings.Locations = entity.CleanList(dir.Locations)
		settings.Categories = entity.CleanList(dir.Categories)
		settings.SendExpiryNotifications = dir.SendExpiryNotifications
		settings.SendReactivationNotifications = dir.SendReactivationNotifications
	}
	if cfg.Entitlement != nil {
		settings.SubscriptionPlanID = cfg.Entitlement.PlanID
	}

	return settings
}

// GetSettings returns the stored settings, falling back to configuration.
func (srv *settingsService) GetSettings(ctx context.Context) (*entity.DirectorySettings, error) {
	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return DefaultSettings(srv.config), nil
		}

		return nil, errors.Wrap(err, "failed to get directory settings")
	}

	return settings, nil
}

// AllowLists returns the live allow-lists.
func (srv *settingsService) AllowLists(ctx context.Context) (entity.AllowLists, error) {
	settings, err := srv.GetSettings(ctx)
	if err != nil {
		return entity.AllowLists{}, err
	}

	return settings.AllowLists(), nil
}

// UpdateSettings applies a partial update and stores the result.
func (srv *settingsService) UpdateSettings(ctx context.Context, input *usecase.SettingsInput) (*entity.DirectorySettings, error) {
	settings, err := srv.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	applySettingsInput(settings, input)

	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := srv.settingsRepo.Save(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save directory settings")
	}

	srv.log(ctx).Info("Directory settings updated",
		slog.Bool("enabled", settings.Enabled),
		slog.Int("locations", len(settings.Locations)),
		slog.Int("categories", len(settings.Categories)),
	)

	return settings, nil
}

func applySettingsInput(settings *entity.DirectorySettings, input *usecase.SettingsInput) {
	if input == nil {
		return
	}
	if input.Enabled != nil {
		settings.Enabled = *input.Enabled
	}
	if input.AutoApprove != nil {
		settings.AutoApprove = *input.AutoApprove
	}
	if input.MaxImages != nil {
		settings.MaxImages = *input.MaxImages
	}
	if input.ShowInSitemap != nil {
		settings.ShowInSitemap = *input.ShowInSitemap
	}
	if input.FeaturedLimit != nil {
		settings.FeaturedLimit = *input.FeaturedLimit
	}
	if input.Locations != nil {
		settings.Locations = entity.CleanList(input.Locations)
	}
	if input.Categories != nil {
		settings.Categories = entity.CleanList(input.Categories)
	}
	if input.SubscriptionPlanID != nil {
		settings.SubscriptionPlanID = *input.SubscriptionPlanID
	}
	if input.SendExpiryNotifications != nil {
		settings.SendExpiryNotifications = *input.SendExpiryNotifications
	}
	if input.SendReactivationNotifications != nil {
		settings.SendReactivationNotifications = *input.SendReactivationNotifications
	}
}

func validateSettings(settings *entity.DirectorySettings) error {
	verr := domainerrors.NewValidationError()
	if settings.MaxImages < 1 || settings.MaxImages > maxImagesUpperBound {
		verr.Add("max_images", "must be between 1 and 50")
	}
	if settings.FeaturedLimit < 0 {
		verr.Add("featured_limit", "must be greater than or equal to 0")
	}
	if len(settings.Locations) == 0 {
		verr.Add("locations", "can't be blank")
	}
	if len(settings.Categories) == 0 {
		verr.Add("categories", "can't be blank")
	}

	return verr.ErrOrNil()
}
