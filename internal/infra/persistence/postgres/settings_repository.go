package postgres

import (
	"context"
	"time"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the stored settings row.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.DirectorySettings, error) {
	var settingsM model.DirectorySettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.SettingsRowID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find directory settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Save creates or replaces the settings row.
func (repo *settingsRepository) Save(ctx context.Context, settings *entity.DirectorySettings) error {
	settingsM := fromSettingsDomain(settings)
	settingsM.UpdatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save directory settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

func toSettingsDomain(m *model.DirectorySettingsModel) *entity.DirectorySettings {
	return &entity.DirectorySettings{
		Enabled:                       m.Enabled,
		AutoApprove:                   m.AutoApprove,
		MaxImages:                     m.MaxImages,
		ShowInSitemap:                 m.ShowInSitemap,
		FeaturedLimit:                 m.FeaturedLimit,
		Locations:                     m.Locations,
		Categories:                    m.Categories,
		SubscriptionPlanID:            m.SubscriptionPlanID,
		SendExpiryNotifications:       m.SendExpiryNotifications,
		SendReactivationNotifications: m.SendReactivationNotifications,
		UpdatedAt:                     m.UpdatedAt,
	}
}

func fromSettingsDomain(s *entity.DirectorySettings) *model.DirectorySettingsModel {
	return &model.DirectorySettingsModel{
		ID:                            model.SettingsRowID,
		Enabled:                       s.Enabled,
		AutoApprove:                   s.AutoApprove,
		MaxImages:                     s.MaxImages,
		ShowInSitemap:                 s.ShowInSitemap,
		FeaturedLimit:                 s.FeaturedLimit,
		Locations:                     entity.CleanList(s.Locations),
		Categories:                    entity.CleanList(s.Categories),
		SubscriptionPlanID:            s.SubscriptionPlanID,
		SendExpiryNotifications:       s.SendExpiryNotifications,
		SendReactivationNotifications: s.SendReactivationNotifications,
	}
}
