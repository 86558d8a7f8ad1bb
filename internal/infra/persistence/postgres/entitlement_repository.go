package postgres

import (
	"context"
	"time"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entitlementRepository implements the repository.EntitlementRepository interface.
type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository is the constructor for entitlementRepository.
func NewEntitlementRepository(db *gorm.DB) repository.EntitlementRepository {
	return &entitlementRepository{
		db: db,
	}
}

// Upsert creates or replaces the entitlement of a user.
func (repo *entitlementRepository) Upsert(ctx context.Context, entitlement *entity.Entitlement) error {
	entitlementM := &model.EntitlementModel{
		UserID:           entitlement.UserID,
		PlanID:           entitlement.PlanID,
		Status:           string(entitlement.Status),
		CurrentPeriodEnd: entitlement.CurrentPeriodEnd,
		UpdatedAt:        time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(entitlementM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert entitlement")
	}

	entitlement.UpdatedAt = entitlementM.UpdatedAt

	return nil
}

// FindByUser retrieves the entitlement of a user.
func (repo *entitlementRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Entitlement, error) {
	var entitlementM model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&entitlementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntitlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find entitlement by user")
	}

	return &entity.Entitlement{
		UserID:           entitlementM.UserID,
		PlanID:           entitlementM.PlanID,
		Status:           entity.EntitlementStatus(entitlementM.Status),
		CurrentPeriodEnd: entitlementM.CurrentPeriodEnd,
		UpdatedAt:        entitlementM.UpdatedAt,
	}, nil
}
