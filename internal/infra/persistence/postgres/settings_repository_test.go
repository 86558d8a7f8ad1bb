package postgres_test

import (
	"context"
	"testing"
	"time"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/postgres"
	"directory/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewSettingsRepository(testdb.Open(t))

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, repository.ErrSettingsNotFound)

	settings := &entity.DirectorySettings{
		Enabled:       true,
		AutoApprove:   false,
		MaxImages:     6,
		FeaturedLimit: 3,
		Locations:     []string{"London", " Leeds ", ""},
		Categories:    []string{"Wedding"},
	}
	require.NoError(t, repo.Save(ctx, settings))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.Enabled)
	assert.False(t, stored.AutoApprove)
	assert.Equal(t, 6, stored.MaxImages)
	assert.Equal(t, []string{"London", "Leeds"}, stored.Locations)

	settings.Enabled = false
	settings.Categories = []string{"Wedding", "Portrait"}
	require.NoError(t, repo.Save(ctx, settings))

	stored, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored.Enabled)
	assert.Equal(t, []string{"Wedding", "Portrait"}, stored.Categories)
}

func TestEntitlementRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewEntitlementRepository(testdb.Open(t))
	userID := uuid.New()

	_, err := repo.FindByUser(ctx, userID)
	require.ErrorIs(t, err, repository.ErrEntitlementNotFound)

	periodEnd := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &entity.Entitlement{
		UserID:           userID,
		PlanID:           "pro",
		Status:           entity.EntitlementActive,
		CurrentPeriodEnd: &periodEnd,
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.Entitlement{
		UserID: userID,
		PlanID: "pro",
		Status: entity.EntitlementCanceled,
	}))

	found, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.EntitlementCanceled, found.Status)
	assert.Nil(t, found.CurrentPeriodEnd)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	txManager := postgres.NewTransactionManager(db)
	listings := postgres.NewListingRepository(db)

	listing := newListing("acme", "London", "Wedding")
	errBoom := assert.AnError

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewListingRepository().Create(ctx, listing); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	exists, err := listings.SlugExists(ctx, listing.Slug)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewListingRepository().Create(ctx, listing)
	}))

	exists, err = listings.SlugExists(ctx, listing.Slug)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, postgres.Migrate(db))
	require.NoError(t, postgres.Migrate(db))
}
