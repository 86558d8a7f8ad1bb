package impl

import (
	"context"
	"testing"
	"time"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/infra/metrics"
	mockRepo "directory/internal/mocks/repository"
	mockSvc "directory/internal/mocks/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(env *testEnv) *adminService {
	srv := NewAdminService(AdminServiceParams{
		ListingRepo: env.listingRepo,
		TxManager:   env.txManager,
		Settings:    env.settings,
		Metrics:     metrics.NewNoop(),
		Config:      env.config,
		Logger:      env.logger,
	}).(*adminService)
	srv.now = func() time.Time { return testBaseTime.Add(24 * time.Hour) }

	return srv
}

func TestAdminService_GetDashboard(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)

	env.seed(t, "Old", "London", "Wedding", func(l *entity.Listing) {
		l.CreatedAt = testBaseTime.AddDate(0, -1, 0)
		l.Featured = true
		l.Priority = 10
	})
	env.seed(t, "Pending", "London", "Wedding", func(l *entity.Listing) { l.Approved = false })
	env.seed(t, "Inactive", "London", "Portrait", func(l *entity.Listing) {
		l.IsActive = false
		l.CreatedAt = testBaseTime.Add(time.Hour)
	})

	dashboard, err := srv.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &entity.ListingStats{
		Total:           3,
		Active:          2,
		Inactive:        1,
		Featured:        1,
		PendingApproval: 1,
		RecentSignups:   2,
	}, dashboard.Stats)
	require.Len(t, dashboard.RecentListings, 3)

	names := make([]string, 0, len(dashboard.RecentListings))
	for _, listing := range dashboard.RecentListings {
		names = append(names, listing.BusinessName)
	}
	assert.Equal(t, []string{"Inactive", "Pending", "Old"}, names)
}

func TestAdminService_ListListings_StatusFilterAndFacets(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)

	pending := env.seed(t, "Pending", "London", "Wedding", func(l *entity.Listing) { l.Approved = false })
	env.seed(t, "Approved", "New York", "Portrait")

	page, err := srv.ListListings(context.Background(), usecase.AdminListingQuery{Status: "pending"})

	require.NoError(t, err)
	require.Len(t, page.Listings, 1)
	assert.Equal(t, pending.ID, page.Listings[0].ID)
	assert.Equal(t, []string{"London", "New York"}, page.Cities)
	assert.Equal(t, []string{"Portrait", "Wedding"}, page.Categories)

	all, err := srv.ListListings(context.Background(), usecase.AdminListingQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Listings, 2)

	_, err = srv.ListListings(context.Background(), usecase.AdminListingQuery{Status: "archived"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateListing_Actions(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)
	ctx := context.Background()

	listing := env.seed(t, "Pending", "London", "Wedding", func(l *entity.Listing) { l.Approved = false })

	result, err := srv.UpdateListing(ctx, listing.ID, usecase.AdminListingUpdate{Action: usecase.ActionApprove})
	require.NoError(t, err)
	assert.True(t, result.Listing.Approved)
	assert.Equal(t, "Listing approved", result.Message)

	result, err = srv.UpdateListing(ctx, listing.ID, usecase.AdminListingUpdate{Action: usecase.ActionFeature})
	require.NoError(t, err)
	assert.True(t, result.Listing.Featured)

	result, err = srv.UpdateListing(ctx, listing.ID, usecase.AdminListingUpdate{Action: usecase.ActionUpdatePriority, Priority: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Listing.Priority)

	result, err = srv.UpdateListing(ctx, listing.ID, usecase.AdminListingUpdate{Action: usecase.ActionDeactivate})
	require.NoError(t, err)
	assert.False(t, result.Listing.IsActive)

	_, err = srv.UpdateListing(ctx, listing.ID, usecase.AdminListingUpdate{Action: usecase.ActionUpdatePriority})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UpdateListing(ctx, listing.ID, usecase.AdminListingUpdate{Action: "archive"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBulkAction)

	_, err = srv.UpdateListing(ctx, uuid.New(), usecase.AdminListingUpdate{Action: usecase.ActionApprove})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestAdminService_UpdateListing_ActivateConflict(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)

	active := env.seed(t, "Active", "London", "Wedding")
	inactive := env.seed(t, "Inactive", "London", "Wedding", func(l *entity.Listing) {
		l.UserID = active.UserID
		l.IsActive = false
	})

	_, err := srv.UpdateListing(context.Background(), inactive.ID, usecase.AdminListingUpdate{Action: usecase.ActionActivate})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.False(t, env.reload(t, inactive.ID).IsActive)
}

func TestAdminService_UpdateListing_RejectsRemovedPlacement(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)
	ctx := context.Background()

	listing := env.seed(t, "Pending", "New York", "Wedding", func(l *entity.Listing) { l.Approved = false })
	env.updateSettings(t, &usecase.SettingsInput{Locations: []string{"London"}})

	for _, update := range []usecase.AdminListingUpdate{
		{Action: usecase.ActionApprove},
		{Action: usecase.ActionFeature},
		{Action: usecase.ActionUnfeature},
		{Action: usecase.ActionActivate},
		{Action: usecase.ActionDeactivate},
		{Action: usecase.ActionUpdatePriority, Priority: intPtr(4)},
	} {
		t.Run(string(update.Action), func(t *testing.T) {
			_, err := srv.UpdateListing(ctx, listing.ID, update)

			var verr *domainerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "city", verr.Fields[0].Field)
		})
	}

	stored := env.reload(t, listing.ID)
	assert.False(t, stored.Approved)
	assert.False(t, stored.Featured)
	assert.True(t, stored.IsActive)
	assert.Zero(t, stored.Priority)

	result, err := srv.UpdateListing(ctx, listing.ID, usecase.AdminListingUpdate{Action: usecase.ActionDelete})
	require.NoError(t, err)
	assert.Equal(t, "Listing deleted", result.Message)
}

func TestAdminService_UpdateListing_FieldsRolledBackOnActivateConflict(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)

	active := env.seed(t, "Active", "London", "Wedding")
	inactive := env.seed(t, "Original", "London", "Wedding", func(l *entity.Listing) {
		l.UserID = active.UserID
		l.IsActive = false
	})

	_, err := srv.UpdateListing(context.Background(), inactive.ID, usecase.AdminListingUpdate{
		Fields: &usecase.AdminListingFields{
			ListingInput: validListingInput(),
			Priority:     intPtr(7),
			IsActive:     boolPtr(true),
		},
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "user_id", verr.Fields[0].Field)

	stored := env.reload(t, inactive.ID)
	assert.Equal(t, "Original", stored.BusinessName)
	assert.Zero(t, stored.Priority)
	assert.False(t, stored.IsActive)
}

func TestAdminService_UpdateListing_Fields(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)

	listing := env.seed(t, "Original", "London", "Wedding")
	input := validListingInput()
	input.Category = "portrait"

	result, err := srv.UpdateListing(context.Background(), listing.ID, usecase.AdminListingUpdate{
		Fields: &usecase.AdminListingFields{
			ListingInput: input,
			Featured:     boolPtr(true),
			Priority:     intPtr(3),
			IsActive:     boolPtr(false),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Listing updated", result.Message)
	assert.Equal(t, "Golden Hour Studio", result.Listing.BusinessName)
	assert.Equal(t, "Portrait", result.Listing.Category)
	assert.True(t, result.Listing.Featured)
	assert.Equal(t, 3, result.Listing.Priority)
	assert.False(t, result.Listing.IsActive)
	assert.Equal(t, listing.Slug, result.Listing.Slug)
}

func TestAdminService_FeaturedLimit(t *testing.T) {
	env := newTestEnv(t)
	env.updateSettings(t, &usecase.SettingsInput{FeaturedLimit: intPtr(2)})
	srv := newTestAdminService(env)
	ctx := context.Background()

	env.seed(t, "Featured", "London", "Wedding", func(l *entity.Listing) { l.Featured = true })
	first := env.seed(t, "First", "London", "Wedding")
	second := env.seed(t, "Second", "London", "Wedding")
	third := env.seed(t, "Third", "London", "Wedding")

	_, err := srv.BulkAction(ctx, usecase.ActionFeature, []uuid.UUID{first.ID, second.ID})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	result, err := srv.BulkAction(ctx, usecase.ActionFeature, []uuid.UUID{first.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)

	_, err = srv.UpdateListing(ctx, third.ID, usecase.AdminListingUpdate{Action: usecase.ActionFeature})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	result, err = srv.BulkAction(ctx, usecase.ActionFeature, []uuid.UUID{first.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Affected)
	assert.Equal(t, int64(1), result.Skipped)
}

// listingTxManager runs transactions against a fixed listing repository.
type listingTxManager struct {
	listingRepo repository.ListingRepository
}

func (m listingTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m listingTxManager) NewListingRepository() repository.ListingRepository {
	return m.listingRepo
}

func (m listingTxManager) NewSettingsRepository() repository.SettingsRepository {
	return nil
}

func (m listingTxManager) NewEntitlementRepository() repository.EntitlementRepository {
	return nil
}

func TestAdminService_FeatureTakesLockBeforeCounting(t *testing.T) {
	env := newTestEnv(t)
	env.updateSettings(t, &usecase.SettingsInput{FeaturedLimit: intPtr(3)})
	listing := env.seed(t, "Plain", "London", "Wedding")

	txRepo := mockRepo.NewMockListingRepository(t)
	srv := newTestAdminService(env)
	srv.txManager = listingTxManager{listingRepo: txRepo}

	mock.InOrder(
		txRepo.EXPECT().LockFeatured(mock.Anything).Return(nil).Call,
		txRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil).Call,
		txRepo.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(2), nil).Call,
		txRepo.EXPECT().SetFlags(mock.Anything, []uuid.UUID{listing.ID}, mock.Anything).Return(int64(1), nil).Call,
	)

	_, err := srv.UpdateListing(context.Background(), listing.ID, usecase.AdminListingUpdate{Action: usecase.ActionFeature})
	require.NoError(t, err)
}

func TestAdminService_FeatureLockFailure(t *testing.T) {
	env := newTestEnv(t)
	listing := env.seed(t, "Plain", "London", "Wedding")

	txRepo := mockRepo.NewMockListingRepository(t)
	srv := newTestAdminService(env)
	srv.txManager = listingTxManager{listingRepo: txRepo}

	boom := errors.New("lock timeout")
	txRepo.EXPECT().LockFeatured(mock.Anything).Return(boom).Once()

	_, err := srv.BulkAction(context.Background(), usecase.ActionFeature, []uuid.UUID{listing.ID})
	require.ErrorIs(t, err, boom)
	assert.False(t, env.reload(t, listing.ID).Featured)
}

func TestAdminService_BulkAction(t *testing.T) {
	env := newTestEnv(t)
	directoryMetrics := mockSvc.NewMockDirectoryMetrics(t)
	srv := newTestAdminService(env)
	srv.metrics = directoryMetrics
	ctx := context.Background()

	a := env.seed(t, "A", "London", "Wedding", func(l *entity.Listing) {
		l.Approved = false
		l.IsActive = false
	})
	b := env.seed(t, "B", "London", "Wedding", func(l *entity.Listing) {
		l.Approved = false
		l.IsActive = false
	})
	blocked := env.seed(t, "Blocked", "London", "Wedding", func(l *entity.Listing) { l.IsActive = false })
	env.seed(t, "Sibling", "London", "Wedding", func(l *entity.Listing) { l.UserID = blocked.UserID })

	directoryMetrics.EXPECT().BulkAction("approve", 2).Return()
	directoryMetrics.EXPECT().BulkAction("activate", 2).Return()
	directoryMetrics.EXPECT().BulkAction("delete", 1).Return()

	approved, err := srv.BulkAction(ctx, usecase.ActionApprove, []uuid.UUID{a.ID, b.ID, a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), approved.Affected)
	assert.Equal(t, "2 listings approved", approved.Message)

	activated, err := srv.BulkAction(ctx, usecase.ActionActivate, []uuid.UUID{a.ID, b.ID, blocked.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), activated.Affected)
	assert.Equal(t, int64(1), activated.Skipped)
	assert.False(t, env.reload(t, blocked.ID).IsActive)

	deleted, err := srv.BulkAction(ctx, usecase.ActionDelete, []uuid.UUID{a.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.Affected)
	_, err = env.listingRepo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrListingNotFound)

	_, err = srv.BulkAction(ctx, usecase.ActionApprove, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoListingsSelected)

	_, err = srv.BulkAction(ctx, usecase.ActionUpdatePriority, []uuid.UUID{b.ID})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBulkAction)
}

func TestAdminService_GetAnalytics(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)

	env.seed(t, "This month", "London", "Wedding", func(l *entity.Listing) { l.ViewsCount = 3 })
	env.seed(t, "Last month", "London", "Portrait", func(l *entity.Listing) {
		l.CreatedAt = testBaseTime.AddDate(0, -1, 0)
		l.ViewsCount = 9
	})
	env.seed(t, "Ancient", "New York", "Wedding", func(l *entity.Listing) { l.CreatedAt = testBaseTime.AddDate(-2, 0, 0) })
	env.seed(t, "Hidden", "New York", "Wedding", func(l *entity.Listing) {
		l.Approved = false
		l.ViewsCount = 50
	})

	analytics, err := srv.GetAnalytics(context.Background())

	require.NoError(t, err)
	require.Len(t, analytics.ByMonth, 12)
	assert.Equal(t, "2025-04", analytics.ByMonth[0].Month)
	assert.Equal(t, usecase.MonthCount{Month: "2026-02", Count: 1}, analytics.ByMonth[10])
	assert.Equal(t, usecase.MonthCount{Month: "2026-03", Count: 2}, analytics.ByMonth[11])

	assert.Equal(t, []entity.ValueCount{{Value: "London", Count: 2}, {Value: "New York", Count: 2}}, analytics.ByCity)
	assert.Equal(t, entity.ValueCount{Value: "Wedding", Count: 3}, analytics.ByCategory[0])

	require.Len(t, analytics.MostViewed, 3)
	assert.Equal(t, "Last month", analytics.MostViewed[0].BusinessName)
}

func TestAdminService_RemoveUserListings(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestAdminService(env)

	owned := env.seed(t, "Owned", "London", "Wedding")
	env.seed(t, "Old", "London", "Wedding", func(l *entity.Listing) {
		l.UserID = owned.UserID
		l.IsActive = false
	})
	other := env.seed(t, "Other", "London", "Wedding")

	deleted, err := srv.RemoveUserListings(context.Background(), owned.UserID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, other.ID, env.reload(t, other.ID).ID)
}
