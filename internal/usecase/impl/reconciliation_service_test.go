package impl

import (
	"context"
	"testing"
	"time"

	"directory/internal/domain/constants"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/service"
	"directory/internal/infra/metrics"
	mockSvc "directory/internal/mocks/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPlanID = "pro-monthly"

type reconciliationFixture struct {
	env       *testEnv
	srv       usecase.ReconciliationUsecase
	notifier  *mockSvc.MockNotificationService
	publisher *mockSvc.MockEventPublisher
}

// createTestReconciliationService gates the directory on testPlanID and wires
// the real entitlement oracle against the test database.
func createTestReconciliationService(t *testing.T) *reconciliationFixture {
	t.Helper()

	env := newTestEnv(t)
	env.updateSettings(t, &usecase.SettingsInput{
		SubscriptionPlanID:            strPtr(testPlanID),
		SendExpiryNotifications:       boolPtr(true),
		SendReactivationNotifications: boolPtr(true),
	})

	entitlements := NewEntitlementService(EntitlementServiceParams{
		EntitlementRepo: env.entitlementRepo,
		Settings:        env.settings,
	})
	fixture := &reconciliationFixture{
		env:       env,
		notifier:  mockSvc.NewMockNotificationService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	fixture.srv = newReconciliationServiceWith(env, entitlements, fixture.notifier, fixture.publisher, metrics.NewNoop())

	return fixture
}

func newReconciliationServiceWith(
	env *testEnv,
	entitlements service.EntitlementService,
	notifier service.NotificationService,
	publisher service.EventPublisher,
	directoryMetrics service.DirectoryMetrics,
) usecase.ReconciliationUsecase {
	return NewReconciliationService(ReconciliationServiceParams{
		ListingRepo:     env.listingRepo,
		EntitlementRepo: env.entitlementRepo,
		Settings:        env.settings,
		Entitlements:    entitlements,
		Notifier:        notifier,
		Publisher:       publisher,
		Metrics:         directoryMetrics,
		Config:          env.config,
		Logger:          env.logger,
	})
}

func (f *reconciliationFixture) entitle(t *testing.T, userID uuid.UUID, status entity.EntitlementStatus, periodEnd time.Time) {
	t.Helper()

	require.NoError(t, f.env.entitlementRepo.Upsert(context.Background(), &entity.Entitlement{
		UserID:           userID,
		PlanID:           testPlanID,
		Status:           status,
		CurrentPeriodEnd: &periodEnd,
		UpdatedAt:        time.Now().UTC(),
	}))
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(event *service.ListingEvent) bool {
		return event.Type == eventType
	})
}

func TestReconciliationService_DeactivateExpired(t *testing.T) {
	f := createTestReconciliationService(t)
	ctx := context.Background()

	paid := f.env.seed(t, "Paid", "London", "Wedding")
	unpaid := f.env.seed(t, "Unpaid", "London", "Portrait")
	lapsed := f.env.seed(t, "Lapsed", "New York", "Wedding")
	f.entitle(t, paid.UserID, entity.EntitlementActive, time.Now().Add(30*24*time.Hour))
	f.entitle(t, lapsed.UserID, entity.EntitlementActive, time.Now().Add(-time.Hour))

	f.notifier.EXPECT().
		SendToUser(mock.Anything, unpaid.UserID, "Directory listing expired", mock.Anything, mock.Anything).
		Return(nil).Once()
	f.notifier.EXPECT().
		SendToUser(mock.Anything, lapsed.UserID, "Directory listing expired", mock.Anything, mock.Anything).
		Return(errors.New("no devices")).Once()
	f.publisher.EXPECT().
		PublishListingEvent(mock.Anything, eventOfType(constants.EventListingDeactivated)).
		Return(nil).Times(2)

	result, err := f.srv.DeactivateExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.JobDeactivateExpired, result.Job)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Transitioned)
	assert.Equal(t, 0, result.Failed)

	assert.True(t, f.env.reload(t, paid.ID).IsActive)
	assert.False(t, f.env.reload(t, unpaid.ID).IsActive)
	assert.False(t, f.env.reload(t, lapsed.ID).IsActive)

	// A second run finds nothing left to deactivate.
	again, err := f.srv.DeactivateExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Scanned)
	assert.Equal(t, 0, again.Transitioned)
}

func TestReconciliationService_ReactivateRenewed(t *testing.T) {
	f := createTestReconciliationService(t)
	ctx := context.Background()

	renewed := f.env.seed(t, "Renewed", "London", "Wedding", func(l *entity.Listing) {
		l.IsActive = false
	})
	stillUnpaid := f.env.seed(t, "Still Unpaid", "London", "Portrait", func(l *entity.Listing) {
		l.IsActive = false
	})
	current := f.env.seed(t, "Current", "London", "Commercial")
	spare := f.env.seed(t, "Spare", "New York", "Commercial", func(l *entity.Listing) {
		l.UserID = current.UserID
		l.IsActive = false
	})
	f.entitle(t, renewed.UserID, entity.EntitlementTrialing, time.Now().Add(24*time.Hour))
	f.entitle(t, current.UserID, entity.EntitlementActive, time.Now().Add(24*time.Hour))

	f.notifier.EXPECT().
		SendToUser(mock.Anything, renewed.UserID, "Directory listing reactivated", mock.Anything,
			mock.MatchedBy(func(data map[string]string) bool {
				return data["listing_id"] == renewed.ID.String() &&
					data["url"] == "https://thephotographers.uk"+renewed.ProfilePath()
			})).
		Return(nil).Once()
	f.publisher.EXPECT().
		PublishListingEvent(mock.Anything, eventOfType(constants.EventListingReactivated)).
		Return(errors.New("topic unavailable")).Once()

	result, err := f.srv.ReactivateRenewed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 1, result.Transitioned)
	assert.Equal(t, 1, result.Skipped)

	assert.True(t, f.env.reload(t, renewed.ID).IsActive)
	assert.False(t, f.env.reload(t, stillUnpaid.ID).IsActive)
	assert.True(t, f.env.reload(t, current.ID).IsActive)
	assert.False(t, f.env.reload(t, spare.ID).IsActive)
}

func TestReconciliationService_FailureIsIsolated(t *testing.T) {
	env := newTestEnv(t)
	env.updateSettings(t, &usecase.SettingsInput{SubscriptionPlanID: strPtr(testPlanID)})

	broken := env.seed(t, "Broken", "London", "Wedding")
	expired := env.seed(t, "Expired", "London", "Portrait")

	entitlements := mockSvc.NewMockEntitlementService(t)
	entitlements.EXPECT().HasQualifyingEntitlement(mock.Anything, broken.UserID).Return(false, errors.New("billing unavailable"))
	entitlements.EXPECT().HasQualifyingEntitlement(mock.Anything, expired.UserID).Return(false, nil)

	directoryMetrics := mockSvc.NewMockDirectoryMetrics(t)
	directoryMetrics.EXPECT().ReconciliationFailure(usecase.JobDeactivateExpired).Return().Once()
	directoryMetrics.EXPECT().ListingTransition("deactivated").Return().Once()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishListingEvent(mock.Anything, mock.Anything).Return(nil).Once()

	srv := newReconciliationServiceWith(env, entitlements, mockSvc.NewMockNotificationService(t), publisher, directoryMetrics)

	result, err := srv.DeactivateExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Transitioned)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, env.reload(t, broken.ID).IsActive)
	assert.False(t, env.reload(t, expired.ID).IsActive)
}

func TestReconciliationService_SkippedWithoutPlan(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "Anyone", "London", "Wedding")

	// The mocks fail the test on any call.
	srv := newReconciliationServiceWith(env,
		mockSvc.NewMockEntitlementService(t),
		mockSvc.NewMockNotificationService(t),
		mockSvc.NewMockEventPublisher(t),
		mockSvc.NewMockDirectoryMetrics(t),
	)

	result, err := srv.DeactivateExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Scanned)

	env.updateSettings(t, &usecase.SettingsInput{
		Enabled:            boolPtr(false),
		SubscriptionPlanID: strPtr(testPlanID),
	})
	result, err = srv.ReactivateRenewed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Scanned)
}

func TestReconciliationService_CanceledContext(t *testing.T) {
	f := createTestReconciliationService(t)
	f.env.seed(t, "Unpaid", "London", "Wedding")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := f.srv.DeactivateExpired(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Scanned)
}

func TestReconciliationService_ApplyEntitlementChange(t *testing.T) {
	f := createTestReconciliationService(t)
	ctx := context.Background()

	listing := f.env.seed(t, "Returning", "London", "Wedding", func(l *entity.Listing) {
		l.IsActive = false
	})
	periodEnd := time.Now().Add(30 * 24 * time.Hour).UTC()

	_, err := f.srv.ApplyEntitlementChange(ctx, usecase.EntitlementChange{PlanID: testPlanID})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.notifier.EXPECT().SendToUser(mock.Anything, listing.UserID, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
	f.publisher.EXPECT().PublishListingEvent(mock.Anything, eventOfType(constants.EventListingReactivated)).Return(nil).Once()
	f.publisher.EXPECT().PublishListingEvent(mock.Anything, eventOfType(constants.EventListingDeactivated)).Return(nil).Once()

	result, err := f.srv.ApplyEntitlementChange(ctx, usecase.EntitlementChange{
		UserID:           listing.UserID,
		PlanID:           testPlanID,
		Status:           entity.EntitlementActive,
		CurrentPeriodEnd: &periodEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.JobReconcileUser, result.Job)
	assert.Equal(t, 1, result.Transitioned)
	assert.True(t, f.env.reload(t, listing.ID).IsActive)

	stored, err := f.env.entitlementRepo.FindByUser(ctx, listing.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.EntitlementActive, stored.Status)

	result, err = f.srv.ApplyEntitlementChange(ctx, usecase.EntitlementChange{
		UserID: listing.UserID,
		PlanID: testPlanID,
		Status: entity.EntitlementCanceled,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Transitioned)
	assert.False(t, f.env.reload(t, listing.ID).IsActive)
}
