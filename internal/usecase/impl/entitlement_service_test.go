package impl

import (
	"context"
	"testing"
	"time"

	"directory/internal/domain/entity"
	mockRepo "directory/internal/mocks/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEntitlementService(env *testEnv) *entitlementService {
	srv := NewEntitlementService(EntitlementServiceParams{
		EntitlementRepo: env.entitlementRepo,
		Settings:        env.settings,
	}).(*entitlementService)
	srv.now = func() time.Time { return testBaseTime }

	return srv
}

func TestEntitlementService_NoPlanConfigured(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestEntitlementService(env)

	ok, err := srv.HasQualifyingEntitlement(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEntitlementService_HasQualifyingEntitlement(t *testing.T) {
	env := newTestEnv(t)
	env.updateSettings(t, &usecase.SettingsInput{SubscriptionPlanID: strPtr("pro")})
	srv := newTestEntitlementService(env)
	ctx := context.Background()

	future := testBaseTime.Add(24 * time.Hour)
	past := testBaseTime.Add(-time.Hour)

	tests := []struct {
		name        string
		entitlement *entity.Entitlement
		want        bool
	}{
		{name: "no entitlement", want: false},
		{name: "active plan", entitlement: &entity.Entitlement{PlanID: "pro", Status: entity.EntitlementActive, CurrentPeriodEnd: &future}, want: true},
		{name: "trialing without end", entitlement: &entity.Entitlement{PlanID: "pro", Status: entity.EntitlementTrialing}, want: true},
		{name: "other plan", entitlement: &entity.Entitlement{PlanID: "basic", Status: entity.EntitlementActive}, want: false},
		{name: "canceled", entitlement: &entity.Entitlement{PlanID: "pro", Status: entity.EntitlementCanceled, CurrentPeriodEnd: &future}, want: false},
		{name: "period ended", entitlement: &entity.Entitlement{PlanID: "pro", Status: entity.EntitlementActive, CurrentPeriodEnd: &past}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			if tt.entitlement != nil {
				tt.entitlement.UserID = userID
				require.NoError(t, env.entitlementRepo.Upsert(ctx, tt.entitlement))
			}

			ok, err := srv.HasQualifyingEntitlement(ctx, userID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestEntitlementService_RepositoryError(t *testing.T) {
	env := newTestEnv(t)
	env.updateSettings(t, &usecase.SettingsInput{SubscriptionPlanID: strPtr("pro")})
	entitlementRepo := mockRepo.NewMockEntitlementRepository(t)
	srv := NewEntitlementService(EntitlementServiceParams{
		EntitlementRepo: entitlementRepo,
		Settings:        env.settings,
	})

	entitlementRepo.EXPECT().FindByUser(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	ok, err := srv.HasQualifyingEntitlement(context.Background(), uuid.New())

	require.Error(t, err)
	assert.False(t, ok)
}
