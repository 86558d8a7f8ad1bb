package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"directory/config"
	"directory/internal/domain/entity"
	"directory/internal/errors"
	"directory/internal/infra/auth"
	mockUC "directory/internal/mocks/usecase"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunSweep(t *testing.T) {
	deactivated := &usecase.SweepResult{Job: usecase.JobDeactivateExpired, Scanned: 3, Transitioned: 2, Skipped: 1, Duration: time.Second}
	reactivated := &usecase.SweepResult{Job: usecase.JobReactivateRenewed, Scanned: 1, Transitioned: 1}

	t.Run("deactivate only", func(t *testing.T) {
		uc := mockUC.NewMockReconciliationUsecase(t)
		uc.EXPECT().DeactivateExpired(mock.Anything).Return(deactivated, nil).Once()

		var out bytes.Buffer
		require.NoError(t, runSweep(context.Background(), &out, uc, sweepDeactivate))
		assert.Equal(t, "deactivate_expired: scanned=3 transitioned=2 skipped=1 failed=0 duration=1s\n", out.String())
	})

	t.Run("all runs both sweeps", func(t *testing.T) {
		uc := mockUC.NewMockReconciliationUsecase(t)
		uc.EXPECT().DeactivateExpired(mock.Anything).Return(deactivated, nil).Once()
		uc.EXPECT().ReactivateRenewed(mock.Anything).Return(reactivated, nil).Once()

		var out bytes.Buffer
		require.NoError(t, runSweep(context.Background(), &out, uc, sweepAll))
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], usecase.JobDeactivateExpired))
		assert.True(t, strings.HasPrefix(lines[1], usecase.JobReactivateRenewed))
	})

	t.Run("failure does not stop the other sweep", func(t *testing.T) {
		boom := errors.New("boom")
		uc := mockUC.NewMockReconciliationUsecase(t)
		uc.EXPECT().DeactivateExpired(mock.Anything).Return(nil, boom).Once()
		uc.EXPECT().ReactivateRenewed(mock.Anything).Return(reactivated, nil).Once()

		var out bytes.Buffer
		err := runSweep(context.Background(), &out, uc, sweepAll)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, out.String(), usecase.JobReactivateRenewed)
	})

	t.Run("unknown sweep", func(t *testing.T) {
		uc := mockUC.NewMockReconciliationUsecase(t)
		err := runSweep(context.Background(), &bytes.Buffer{}, uc, "everything")
		require.Error(t, err)
	})
}

func TestRunPagesAndSitemap(t *testing.T) {
	uc := mockUC.NewMockSitemapUsecase(t)
	uc.EXPECT().GenerateCityCategoryPages(mock.Anything).Return(4, nil).Once()
	uc.EXPECT().GenerateSitemapEntries(mock.Anything).Return(12, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runPages(context.Background(), &out, uc))
	require.NoError(t, runSitemap(context.Background(), &out, uc))
	assert.Equal(t, "Generated 4 city/category pages\nGenerated 12 sitemap entries\n", out.String())
}

func TestRunPages_Error(t *testing.T) {
	boom := errors.New("boom")
	uc := mockUC.NewMockSitemapUsecase(t)
	uc.EXPECT().GenerateCityCategoryPages(mock.Anything).Return(0, boom).Once()

	err := runPages(context.Background(), &bytes.Buffer{}, uc)
	require.ErrorIs(t, err, boom)
}

func TestRunToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()

	t.Run("member", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runToken(&out, tokens, userID.String(), false))

		claims, err := tokens.ValidateToken(strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, []string{entity.RoleMember.String()}, claims.Roles)
	})

	t.Run("staff", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runToken(&out, tokens, userID.String(), true))

		claims, err := tokens.ValidateToken(strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.True(t, entity.RolesFromStrings(claims.Roles).Contains(entity.RoleStaff))
	})

	t.Run("invalid user id", func(t *testing.T) {
		require.Error(t, runToken(&bytes.Buffer{}, tokens, "not-a-uuid", false))
	})
}

func TestRootCmd_RejectsUnknownSweep(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"sweep", "everything"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	require.Error(t, root.Execute())
}
