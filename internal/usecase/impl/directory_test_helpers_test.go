package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"directory/config"
	"directory/internal/domain/directory"
	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/postgres"
	"directory/internal/infra/persistence/testdb"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testBaseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv wires the use cases onto a migrated in-memory database.
type testEnv struct {
	config          *config.Config
	logger          *slog.Logger
	listingRepo     repository.ListingRepository
	txManager       repository.TransactionManager
	settingsRepo    repository.SettingsRepository
	entitlementRepo repository.EntitlementRepository
	settings        usecase.SettingsUsecase
}

func newTestConfig() *config.Config {
	return &config.Config{
		Directory: &config.DirectoryConfig{
			Enabled:        true,
			AutoApprove:    true,
			MaxImages:      10,
			Locations:      []string{"London", "New York", "Stoke-on-Trent"},
			Categories:     []string{"Wedding", "Portrait", "Commercial"},
			PublicPageSize: 20,
			AdminPageSize:  50,
			RelatedLimit:   6,
			ShowInSitemap:  true,
			SiteName:       "ThePhotographers.uk",
			BaseURL:        "https://thephotographers.uk",
			CountryCode:    "GB",
		},
		Entitlement: &config.EntitlementConfig{},
		Scheduler:   &config.SchedulerConfig{BatchSize: 2},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testdb.Open(t)
	cfg := newTestConfig()
	logger := discardLogger()
	settingsRepo := postgres.NewSettingsRepository(db)

	return &testEnv{
		config:          cfg,
		logger:          logger,
		listingRepo:     postgres.NewListingRepository(db),
		txManager:       postgres.NewTransactionManager(db),
		settingsRepo:    settingsRepo,
		entitlementRepo: postgres.NewEntitlementRepository(db),
		settings: NewSettingsService(SettingsServiceParams{
			SettingsRepo: settingsRepo,
			Config:       cfg,
			Logger:       logger,
		}),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// updateSettings stores a settings change through the settings use case.
func (env *testEnv) updateSettings(t *testing.T, input *usecase.SettingsInput) {
	t.Helper()

	_, err := env.settings.UpdateSettings(context.Background(), input)
	require.NoError(t, err)
}

// seed stores a visible listing owned by a fresh user.
func (env *testEnv) seed(t *testing.T, name, city, category string, mutate ...func(*entity.Listing)) *entity.Listing {
	t.Helper()

	listing := &entity.Listing{
		UserID:       uuid.New(),
		BusinessName: name,
		Description:  name + " captures your day",
		City:         city,
		Category:     category,
		Slug:         fmt.Sprintf("%s-%s", directory.SlugCandidate(name, 0), uuid.NewString()[:6]),
		Images:       []string{"https://cdn.test/" + uuid.NewString() + ".jpg"},
		Approved:     true,
		IsActive:     true,
		CreatedAt:    testBaseTime,
		UpdatedAt:    testBaseTime,
	}
	for _, fn := range mutate {
		fn(listing)
	}
	require.NoError(t, env.listingRepo.Create(context.Background(), listing))

	return listing
}

func (env *testEnv) reload(t *testing.T, id uuid.UUID) *entity.Listing {
	t.Helper()

	listing, err := env.listingRepo.FindByID(context.Background(), id)
	require.NoError(t, err)

	return listing
}

func validListingInput() directory.ListingInput {
	return directory.ListingInput{
		BusinessName: "Golden Hour Studio",
		Description:  "Natural light wedding photography",
		City:         "london",
		Category:     "wedding",
		Website:      "goldenhour.test",
		Email:        "hello@goldenhour.test",
		Images:       []string{"https://cdn.test/one.jpg", " "},
		Packages: []entity.ServicePackage{
			{Name: "Half day", Price: "450"},
			{Name: "Full day", Price: "899.99"},
		},
	}
}

func ownerActor(userID uuid.UUID) entity.Actor {
	return entity.Actor{UserID: userID, Roles: entity.Roles{entity.RoleMember}}
}

func staffActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleMember, entity.RoleStaff}}
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
