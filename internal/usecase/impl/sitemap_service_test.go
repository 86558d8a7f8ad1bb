package impl

import (
	"context"
	"testing"
	"time"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/infra/storage"
	"directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func createTestSitemapService(t *testing.T) (*testEnv, usecase.SitemapUsecase) {
	t.Helper()

	env := newTestEnv(t)
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	srv := NewSitemapService(SitemapServiceParams{
		ListingRepo: env.listingRepo,
		Settings:    env.settings,
		Store:       storage.NewBlobStore(bucket, "snapshots"),
		Config:      env.config,
		Logger:      env.logger,
	})

	return env, srv
}

func seedSitemapListings(t *testing.T, env *testEnv) (*entity.Listing, *entity.Listing) {
	t.Helper()

	older := env.seed(t, "Older", "London", "Wedding", func(l *entity.Listing) {
		l.UpdatedAt = testBaseTime.Add(-48 * time.Hour)
	})
	newer := env.seed(t, "Newer", "London", "Wedding", func(l *entity.Listing) {
		l.Featured = true
		l.UpdatedAt = testBaseTime
	})
	env.seed(t, "Brooklyn", "New York", "Portrait")
	env.seed(t, "Hidden", "London", "Commercial", func(l *entity.Listing) {
		l.Approved = false
	})
	env.seed(t, "Lapsed", "Stoke-on-Trent", "Wedding", func(l *entity.Listing) {
		l.IsActive = false
	})

	return older, newer
}

func TestSitemapService_GenerateSitemapEntries(t *testing.T) {
	env, srv := createTestSitemapService(t)
	ctx := context.Background()
	older, newer := seedSitemapListings(t, env)

	entries, err := srv.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	count, err := srv.GenerateSitemapEntries(ctx)
	require.NoError(t, err)
	// Index, two city/category pages and three visible profiles.
	assert.Equal(t, 6, count)

	entries, err = srv.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	assert.Equal(t, "https://thephotographers.uk/directory", entries[0].URL)
	assert.InDelta(t, 0.8, entries[0].Priority, 0.0001)
	assert.Equal(t, usecase.ChangeFreqWeekly, entries[0].ChangeFreq)
	assert.Nil(t, entries[0].LastMod)

	byURL := make(map[string]usecase.SitemapEntry, len(entries))
	for _, entry := range entries {
		byURL[entry.URL] = entry
	}

	page, ok := byURL["https://thephotographers.uk/directory/london-wedding-photographers"]
	require.True(t, ok)
	assert.InDelta(t, 0.7, page.Priority, 0.0001)
	require.NotNil(t, page.LastMod)
	assert.True(t, testBaseTime.Equal(*page.LastMod))

	profile, ok := byURL["https://thephotographers.uk"+older.ProfilePath()]
	require.True(t, ok)
	assert.InDelta(t, 0.6, profile.Priority, 0.0001)
	assert.Equal(t, usecase.ChangeFreqMonthly, profile.ChangeFreq)
	assert.Contains(t, byURL, "https://thephotographers.uk"+newer.ProfilePath())
	assert.NotContains(t, byURL, "https://thephotographers.uk/directory/london-commercial-photographers")
	assert.NotContains(t, byURL, "https://thephotographers.uk/directory/stoke-on-trent-wedding-photographers")
}

func TestSitemapService_HiddenFromSitemap(t *testing.T) {
	env, srv := createTestSitemapService(t)
	ctx := context.Background()
	seedSitemapListings(t, env)

	_, err := srv.GenerateSitemapEntries(ctx)
	require.NoError(t, err)

	env.updateSettings(t, &usecase.SettingsInput{ShowInSitemap: boolPtr(false)})

	entries, err := srv.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	count, err := srv.GenerateSitemapEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	env.updateSettings(t, &usecase.SettingsInput{ShowInSitemap: boolPtr(true)})
	entries, err = srv.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSitemapService_GenerateCityCategoryPages(t *testing.T) {
	env, srv := createTestSitemapService(t)
	ctx := context.Background()
	seedSitemapListings(t, env)

	count, err := srv.GenerateCityCategoryPages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	snapshot, err := srv.CityCategorySnapshot(ctx, "london-wedding-photographers")
	require.NoError(t, err)
	assert.Equal(t, "London", snapshot.City)
	assert.Equal(t, "Wedding", snapshot.Category)
	assert.Equal(t, "https://thephotographers.uk/directory/london-wedding-photographers", snapshot.URL)
	assert.Equal(t, "London Weddings | ThePhotographers.uk", snapshot.Title)
	assert.Equal(t, int64(2), snapshot.ListingsCount)
	assert.Equal(t, int64(1), snapshot.FeaturedCount)
	assert.True(t, testBaseTime.Equal(snapshot.LastUpdated))
	assert.Equal(t, "CollectionPage", snapshot.SchemaData["@type"])

	about, ok := snapshot.SchemaData["about"].(map[string]any)
	require.True(t, ok)
	address, ok := about["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "GB", address["addressCountry"])

	_, err = srv.CityCategorySnapshot(ctx, "london-commercial-photographers")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = srv.CityCategorySnapshot(ctx, "../sitemap/entries")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSitemapService_DisabledDirectory(t *testing.T) {
	env, srv := createTestSitemapService(t)
	ctx := context.Background()
	seedSitemapListings(t, env)
	env.updateSettings(t, &usecase.SettingsInput{Enabled: boolPtr(false)})

	pages, err := srv.GenerateCityCategoryPages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pages)

	count, err := srv.GenerateSitemapEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	entries, err := srv.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
