package postgres_test

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"
	"unicode/utf8"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/postgres"
	"directory/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newListing(name, city, category string, mutate ...func(*entity.Listing)) *entity.Listing {
	listing := &entity.Listing{
		UserID:       uuid.New(),
		BusinessName: name,
		Description:  name + " description",
		City:         city,
		Category:     category,
		Slug:         fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]),
		Images:       []string{"https://cdn.test/" + name + ".jpg"},
		Packages:     []entity.ServicePackage{{Name: "Basic", Price: "100"}},
		Approved:     true,
		IsActive:     true,
		CreatedAt:    baseTime,
	}
	for _, fn := range mutate {
		fn(listing)
	}

	return listing
}

func mustCreate(t *testing.T, repo repository.ListingRepository, listings ...*entity.Listing) {
	t.Helper()
	for _, listing := range listings {
		require.NoError(t, repo.Create(context.Background(), listing))
	}
}

func TestListingRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	listing := newListing("acme", "London", "Wedding", func(l *entity.Listing) {
		l.Website = "https://acme.test"
		l.TikTok = "https://tiktok.com/@acme"
	})
	require.NoError(t, repo.Create(ctx, listing))
	assert.NotEqual(t, uuid.Nil, listing.ID)

	found, err := repo.FindBySlug(ctx, listing.Slug)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, found.ID)
	assert.Equal(t, "https://tiktok.com/@acme", found.TikTok)
	assert.Equal(t, listing.Images, found.Images)
	assert.Equal(t, listing.Packages, found.Packages)
	assert.True(t, found.IsActive)

	byID, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.Slug, byID.Slug)

	reloaded, err := repo.Reload(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.Slug, reloaded.Slug)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestListingRepository_CreateRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	first := newListing("acme", "London", "Wedding")
	mustCreate(t, repo, first)

	second := newListing("acme", "London", "Wedding", func(l *entity.Listing) { l.Slug = first.Slug })
	err := repo.Create(ctx, second)

	assert.ErrorIs(t, err, repository.ErrSlugTaken)

	exists, err := repo.SlugExists(ctx, first.Slug)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListingRepository_OneActiveListingPerUser(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))
	userID := uuid.New()

	active := newListing("first", "London", "Wedding", func(l *entity.Listing) { l.UserID = userID })
	mustCreate(t, repo, active)

	second := newListing("second", "London", "Wedding", func(l *entity.Listing) { l.UserID = userID })
	assert.ErrorIs(t, repo.Create(ctx, second), repository.ErrActiveListingExists)

	inactive := newListing("third", "London", "Wedding", func(l *entity.Listing) {
		l.UserID = userID
		l.IsActive = false
	})
	require.NoError(t, repo.Create(ctx, inactive))

	_, err := repo.SetActive(ctx, inactive.ID, true)
	assert.ErrorIs(t, err, repository.ErrActiveListingExists)

	changed, err := repo.SetActive(ctx, active.ID, false)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.SetActive(ctx, inactive.ID, true)
	require.NoError(t, err)
	assert.True(t, changed)

	current, err := repo.FindActiveByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, inactive.ID, current.ID)

	all, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListingRepository_SetActiveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	listing := newListing("acme", "London", "Wedding")
	mustCreate(t, repo, listing)

	changed, err := repo.SetActive(ctx, listing.ID, true)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = repo.SetActive(ctx, uuid.New(), false)
	assert.ErrorIs(t, err, repository.ErrListingNotFound)
}

func TestListingRepository_ConcurrentActivationSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))
	userID := uuid.New()

	const n = 8
	ids := make([]uuid.UUID, 0, n)
	for i := range n {
		listing := newListing(fmt.Sprintf("listing%d", i), "London", "Wedding", func(l *entity.Listing) {
			l.UserID = userID
			l.IsActive = false
		})
		mustCreate(t, repo, listing)
		ids = append(ids, listing.ID)
	}

	results := make([]error, n)
	var group errgroup.Group
	for i, id := range ids {
		group.Go(func() error {
			_, results[i] = repo.SetActive(ctx, id, true)

			return nil
		})
	}
	require.NoError(t, group.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, repository.ErrActiveListingExists)
	}
	assert.Equal(t, 1, succeeded)

	count, err := repo.Count(ctx, entity.ListingFilter{Scope: entity.ScopeAdminStatus, Status: entity.StatusActive})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListingRepository_ConcurrentViewIncrements(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	listing := newListing("acme", "London", "Wedding", func(l *entity.Listing) { l.ViewsCount = 5 })
	mustCreate(t, repo, listing)

	var group errgroup.Group
	for range 100 {
		group.Go(func() error {
			return repo.IncrementViews(ctx, listing.ID)
		})
	}
	require.NoError(t, group.Wait())

	found, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 105, found.ViewsCount)

	assert.ErrorIs(t, repo.IncrementViews(ctx, uuid.New()), repository.ErrListingNotFound)
}

func TestListingRepository_UpdateKeepsProtectedColumns(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	listing := newListing("acme", "London", "Wedding")
	mustCreate(t, repo, listing)
	require.NoError(t, repo.IncrementViews(ctx, listing.ID))

	edited := *listing
	edited.BusinessName = "Acme Renamed"
	edited.Slug = "hijacked"
	edited.UserID = uuid.New()
	edited.IsActive = false
	edited.ViewsCount = 0
	edited.Featured = true
	edited.Images = []string{"a", "b"}
	require.NoError(t, repo.Update(ctx, &edited))

	found, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", found.BusinessName)
	assert.Equal(t, listing.Slug, found.Slug)
	assert.Equal(t, listing.UserID, found.UserID)
	assert.True(t, found.IsActive)
	assert.EqualValues(t, 1, found.ViewsCount)
	assert.True(t, found.Featured)
	assert.Equal(t, []string{"a", "b"}, found.Images)

	missing := newListing("ghost", "London", "Wedding", func(l *entity.Listing) { l.ID = uuid.New() })
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrListingNotFound)
}

func TestListingRepository_FindMatchesFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	// SQLite's LOWER folds ASCII only while Matches uses strings.ToLower, so
	// searchable text stays ASCII for the two to agree.
	listings := []*entity.Listing{
		newListing("alpha", "London", "Wedding", func(l *entity.Listing) { l.Priority = 1 }),
		newListing("bravo", "London", "Wedding", func(l *entity.Listing) { l.Featured = true }),
		newListing("charlie", "London", "Portrait", func(l *entity.Listing) { l.CreatedAt = baseTime.Add(time.Hour) }),
		newListing("delta", "Leeds", "Wedding", func(l *entity.Listing) { l.Approved = false }),
		newListing("echo", "Leeds", "Wedding", func(l *entity.Listing) { l.IsActive = false }),
		newListing("foxtrot_100%", "Leeds", "Portrait", func(l *entity.Listing) { l.Description = "Studio in LEEDS" }),
		newListing("golf", "London", "Wedding"),
		newListing("hotel", "London", "Wedding", func(l *entity.Listing) { l.CreatedAt = baseTime.Add(-time.Hour) }),
	}
	mustCreate(t, repo, listings...)

	filters := []entity.ListingFilter{
		{},
		{City: "London"},
		{City: "London", Category: "Wedding"},
		{Search: "leeds"},
		{Search: "100%"},
		{Search: "_"},
		{Scope: entity.ScopeAdminAll},
		{Scope: entity.ScopeAdminAll, Search: "WEDD"},
		{Scope: entity.ScopeAdminStatus, Status: entity.StatusActive},
		{Scope: entity.ScopeAdminStatus, Status: entity.StatusInactive},
		{Scope: entity.ScopeAdminStatus, Status: entity.StatusFeatured},
		{Scope: entity.ScopeAdminStatus, Status: entity.StatusPendingApproval},
		{City: "London", Category: "Wedding", ExcludeID: listings[0].ID},
	}

	requireASCII(t, listings, filters)

	for i, filter := range filters {
		t.Run(fmt.Sprintf("filter_%d", i), func(t *testing.T) {
			got, err := repo.Find(ctx, filter, 0, 100)
			require.NoError(t, err)

			want := expected(listings, filter)
			assert.Equal(t, ids(want), ids(got))

			count, err := repo.Count(ctx, filter)
			require.NoError(t, err)
			assert.EqualValues(t, len(want), count)
		})
	}
}

func TestListingRepository_FindPaginates(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	var listings []*entity.Listing
	for i := range 5 {
		listings = append(listings, newListing(fmt.Sprintf("l%d", i), "London", "Wedding", func(l *entity.Listing) {
			l.CreatedAt = baseTime.Add(time.Duration(i) * time.Minute)
		}))
	}
	mustCreate(t, repo, listings...)

	want := ids(expected(listings, entity.ListingFilter{}))

	page1, err := repo.Find(ctx, entity.ListingFilter{}, 0, 2)
	require.NoError(t, err)
	page3, err := repo.Find(ctx, entity.ListingFilter{}, 4, 2)
	require.NoError(t, err)
	past, err := repo.Find(ctx, entity.ListingFilter{}, 10, 2)
	require.NoError(t, err)

	assert.Equal(t, want[:2], ids(page1))
	assert.Equal(t, want[4:], ids(page3))
	assert.Empty(t, past)
}

func TestListingRepository_Recent(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	oldFeatured := newListing("old-featured", "London", "Wedding", func(l *entity.Listing) {
		l.CreatedAt = baseTime.AddDate(-1, 0, 0)
		l.Featured = true
		l.Priority = 9
	})
	hidden := newListing("hidden", "London", "Wedding", func(l *entity.Listing) {
		l.CreatedAt = baseTime.Add(time.Hour)
		l.Approved = false
		l.IsActive = false
	})
	newest := newListing("newest", "London", "Wedding", func(l *entity.Listing) { l.CreatedAt = baseTime.Add(2 * time.Hour) })
	middle := newListing("middle", "London", "Wedding")
	mustCreate(t, repo, oldFeatured, hidden, newest, middle)

	got, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newest.ID, hidden.ID, middle.ID}, ids(got))

	all, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, oldFeatured.ID, all[len(all)-1].ID)
}

func TestListingRepository_LockFeatured(t *testing.T) {
	db := testdb.Open(t)
	repo := postgres.NewListingRepository(db)

	require.NoError(t, repo.LockFeatured(context.Background()))

	err := postgres.NewTransactionManager(db).Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		return repos.NewListingRepository().LockFeatured(context.Background())
	})
	require.NoError(t, err)
}

func TestListingRepository_FindBatch(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	for i := range 5 {
		mustCreate(t, repo, newListing(fmt.Sprintf("l%d", i), "London", "Wedding", func(l *entity.Listing) {
			l.IsActive = i%2 == 0
		}))
	}

	var seen []uuid.UUID
	cursor := uuid.Nil
	for {
		batch, err := repo.FindBatch(ctx, true, cursor, 2)
		require.NoError(t, err)
		if len(batch) == 0 {
			break
		}
		for _, listing := range batch {
			assert.True(t, listing.IsActive)
			seen = append(seen, listing.ID)
		}
		cursor = batch[len(batch)-1].ID
	}

	assert.Len(t, seen, 3)
	assert.True(t, slices.IsSortedFunc(seen, func(a, b uuid.UUID) int {
		return compareStrings(a.String(), b.String())
	}))
}

func TestListingRepository_FlagsPriorityAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	first := newListing("first", "London", "Wedding", func(l *entity.Listing) { l.Approved = false })
	second := newListing("second", "London", "Wedding", func(l *entity.Listing) { l.Approved = false })
	third := newListing("third", "London", "Wedding")
	mustCreate(t, repo, first, second, third)

	approved := true
	affected, err := repo.SetFlags(ctx, []uuid.UUID{first.ID, second.ID}, repository.ListingFlags{Approved: &approved})
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	require.NoError(t, repo.SetPriority(ctx, third.ID, 7))
	assert.ErrorIs(t, repo.SetPriority(ctx, uuid.New(), 1), repository.ErrListingNotFound)

	found, err := repo.FindByID(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.Priority)

	deleted, err := repo.DeleteMany(ctx, []uuid.UUID{first.ID, second.ID, uuid.New()})
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	require.NoError(t, repo.Delete(ctx, third.ID))
	assert.ErrorIs(t, repo.Delete(ctx, third.ID), repository.ErrListingNotFound)
}

func TestListingRepository_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))
	userID := uuid.New()

	mustCreate(t, repo,
		newListing("a", "London", "Wedding", func(l *entity.Listing) { l.UserID = userID }),
		newListing("b", "London", "Wedding", func(l *entity.Listing) {
			l.UserID = userID
			l.IsActive = false
		}),
		newListing("c", "London", "Wedding"),
	)

	deleted, err := repo.DeleteByUser(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	count, err := repo.Count(ctx, entity.ListingFilter{Scope: entity.ScopeAdminAll})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListingRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewListingRepository(testdb.Open(t))

	mustCreate(t, repo,
		newListing("a", "London", "Wedding", func(l *entity.Listing) { l.ViewsCount = 10 }),
		newListing("b", "London", "Portrait", func(l *entity.Listing) {
			l.Featured = true
			l.ViewsCount = 30
		}),
		newListing("c", "Leeds", "Wedding", func(l *entity.Listing) {
			l.Approved = false
			l.CreatedAt = baseTime.Add(-30 * 24 * time.Hour)
		}),
		newListing("d", "Bath", "Wedding", func(l *entity.Listing) { l.IsActive = false }),
	)

	stats, err := repo.Stats(ctx, baseTime.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, &entity.ListingStats{
		Total:           4,
		Active:          3,
		Inactive:        1,
		Featured:        1,
		PendingApproval: 1,
		RecentSignups:   3,
	}, stats)

	byCity, err := repo.CountByGroup(ctx, repository.GroupByCity, 20)
	require.NoError(t, err)
	assert.Equal(t, []entity.ValueCount{
		{Value: "London", Count: 2},
		{Value: "Bath", Count: 1},
		{Value: "Leeds", Count: 1},
	}, byCity)

	_, err = repo.CountByGroup(ctx, repository.ListingGroup("slug"), 20)
	assert.Error(t, err)

	mostViewed, err := repo.MostViewed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mostViewed, 1)
	assert.Equal(t, "b", mostViewed[0].BusinessName)

	created, err := repo.CreatedSince(ctx, baseTime.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, created, 3)

	categories, err := repo.DistinctValues(ctx, repository.GroupByCategory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Portrait", "Wedding"}, categories)

	pairs, err := repo.CityCategoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.CityCategory{
		{City: "London", Category: "Portrait", Listings: 1, Featured: 1},
		{City: "London", Category: "Wedding", Listings: 1, Featured: 0},
	}, pairs)
}

func expected(listings []*entity.Listing, filter entity.ListingFilter) []*entity.Listing {
	var matched []*entity.Listing
	for _, listing := range listings {
		if filter.Matches(listing) {
			matched = append(matched, listing)
		}
	}
	slices.SortFunc(matched, func(a, b *entity.Listing) int {
		switch {
		case entity.RanksBefore(a, b):
			return -1
		case entity.RanksBefore(b, a):
			return 1
		default:
			return 0
		}
	})

	return matched
}

func requireASCII(t *testing.T, listings []*entity.Listing, filters []entity.ListingFilter) {
	t.Helper()

	texts := make([]string, 0, len(listings)*4+len(filters))
	for _, listing := range listings {
		texts = append(texts, listing.BusinessName, listing.Description, listing.City, listing.Category)
	}
	for _, filter := range filters {
		texts = append(texts, filter.Search)
	}
	for _, text := range texts {
		for _, r := range text {
			require.Less(t, r, rune(utf8.RuneSelf), "non-ASCII fixture %q", text)
		}
	}
}

func ids(listings []*entity.Listing) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(listings))
	for _, listing := range listings {
		out = append(out, listing.ID)
	}

	return out
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
