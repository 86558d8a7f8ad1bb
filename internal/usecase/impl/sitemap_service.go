package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/seo"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	sitemapEntriesKey = "sitemap/entries.json"
	pageSnapshotDir   = "pages"

	indexPriority        = 0.8
	cityCategoryPriority = 0.7
	profilePriority      = 0.6
)

// sitemapService implements the SitemapUsecase interface.
type sitemapService struct {
	listingRepo repository.ListingRepository
	settings    usecase.SettingsUsecase
	store       service.SnapshotStore
	config      *config.Config
	logger      *slog.Logger
}

// SitemapServiceParams holds dependencies for SitemapService, injected by Fx.
type SitemapServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Settings    usecase.SettingsUsecase
	Store       service.SnapshotStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSitemapService is the constructor for sitemapService.
func NewSitemapService(params SitemapServiceParams) usecase.SitemapUsecase {
	return &sitemapService{
		listingRepo: params.ListingRepo,
		settings:    params.Settings,
		store:       params.Store,
		config:      params.Config,
		logger:      params.Logger,
	}
}

func (srv *sitemapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sitemapService) batchSize() int {
	if srv.config.Scheduler != nil && srv.config.Scheduler.BatchSize > 0 {
		return srv.config.Scheduler.BatchSize
	}

	return defaultSweepBatchSize
}

// GenerateCityCategoryPages stores one snapshot per city/category pair with visible listings.
func (srv *sitemapService) GenerateCityCategoryPages(ctx context.Context) (int, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	if !settings.Enabled {
		srv.log(ctx).Info("Directory disabled, skipping city/category pages")

		return 0, nil
	}

	pairs, err := srv.listingRepo.CityCategoryCounts(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count city/category pairs")
	}

	listings, err := srv.visibleListings(ctx)
	if err != nil {
		return 0, err
	}
	lastUpdated := latestUpdates(listings)

	generated := 0
	for _, pair := range pairs {
		snapshot := srv.pageSnapshot(pair, lastUpdated[seo.Segment(pair.City, pair.Category)])
		if err := srv.store.Put(ctx, pageSnapshotKey(snapshot.Slug), snapshot); err != nil {
			return generated, errors.Wrapf(err, "failed to store page snapshot %q", snapshot.Slug)
		}
		generated++
	}

	srv.log(ctx).Info("City/category pages generated", slog.Int("pages", generated))

	return generated, nil
}

func (srv *sitemapService) pageSnapshot(pair entity.CityCategory, lastUpdated time.Time) *usecase.CityCategorySnapshot {
	site := siteName(srv.config)
	title := CityCategoryTitle(pair.City, pair.Category, site)
	description := CityCategoryDescription(pair.City, pair.Category)
	url := absoluteURL(srv.config, seo.CityCategoryPath(pair.City, pair.Category))

	countryCode := ""
	if srv.config.Directory != nil {
		countryCode = srv.config.Directory.CountryCode
	}

	return &usecase.CityCategorySnapshot{
		City:          pair.City,
		Category:      pair.Category,
		Slug:          seo.Segment(pair.City, pair.Category),
		URL:           url,
		Title:         title,
		Description:   description,
		ListingsCount: pair.Listings,
		FeaturedCount: pair.Featured,
		LastUpdated:   lastUpdated,
		SchemaData: map[string]any{
			"@context":    "https://schema.org",
			"@type":       "CollectionPage",
			"name":        title,
			"description": description,
			"url":         url,
			"mainEntity": map[string]any{
				"@type":         "ItemList",
				"numberOfItems": pair.Listings,
			},
			"provider": map[string]any{
				"@type": "Organization",
				"name":  site,
			},
			"about": map[string]any{
				"@type": "Place",
				"name":  pair.City,
				"address": map[string]any{
					"@type":           "PostalAddress",
					"addressLocality": pair.City,
					"addressCountry":  countryCode,
				},
			},
		},
	}
}

// GenerateSitemapEntries stores the directory index, every city/category
// page and every visible profile as sitemap entries.
func (srv *sitemapService) GenerateSitemapEntries(ctx context.Context) (int, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return 0, err
	}

	entries := []usecase.SitemapEntry{}
	if settings.Enabled && settings.ShowInSitemap {
		entries, err = srv.buildEntries(ctx)
		if err != nil {
			return 0, err
		}
	}

	if err := srv.store.Put(ctx, sitemapEntriesKey, entries); err != nil {
		return 0, errors.Wrap(err, "failed to store sitemap entries")
	}

	srv.log(ctx).Info("Sitemap entries generated", slog.Int("entries", len(entries)))

	return len(entries), nil
}

func (srv *sitemapService) buildEntries(ctx context.Context) ([]usecase.SitemapEntry, error) {
	pairs, err := srv.listingRepo.CityCategoryCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count city/category pairs")
	}

	listings, err := srv.visibleListings(ctx)
	if err != nil {
		return nil, err
	}
	lastUpdated := latestUpdates(listings)

	entries := make([]usecase.SitemapEntry, 0, 1+len(pairs)+len(listings))
	entries = append(entries, usecase.SitemapEntry{
		URL:        absoluteURL(srv.config, seo.PathPrefix),
		Priority:   indexPriority,
		ChangeFreq: usecase.ChangeFreqWeekly,
	})

	for _, pair := range pairs {
		entry := usecase.SitemapEntry{
			URL:        absoluteURL(srv.config, seo.CityCategoryPath(pair.City, pair.Category)),
			Priority:   cityCategoryPriority,
			ChangeFreq: usecase.ChangeFreqWeekly,
		}
		if updated, ok := lastUpdated[seo.Segment(pair.City, pair.Category)]; ok {
			entry.LastMod = &updated
		}
		entries = append(entries, entry)
	}

	for _, listing := range listings {
		updated := listing.UpdatedAt.UTC()
		entries = append(entries, usecase.SitemapEntry{
			URL:        absoluteURL(srv.config, listing.ProfilePath()),
			Priority:   profilePriority,
			ChangeFreq: usecase.ChangeFreqMonthly,
			LastMod:    &updated,
		})
	}

	return entries, nil
}

// Entries returns the stored sitemap entries, empty when none were generated.
func (srv *sitemapService) Entries(ctx context.Context) ([]usecase.SitemapEntry, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled || !settings.ShowInSitemap {
		return []usecase.SitemapEntry{}, nil
	}

	var entries []usecase.SitemapEntry
	if err := srv.store.Get(ctx, sitemapEntriesKey, &entries); err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			return []usecase.SitemapEntry{}, nil
		}

		return nil, errors.Wrap(err, "failed to read sitemap entries")
	}
	if entries == nil {
		entries = []usecase.SitemapEntry{}
	}

	return entries, nil
}

// CityCategorySnapshot returns the stored snapshot of a city/category segment.
func (srv *sitemapService) CityCategorySnapshot(ctx context.Context, segment string) (*usecase.CityCategorySnapshot, error) {
	if segment == "" || strings.ContainsAny(segment, "/\\.") {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "invalid segment %q", segment)
	}

	var snapshot usecase.CityCategorySnapshot
	if err := srv.store.Get(ctx, pageSnapshotKey(segment), &snapshot); err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "no snapshot for %q", segment)
		}

		return nil, errors.Wrap(err, "failed to read page snapshot")
	}

	return &snapshot, nil
}

// visibleListings walks the active listings in id order and keeps the approved ones.
func (srv *sitemapService) visibleListings(ctx context.Context) ([]*entity.Listing, error) {
	var visible []*entity.Listing

	size := srv.batchSize()
	cursor := uuid.Nil
	for {
		batch, err := srv.listingRepo.FindBatch(ctx, true, cursor, size)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load listing batch")
		}
		for _, listing := range batch {
			if listing.IsVisible() {
				visible = append(visible, listing)
			}
			cursor = listing.ID
		}
		if len(batch) < size {
			return visible, nil
		}
	}
}

// latestUpdates returns the newest updated_at per city/category segment.
func latestUpdates(listings []*entity.Listing) map[string]time.Time {
	latest := make(map[string]time.Time)
	for _, listing := range listings {
		segment := listing.CityCategorySegment()
		if updated := listing.UpdatedAt.UTC(); updated.After(latest[segment]) {
			latest[segment] = updated
		}
	}

	return latest
}

func pageSnapshotKey(segment string) string {
	return pageSnapshotDir + "/" + segment + ".json"
}
