package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/domain/seo"
	"directory/internal/domain/service"
	"directory/internal/errors"
	"directory/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultPublicPageSize = 20
	defaultRelatedLimit   = 6

	directoryDescription = "Find professional photographers across the UK. Browse portfolios, compare services, and connect with local photography experts."
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	listingRepo repository.ListingRepository
	settings    usecase.SettingsUsecase
	qrcode      service.QRCodeService
	metrics     service.DirectoryMetrics
	config      *config.Config
	logger      *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Settings    usecase.SettingsUsecase
	QRCode      service.QRCodeService
	Metrics     service.DirectoryMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		listingRepo: params.ListingRepo,
		settings:    params.Settings,
		qrcode:      params.QRCode,
		metrics:     params.Metrics,
		config:      params.Config,
		logger:      params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// enabledSettings returns the settings, or NotFound while the directory is disabled.
func (srv *directoryService) enabledSettings(ctx context.Context) (*entity.DirectorySettings, error) {
	settings, err := srv.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "directory disabled")
	}

	return settings, nil
}

func (srv *directoryService) pageSize() int {
	if srv.config.Directory != nil && srv.config.Directory.PublicPageSize > 0 {
		return srv.config.Directory.PublicPageSize
	}

	return defaultPublicPageSize
}

func (srv *directoryService) relatedLimit() int {
	if srv.config.Directory != nil && srv.config.Directory.RelatedLimit > 0 {
		return srv.config.Directory.RelatedLimit
	}

	return defaultRelatedLimit
}

// ListListings returns a page of visible listings.
func (srv *directoryService) ListListings(ctx context.Context, query usecase.ListingQuery) (*usecase.DirectoryIndex, error) {
	settings, err := srv.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}

	filter := entity.ListingFilter{
		Scope:    entity.ScopePublicVisible,
		City:     strings.TrimSpace(query.City),
		Category: strings.TrimSpace(query.Category),
		Search:   strings.TrimSpace(query.Search),
	}

	page, err := findPage(ctx, srv.listingRepo, filter, query.Page, srv.pageSize())
	if err != nil {
		return nil, err
	}

	lists := settings.AllowLists()

	return &usecase.DirectoryIndex{
		ListingPage: page,
		Cities:      lists.SortedCities(),
		Categories:  lists.SortedCategories(),
		SEO: usecase.SEOBlock{
			Title:        fmt.Sprintf("Photography Directory | %s", siteName(srv.config)),
			Description:  directoryDescription,
			CanonicalURL: absoluteURL(srv.config, seo.PathPrefix),
		},
	}, nil
}

// GetCityCategoryPage resolves the segment against the live allow-lists.
func (srv *directoryService) GetCityCategoryPage(ctx context.Context, segment string, page int) (*usecase.CityCategoryPage, error) {
	settings, err := srv.enabledSettings(ctx)
	if err != nil {
		return nil, err
	}

	lists := settings.AllowLists()
	city, category, err := seo.Resolve(segment, lists.Cities, lists.Categories)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "unknown city/category segment %q", segment)
	}

	filter := entity.ListingFilter{
		Scope:    entity.ScopePublicVisible,
		City:     city,
		Category: category,
	}

	listingPage, err := findPage(ctx, srv.listingRepo, filter, page, srv.pageSize())
	if err != nil {
		return nil, err
	}

	return &usecase.CityCategoryPage{
		ListingPage: listingPage,
		City:        city,
		Category:    category,
		SEO: usecase.SEOBlock{
			Title:        CityCategoryTitle(city, category, siteName(srv.config)),
			Description:  CityCategoryDescription(city, category),
			CanonicalURL: absoluteURL(srv.config, seo.CityCategoryPath(city, category)),
		},
	}, nil
}

// GetListingProfile returns a visible listing and counts the view.
func (srv *directoryService) GetListingProfile(ctx context.Context, segment, slug string) (*usecase.ListingProfile, error) {
	if _, err := srv.enabledSettings(ctx); err != nil {
		return nil, err
	}

	listing, err := srv.findVisibleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if segment != listing.CityCategorySegment() {
		return &usecase.ListingProfile{
			Listing:      listing,
			RedirectPath: listing.ProfilePath(),
		}, nil
	}

	if err := srv.listingRepo.IncrementViews(ctx, listing.ID); err != nil {
		srv.log(ctx).Warn("Failed to increment listing views",
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err),
		)
	} else {
		listing.ViewsCount++
		srv.metrics.ListingViewed(listing.City, listing.Category)
	}

	related, err := srv.listingRepo.Find(ctx, entity.ListingFilter{
		Scope:     entity.ScopePublicVisible,
		City:      listing.City,
		Category:  listing.Category,
		ExcludeID: listing.ID,
	}, 0, srv.relatedLimit())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find related listings")
	}

	return &usecase.ListingProfile{
		Listing: listing,
		Related: related,
		SEO: usecase.SEOBlock{
			Title:        listing.SEOTitle(),
			Description:  listing.SEODescription(),
			CanonicalURL: absoluteURL(srv.config, listing.ProfilePath()),
		},
	}, nil
}

// GetListingQRCode encodes the absolute profile URL of a visible listing.
func (srv *directoryService) GetListingQRCode(ctx context.Context, slug string) ([]byte, error) {
	if _, err := srv.enabledSettings(ctx); err != nil {
		return nil, err
	}

	listing, err := srv.findVisibleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateURLQR(absoluteURL(srv.config, listing.ProfilePath()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

func (srv *directoryService) findVisibleBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "listing %q not found", slug)
		}

		return nil, errors.Wrap(err, "failed to find listing by slug")
	}
	if !listing.IsVisible() {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "listing %q not visible", slug)
	}

	return listing, nil
}

// CityCategoryTitle is the page title of a city/category page.
func CityCategoryTitle(city, category, site string) string {
	return fmt.Sprintf("%s %ss | %s", city, category, site)
}

// CityCategoryDescription is the meta description of a city/category page.
func CityCategoryDescription(city, category string) string {
	return fmt.Sprintf("Find the best %ss in %s. Browse portfolios, compare packages, and contact local photography professionals.",
		strings.ToLower(category), city)
}
