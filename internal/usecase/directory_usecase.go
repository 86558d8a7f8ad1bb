package usecase

import (
	"context"

	"directory/internal/domain/directory"
	"directory/internal/domain/entity"
)

// ListingQuery holds the public directory filters
type ListingQuery struct {
	City     string
	Category string
	Search   string
	Page     int
}

// ListingPage is one page of listings in display order
type ListingPage struct {
	Listings   []*entity.Listing
	Pagination directory.Pagination
}

// SEOBlock is the metadata rendered in a page head
type SEOBlock struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CanonicalURL string `json:"canonical_url"`
}

// DirectoryIndex is the public directory landing page
type DirectoryIndex struct {
	ListingPage
	Cities     []string
	Categories []string
	SEO        SEOBlock
}

// CityCategoryPage lists the visible listings of one city and category
type CityCategoryPage struct {
	ListingPage
	City     string
	Category string
	SEO      SEOBlock
}

// ListingProfile is a public listing detail page. RedirectPath is set when the
// listing was requested under a non-canonical city/category segment.
type ListingProfile struct {
	Listing      *entity.Listing
	Related      []*entity.Listing
	SEO          SEOBlock
	RedirectPath string
}

// DirectoryUsecase defines the interface for the public directory use cases
type DirectoryUsecase interface {
	// ListListings returns a page of visible listings with the filter facets
	ListListings(ctx context.Context, query ListingQuery) (*DirectoryIndex, error)

	// GetCityCategoryPage resolves a "{city}-{category}-photographers" segment and returns its listings
	GetCityCategoryPage(ctx context.Context, segment string, page int) (*CityCategoryPage, error)

	// GetListingProfile returns a visible listing with related listings and counts the view
	GetListingProfile(ctx context.Context, segment, slug string) (*ListingProfile, error)

	// GetListingQRCode returns a PNG QR code of the absolute profile URL
	GetListingQRCode(ctx context.Context, slug string) ([]byte, error)
}
