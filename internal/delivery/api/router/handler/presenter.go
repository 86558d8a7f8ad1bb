package handler

import (
	"time"

	"directory/internal/domain/directory"
	"directory/internal/domain/entity"
	"directory/internal/usecase"

	"github.com/google/uuid"
)

const summaryImages = 3

// ListingSummary is a listing card on index and city/category pages.
type ListingSummary struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	Description  string    `json:"description"`
	City         string    `json:"city"`
	Category     string    `json:"category"`
	Slug         string    `json:"slug"`
	URL          string    `json:"url"`
	Images       []string  `json:"images"`
	Featured     bool      `json:"featured"`
	ViewsCount   int64     `json:"views_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// PackageView is a service package with its display price.
type PackageView struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Price          string `json:"price,omitempty"`
	FormattedPrice string `json:"formatted_price,omitempty"`
}

// ListingDetail is the full public profile of a listing.
type ListingDetail struct {
	ListingSummary
	Website        string        `json:"website,omitempty"`
	Instagram      string        `json:"instagram,omitempty"`
	Facebook       string        `json:"facebook,omitempty"`
	TikTok         string        `json:"tiktok,omitempty"`
	Email          string        `json:"email,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Packages       []PackageView `json:"packages"`
	SocialLinks    []entity.Link `json:"social_links"`
	ContactMethods []entity.Link `json:"contact_methods"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// AdminListing adds the moderation state to a listing detail.
type AdminListing struct {
	ListingDetail
	UserID   uuid.UUID `json:"user_id"`
	Priority int       `json:"priority"`
	Approved bool      `json:"approved"`
	IsActive bool      `json:"is_active"`
}

// ListingPageResponse is a page of listing cards.
type ListingPageResponse struct {
	Listings   []ListingSummary     `json:"listings"`
	Pagination directory.Pagination `json:"pagination"`
}

func summaryOf(l *entity.Listing) ListingSummary {
	return ListingSummary{
		ID:           l.ID,
		BusinessName: l.BusinessName,
		Description:  l.Description,
		City:         l.City,
		Category:     l.Category,
		Slug:         l.Slug,
		URL:          l.ProfilePath(),
		Images:       nonNil(l.PreviewImages(summaryImages)),
		Featured:     l.Featured,
		ViewsCount:   l.ViewsCount,
		CreatedAt:    l.CreatedAt,
	}
}

func detailOf(l *entity.Listing) ListingDetail {
	summary := summaryOf(l)
	summary.Images = nonNil(l.Images)

	packages := make([]PackageView, 0, len(l.Packages))
	for _, pkg := range l.Packages {
		packages = append(packages, PackageView{
			Name:           pkg.Name,
			Description:    pkg.Description,
			Price:          pkg.Price,
			FormattedPrice: pkg.FormattedPrice(),
		})
	}

	contacts := l.ContactMethods()
	if contacts == nil {
		contacts = []entity.Link{}
	}

	return ListingDetail{
		ListingSummary: summary,
		Website:        l.Website,
		Instagram:      l.Instagram,
		Facebook:       l.Facebook,
		TikTok:         l.TikTok,
		Email:          l.Email,
		Phone:          l.Phone,
		Packages:       packages,
		SocialLinks:    l.SocialLinks(),
		ContactMethods: contacts,
		UpdatedAt:      l.UpdatedAt,
	}
}

func adminListingOf(l *entity.Listing) AdminListing {
	return AdminListing{
		ListingDetail: detailOf(l),
		UserID:        l.UserID,
		Priority:      l.Priority,
		Approved:      l.Approved,
		IsActive:      l.IsActive,
	}
}

func summariesOf(listings []*entity.Listing) []ListingSummary {
	summaries := make([]ListingSummary, 0, len(listings))
	for _, l := range listings {
		summaries = append(summaries, summaryOf(l))
	}

	return summaries
}

func adminListingsOf(listings []*entity.Listing) []AdminListing {
	views := make([]AdminListing, 0, len(listings))
	for _, l := range listings {
		views = append(views, adminListingOf(l))
	}

	return views
}

func pageOf(page usecase.ListingPage) ListingPageResponse {
	return ListingPageResponse{
		Listings:   summariesOf(page.Listings),
		Pagination: page.Pagination,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
