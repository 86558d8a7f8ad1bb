package entity

import (
	"fmt"
	"strconv"
	"time"

	"directory/internal/domain/seo"

	"github.com/google/uuid"
)

// Listing is a business published in the directory by its owning user.
type Listing struct {
	ID           uuid.UUID        // Assigned by the application on creation.
	UserID       uuid.UUID        // The owning user.
	BusinessName string           // Display name, at most 100 characters.
	Description  string           // Free text, at most 500 characters.
	City         string           // Member of the city allow-list at save time.
	Category     string           // Member of the category allow-list at save time.
	Slug         string           // Globally unique, derived from the name once.
	Website      string           // Optional URL.
	Instagram    string           // Optional URL.
	Facebook     string           // Optional URL.
	TikTok       string           // Optional URL.
	Email        string           // Optional contact address.
	Phone        string           // Optional free text.
	Images       []string         // Ordered image references.
	Packages     []ServicePackage // Ordered service packages.
	ViewsCount   int64            // Profile render counter.
	Featured     bool             // Ranked above non-featured listings.
	Priority     int              // Ranked descending within the featured group.
	Approved     bool             // Moderation gate.
	IsActive     bool             // Entitlement gate, at most one per user.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ServicePackage is a priced offering shown on a listing profile.
type ServicePackage struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"` // Decimal with optional two fraction digits.
}

// FormattedPrice renders the package price in pounds, empty when unset.
func (p ServicePackage) FormattedPrice() string {
	if p.Price == "" {
		return ""
	}
	value, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return ""
	}
	if value == float64(int64(value)) {
		return fmt.Sprintf("£%d", int64(value))
	}

	return fmt.Sprintf("£%.2f", value)
}

// IsVisible reports whether the listing is shown on public pages.
func (l *Listing) IsVisible() bool {
	return l.IsActive && l.Approved
}

// CityCategorySegment returns the combined city/category path segment.
func (l *Listing) CityCategorySegment() string {
	return seo.Segment(l.City, l.Category)
}

// CityCategoryPath returns the path of the listing's city/category page.
func (l *Listing) CityCategoryPath() string {
	return seo.CityCategoryPath(l.City, l.Category)
}

// ProfilePath returns the canonical path of the listing profile.
func (l *Listing) ProfilePath() string {
	return seo.ProfilePath(l.City, l.Category, l.Slug)
}

// SEOTitle returns the HTML title of the listing profile.
func (l *Listing) SEOTitle() string {
	return fmt.Sprintf("%s - %s in %s", l.BusinessName, l.Category, l.City)
}

// SEODescription returns the meta description of the listing profile.
func (l *Listing) SEODescription() string {
	return seo.Truncate(l.Description, seo.DescriptionLimit)
}

// Link is a labelled outbound link rendered on a profile.
type Link struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// SocialLinks returns the non-empty web and social profile links.
func (l *Listing) SocialLinks() []Link {
	candidates := []Link{
		{Kind: "website", Label: "Website", URL: l.Website, Icon: "globe"},
		{Kind: "instagram", Label: "Instagram", URL: l.Instagram, Icon: "instagram"},
		{Kind: "facebook", Label: "Facebook", URL: l.Facebook, Icon: "facebook"},
		{Kind: "tiktok", Label: "TikTok", URL: l.TikTok, Icon: "tiktok"},
	}

	links := make([]Link, 0, len(candidates))
	for _, link := range candidates {
		if link.URL != "" {
			links = append(links, link)
		}
	}

	return links
}

// ContactMethods returns the ways a visitor can reach the business.
func (l *Listing) ContactMethods() []Link {
	var methods []Link
	if l.Email != "" {
		methods = append(methods, Link{Kind: "email", Label: "Email " + l.BusinessName, URL: "mailto:" + l.Email, Icon: "envelope"})
	}
	if l.Phone != "" {
		methods = append(methods, Link{Kind: "phone", Label: "Call " + l.BusinessName, URL: "tel:" + l.Phone, Icon: "phone"})
	}
	if l.Website != "" {
		methods = append(methods, Link{Kind: "website", Label: "Visit Website", URL: l.Website, Icon: "globe"})
	}

	return methods
}

// PreviewImages returns at most n leading images.
func (l *Listing) PreviewImages(n int) []string {
	if len(l.Images) <= n {
		return l.Images
	}

	return l.Images[:n]
}
