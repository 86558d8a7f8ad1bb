package directory

import (
	"strings"

	"directory/internal/domain/entity"
	"directory/internal/domain/seo"
)

// ListingInput is the owner-editable content of a listing.
type ListingInput struct {
	BusinessName string                  `json:"business_name" validate:"required,max=100"`
	Description  string                  `json:"description" validate:"required,max=500"`
	City         string                  `json:"city" validate:"required"`
	Category     string                  `json:"category" validate:"required"`
	Website      string                  `json:"website" validate:"omitempty,url"`
	Instagram    string                  `json:"instagram" validate:"omitempty,url"`
	Facebook     string                  `json:"facebook" validate:"omitempty,url"`
	TikTok       string                  `json:"tiktok" validate:"omitempty,url"`
	Email        string                  `json:"email" validate:"omitempty,email"`
	Phone        string                  `json:"phone" validate:"omitempty,max=50"`
	Images       []string                `json:"images"`
	Packages     []entity.ServicePackage `json:"packages"`
}

// InputFromListing returns the editable content of an existing listing.
func InputFromListing(l *entity.Listing) ListingInput {
	return ListingInput{
		BusinessName: l.BusinessName,
		Description:  l.Description,
		City:         l.City,
		Category:     l.Category,
		Website:      l.Website,
		Instagram:    l.Instagram,
		Facebook:     l.Facebook,
		TikTok:       l.TikTok,
		Email:        l.Email,
		Phone:        l.Phone,
		Images:       l.Images,
		Packages:     l.Packages,
	}
}

// Normalize trims the input, title-cases city and category (adopting the
// allow-list spelling when one matches case-insensitively) and adds an
// https scheme to URLs that lack one.
func Normalize(in ListingInput, lists entity.AllowLists) ListingInput {
	out := ListingInput{
		BusinessName: strings.TrimSpace(in.BusinessName),
		Description:  strings.TrimSpace(in.Description),
		City:         canonicalValue(in.City, lists.Cities),
		Category:     canonicalValue(in.Category, lists.Categories),
		Website:      NormalizeURL(in.Website),
		Instagram:    NormalizeURL(in.Instagram),
		Facebook:     NormalizeURL(in.Facebook),
		TikTok:       NormalizeURL(in.TikTok),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
	}

	for _, image := range in.Images {
		if image = strings.TrimSpace(image); image != "" {
			out.Images = append(out.Images, image)
		}
	}

	for _, pkg := range in.Packages {
		out.Packages = append(out.Packages, entity.ServicePackage{
			Name:        strings.TrimSpace(pkg.Name),
			Description: strings.TrimSpace(pkg.Description),
			Price:       strings.TrimSpace(pkg.Price),
		})
	}

	return out
}

// Apply copies the input onto the listing.
func (in ListingInput) Apply(l *entity.Listing) {
	l.BusinessName = in.BusinessName
	l.Description = in.Description
	l.City = in.City
	l.Category = in.Category
	l.Website = in.Website
	l.Instagram = in.Instagram
	l.Facebook = in.Facebook
	l.TikTok = in.TikTok
	l.Email = in.Email
	l.Phone = in.Phone
	l.Images = in.Images
	l.Packages = in.Packages
}

// NormalizeURL prefixes https:// to a non-empty value without an http(s) scheme.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}

	return "https://" + raw
}

func canonicalValue(value string, allowed []string) string {
	value = seo.TitleCase(value)
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, value) {
			return candidate
		}
	}

	return value
}
