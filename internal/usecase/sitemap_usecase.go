package usecase

import (
	"context"
	"time"
)

// Sitemap change frequencies
const (
	ChangeFreqWeekly  = "weekly"
	ChangeFreqMonthly = "monthly"
)

// SitemapEntry is one URL offered to search engines
type SitemapEntry struct {
	URL        string     `json:"url"`
	Priority   float64    `json:"priority"`
	ChangeFreq string     `json:"changefreq"`
	LastMod    *time.Time `json:"lastmod,omitempty"`
}

// CityCategorySnapshot is the precomputed summary of a city/category page
type CityCategorySnapshot struct {
	City          string         `json:"city"`
	Category      string         `json:"category"`
	Slug          string         `json:"slug"`
	URL           string         `json:"url"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ListingsCount int64          `json:"listings_count"`
	FeaturedCount int64          `json:"featured_count"`
	LastUpdated   time.Time      `json:"last_updated"`
	SchemaData    map[string]any `json:"schema_data"`
}

// SitemapUsecase maintains the sitemap entries and city/category page snapshots
type SitemapUsecase interface {
	// GenerateCityCategoryPages stores a snapshot per city/category with visible listings
	GenerateCityCategoryPages(ctx context.Context) (int, error)

	// GenerateSitemapEntries stores the sitemap entries of the directory
	GenerateSitemapEntries(ctx context.Context) (int, error)

	// Entries returns the stored sitemap entries
	Entries(ctx context.Context) ([]SitemapEntry, error)

	// CityCategorySnapshot returns the stored snapshot of a city/category segment
	CityCategorySnapshot(ctx context.Context, segment string) (*CityCategorySnapshot, error)
}
