package entity

import (
	"slices"
	"strings"
	"time"
)

// DirectorySettings are the runtime settings editable by staff.
type DirectorySettings struct {
	Enabled                       bool
	AutoApprove                   bool
	MaxImages                     int
	ShowInSitemap                 bool
	FeaturedLimit                 int // Zero means unlimited.
	Locations                     []string
	Categories                    []string
	SubscriptionPlanID            string // Empty disables entitlement gating.
	SendExpiryNotifications       bool
	SendReactivationNotifications bool
	UpdatedAt                     time.Time
}

// AllowLists returns the city and category allow-lists.
func (s *DirectorySettings) AllowLists() AllowLists {
	return AllowLists{
		Cities:     CleanList(s.Locations),
		Categories: CleanList(s.Categories),
	}
}

// AllowLists are the ordered sets of accepted cities and categories.
type AllowLists struct {
	Cities     []string
	Categories []string
}

// HasCity reports whether city is an exact member of the city list.
func (a AllowLists) HasCity(city string) bool {
	return slices.Contains(a.Cities, city)
}

// HasCategory reports whether category is an exact member of the category list.
func (a AllowLists) HasCategory(category string) bool {
	return slices.Contains(a.Categories, category)
}

// SortedCities returns the cities in alphabetical order.
func (a AllowLists) SortedCities() []string {
	return sortedCopy(a.Cities)
}

// SortedCategories returns the categories in alphabetical order.
func (a AllowLists) SortedCategories() []string {
	return sortedCopy(a.Categories)
}

// CleanList trims entries and drops blanks and duplicates, keeping order.
func CleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || slices.Contains(cleaned, value) {
			continue
		}
		cleaned = append(cleaned, value)
	}

	return cleaned
}

func sortedCopy(values []string) []string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return sorted
}
