package entity

import (
	"strings"

	"github.com/google/uuid"
)

// VisibilityScope selects which listings a query may return.
type VisibilityScope int

const (
	// ScopePublicVisible returns active and approved listings only.
	ScopePublicVisible VisibilityScope = iota
	// ScopeAdminAll returns every listing.
	ScopeAdminAll
	// ScopeAdminStatus returns the listings matching ListingFilter.Status.
	ScopeAdminStatus
)

// ListingStatus is an admin status filter.
type ListingStatus string

const (
	StatusActive          ListingStatus = "active"
	StatusInactive        ListingStatus = "inactive"
	StatusFeatured        ListingStatus = "featured"
	StatusPendingApproval ListingStatus = "pending_approval"
)

// IsValid checks if the status is a known admin filter.
func (s ListingStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusFeatured, StatusPendingApproval:
		return true
	default:
		return false
	}
}

// ListingFilter describes a listing query. Empty fields do not filter.
type ListingFilter struct {
	Scope     VisibilityScope
	Status    ListingStatus // Used with ScopeAdminStatus.
	City      string        // Exact match.
	Category  string        // Exact match.
	Search    string        // Case-insensitive substring of name, description, city or category.
	ExcludeID uuid.UUID     // Omitted from results when set.
}

// Matches reports whether the listing satisfies the filter. Repositories
// implement the same predicate in their query language.
func (f ListingFilter) Matches(l *Listing) bool {
	if !f.matchesScope(l) {
		return false
	}
	if f.City != "" && l.City != f.City {
		return false
	}
	if f.Category != "" && l.Category != f.Category {
		return false
	}
	if f.ExcludeID != uuid.Nil && l.ID == f.ExcludeID {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystacks := []string{l.BusinessName, l.Description, l.City, l.Category}
		for _, haystack := range haystacks {
			if strings.Contains(strings.ToLower(haystack), needle) {
				return true
			}
		}

		return false
	}

	return true
}

func (f ListingFilter) matchesScope(l *Listing) bool {
	switch f.Scope {
	case ScopePublicVisible:
		return l.IsVisible()
	case ScopeAdminStatus:
		switch f.Status {
		case StatusActive:
			return l.IsActive
		case StatusInactive:
			return !l.IsActive
		case StatusFeatured:
			return l.Featured
		case StatusPendingApproval:
			return !l.Approved
		}

		return true
	default:
		return true
	}
}

// RanksBefore reports whether a is displayed before b: featured first, then
// higher priority, then newer, then by id.
func RanksBefore(a, b *Listing) bool {
	if a.Featured != b.Featured {
		return a.Featured
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}

	return strings.Compare(a.ID.String(), b.ID.String()) > 0
}
