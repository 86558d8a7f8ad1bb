package entity

import (
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListingFilter_Matches(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	visible := &Listing{ID: uuid.New(), BusinessName: "Acme Studio", Description: "Weddings", City: "London", Category: "Wedding", IsActive: true, Approved: true, CreatedAt: base}
	pending := &Listing{ID: uuid.New(), BusinessName: "Bright", City: "London", Category: "Portrait", IsActive: true, Approved: false}
	inactive := &Listing{ID: uuid.New(), BusinessName: "Calm", City: "Leeds", Category: "Wedding", IsActive: false, Approved: true, Featured: true}

	tests := []struct {
		name    string
		filter  ListingFilter
		listing *Listing
		want    bool
	}{
		{name: "public visible", filter: ListingFilter{}, listing: visible, want: true},
		{name: "public hides pending", filter: ListingFilter{}, listing: pending, want: false},
		{name: "public hides inactive", filter: ListingFilter{}, listing: inactive, want: false},
		{name: "admin all", filter: ListingFilter{Scope: ScopeAdminAll}, listing: inactive, want: true},
		{name: "status pending", filter: ListingFilter{Scope: ScopeAdminStatus, Status: StatusPendingApproval}, listing: pending, want: true},
		{name: "status inactive", filter: ListingFilter{Scope: ScopeAdminStatus, Status: StatusInactive}, listing: visible, want: false},
		{name: "status featured", filter: ListingFilter{Scope: ScopeAdminStatus, Status: StatusFeatured}, listing: inactive, want: true},
		{name: "city exact", filter: ListingFilter{City: "london"}, listing: visible, want: false},
		{name: "category", filter: ListingFilter{Category: "Wedding"}, listing: visible, want: true},
		{name: "search name", filter: ListingFilter{Search: "acme"}, listing: visible, want: true},
		{name: "search description", filter: ListingFilter{Search: "WEDD"}, listing: visible, want: true},
		{name: "search miss", filter: ListingFilter{Search: "zebra"}, listing: visible, want: false},
		{name: "excluded", filter: ListingFilter{ExcludeID: visible.ID}, listing: visible, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.listing))
		})
	}
}

func TestRanksBefore(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	featuredLow := &Listing{ID: uuid.New(), Featured: true, Priority: 0, CreatedAt: base}
	plainHigh := &Listing{ID: uuid.New(), Priority: 9, CreatedAt: base}
	plainNew := &Listing{ID: uuid.New(), Priority: 1, CreatedAt: base.Add(time.Hour)}
	plainOld := &Listing{ID: uuid.New(), Priority: 1, CreatedAt: base}

	listings := []*Listing{plainOld, plainNew, plainHigh, featuredLow}
	slices.SortFunc(listings, func(a, b *Listing) int {
		if RanksBefore(a, b) {
			return -1
		}
		if RanksBefore(b, a) {
			return 1
		}

		return 0
	})

	assert.Equal(t, []*Listing{featuredLow, plainHigh, plainNew, plainOld}, listings)
}

func TestAllowLists(t *testing.T) {
	settings := &DirectorySettings{
		Locations:  []string{" London ", "", "Bath", "London"},
		Categories: []string{"Wedding"},
	}

	lists := settings.AllowLists()

	assert.Equal(t, []string{"London", "Bath"}, lists.Cities)
	assert.Equal(t, []string{"Bath", "London"}, lists.SortedCities())
	assert.True(t, lists.HasCity("London"))
	assert.False(t, lists.HasCity("london"))
	assert.True(t, lists.HasCategory("Wedding"))
}

func TestListingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPendingApproval.IsValid())
	assert.False(t, ListingStatus("archived").IsValid())
}
