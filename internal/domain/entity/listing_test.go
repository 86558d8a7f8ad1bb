package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListing_Paths(t *testing.T) {
	listing := &Listing{City: "New York", Category: "Family Portrait", Slug: "acme"}

	assert.Equal(t, "new-york-family-portrait-photographers", listing.CityCategorySegment())
	assert.Equal(t, "/directory/new-york-family-portrait-photographers", listing.CityCategoryPath())
	assert.Equal(t, "/directory/new-york-family-portrait-photographers/acme", listing.ProfilePath())
}

func TestListing_SEO(t *testing.T) {
	listing := &Listing{
		BusinessName: "Acme Studio",
		City:         "London",
		Category:     "Wedding",
		Description:  strings.Repeat("a", 200),
	}

	assert.Equal(t, "Acme Studio - Wedding in London", listing.SEOTitle())
	assert.Len(t, listing.SEODescription(), 160)
	assert.True(t, strings.HasSuffix(listing.SEODescription(), "..."))
}

func TestListing_SocialLinksAndContactMethods(t *testing.T) {
	listing := &Listing{
		BusinessName: "Acme",
		Website:      "https://acme.test",
		TikTok:       "https://tiktok.com/@acme",
		Phone:        "0123",
	}

	links := listing.SocialLinks()
	if assert.Len(t, links, 2) {
		assert.Equal(t, "website", links[0].Kind)
		assert.Equal(t, "tiktok", links[1].Kind)
	}

	methods := listing.ContactMethods()
	if assert.Len(t, methods, 2) {
		assert.Equal(t, "Call Acme", methods[0].Label)
		assert.Equal(t, "tel:0123", methods[0].URL)
		assert.Equal(t, "Visit Website", methods[1].Label)
	}
}

func TestServicePackage_FormattedPrice(t *testing.T) {
	assert.Equal(t, "£150", ServicePackage{Price: "150"}.FormattedPrice())
	assert.Equal(t, "£99.50", ServicePackage{Price: "99.50"}.FormattedPrice())
	assert.Empty(t, ServicePackage{}.FormattedPrice())
}

func TestListing_PreviewImages(t *testing.T) {
	listing := &Listing{Images: []string{"a", "b", "c", "d"}}

	assert.Equal(t, []string{"a", "b", "c"}, listing.PreviewImages(3))
	assert.Equal(t, []string{"a"}, (&Listing{Images: []string{"a"}}).PreviewImages(3))
}

func TestActor_CanManage(t *testing.T) {
	owner := uuid.New()
	listing := &Listing{UserID: owner}

	assert.True(t, Actor{UserID: owner}.CanManage(listing))
	assert.False(t, Actor{UserID: uuid.New()}.CanManage(listing))
	assert.True(t, Actor{UserID: uuid.New(), Roles: Roles{RoleStaff}}.CanManage(listing))
}

func TestEntitlement_Qualifies(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		entitlement *Entitlement
		want        bool
	}{
		{name: "nil", entitlement: nil, want: false},
		{name: "active open ended", entitlement: &Entitlement{PlanID: "pro", Status: EntitlementActive}, want: true},
		{name: "trialing in period", entitlement: &Entitlement{PlanID: "pro", Status: EntitlementTrialing, CurrentPeriodEnd: &future}, want: true},
		{name: "period ended", entitlement: &Entitlement{PlanID: "pro", Status: EntitlementActive, CurrentPeriodEnd: &past}, want: false},
		{name: "other plan", entitlement: &Entitlement{PlanID: "basic", Status: EntitlementActive}, want: false},
		{name: "canceled", entitlement: &Entitlement{PlanID: "pro", Status: EntitlementCanceled}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entitlement.Qualifies("pro", now))
		})
	}
}
