package directory

import (
	"math"
	"strings"
	"testing"

	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLists = entity.AllowLists{
	Cities:     []string{"London", "New York", "Stoke-On-Trent"},
	Categories: []string{"Wedding", "Family Portrait"},
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     Pagination
	}{
		{name: "empty result has one page", page: 1, pageSize: 20, total: 0, want: Pagination{CurrentPage: 1, TotalPages: 1}},
		{name: "exact multiple", page: 1, pageSize: 20, total: 40, want: Pagination{CurrentPage: 1, TotalPages: 2, TotalCount: 40, HasMore: true}},
		{name: "partial last page", page: 3, pageSize: 20, total: 41, want: Pagination{CurrentPage: 3, TotalPages: 3, TotalCount: 41}},
		{name: "past the end", page: 9, pageSize: 20, total: 41, want: Pagination{CurrentPage: 9, TotalPages: 3, TotalCount: 41}},
		{name: "page clamped", page: -4, pageSize: 50, total: 51, want: Pagination{CurrentPage: 1, TotalPages: 2, TotalCount: 51, HasMore: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.pageSize, tt.total))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 20))
	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 40, Offset(3, 20))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/20+2, 20))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 50))
}

func TestPastEnd(t *testing.T) {
	assert.False(t, PastEnd(1, 20, 0))
	assert.False(t, PastEnd(2, 20, 21))
	assert.True(t, PastEnd(2, 20, 20))
	assert.True(t, PastEnd(math.MaxInt, 20, 1))
	assert.True(t, PastEnd(461168601842738792, 20, 1))
}

func TestNormalize(t *testing.T) {
	in := ListingInput{
		BusinessName: "  Acme Studio ",
		City:         "stoke-on-trent",
		Category:     "family   portrait",
		Website:      "acme.test",
		Instagram:    "http://instagram.com/acme",
		Facebook:     "HTTPS://facebook.com/acme",
		Images:       []string{" a.jpg ", "", "b.jpg"},
		Packages:     []entity.ServicePackage{{Name: " Basic ", Price: " 100 "}},
	}

	out := Normalize(in, testLists)

	assert.Equal(t, "Acme Studio", out.BusinessName)
	assert.Equal(t, "Stoke-On-Trent", out.City)
	assert.Equal(t, "Family Portrait", out.Category)
	assert.Equal(t, "https://acme.test", out.Website)
	assert.Equal(t, "http://instagram.com/acme", out.Instagram)
	assert.Equal(t, "HTTPS://facebook.com/acme", out.Facebook)
	assert.Empty(t, out.TikTok)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, out.Images)
	assert.Equal(t, []entity.ServicePackage{{Name: "Basic", Price: "100"}}, out.Packages)
}

func TestNormalize_AdoptsAllowListSpelling(t *testing.T) {
	lists := entity.AllowLists{Cities: []string{"London UK"}, Categories: []string{"Wedding"}}

	out := Normalize(ListingInput{City: "london uk", Category: "wedding"}, lists)

	assert.Equal(t, "London UK", out.City)
	assert.Equal(t, "Wedding", out.Category)
}

func validInput() ListingInput {
	return ListingInput{
		BusinessName: "Acme Studio",
		Description:  "Wedding photography",
		City:         "London",
		Category:     "Wedding",
		Website:      "https://acme.test",
		Email:        "hello@acme.test",
		Images:       []string{"https://cdn.test/1.jpg"},
		Packages:     []entity.ServicePackage{{Name: "Basic", Price: "99.50"}},
	}
}

func TestValidator_ValidateListing(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidateListing(validInput(), testLists, 3))
}

func TestValidator_CollectsEveryFieldError(t *testing.T) {
	v := NewValidator()
	in := validInput()
	in.BusinessName = ""
	in.Description = strings.Repeat("x", 501)
	in.City = "Atlantis"
	in.Category = "Underwater"
	in.Email = "not-an-email"
	in.Images = []string{"1", "2", "3", "4"}
	in.Packages = []entity.ServicePackage{{Name: "", Price: "12.5"}, {Name: "Full", Price: "abc"}}

	err := v.ValidateListing(in, testLists, 3)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))

	got := map[string][]string{}
	for _, field := range verr.Fields {
		got[field.Field] = append(got[field.Field], field.Message)
	}
	assert.Equal(t, []string{"can't be blank"}, got["business_name"])
	assert.Equal(t, []string{"is too long (maximum is 500 characters)"}, got["description"])
	assert.Equal(t, []string{"is not included in the list"}, got["city"])
	assert.Equal(t, []string{"is not included in the list"}, got["category"])
	assert.Equal(t, []string{"is invalid"}, got["email"])
	assert.Equal(t, []string{"cannot exceed 3 images"}, got["images"])
	assert.Equal(t, []string{
		"package 1 must have a name",
		"package 1 has an invalid price",
		"package 2 has an invalid price",
	}, got["packages"])
}

func TestValidator_ValidatePlacement(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.ValidatePlacement(&entity.Listing{City: "London", Category: "Wedding"}, testLists))

	err := v.ValidatePlacement(&entity.Listing{City: "Paris", Category: "Wedding"}, testLists)
	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []domainerrors.FieldError{{Field: "city", Message: "is not included in the list"}}, verr.Fields)

	err = v.ValidatePlacement(&entity.Listing{City: "london", Category: "Drone"}, testLists)
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestValidator_BusinessNameLengthCountsRunes(t *testing.T) {
	v := NewValidator()
	in := validInput()
	in.BusinessName = strings.Repeat("é", 100)

	assert.NoError(t, v.ValidateListing(in, testLists, 3))

	in.BusinessName = strings.Repeat("é", 101)
	assert.Error(t, v.ValidateListing(in, testLists, 3))
}

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "acme-studio", SlugCandidate("Acme Studio", 0))
	assert.Equal(t, "acme-studio-1", SlugCandidate("Acme Studio", 1))
	assert.Equal(t, "acme-studio-9", SlugCandidate("Acme Studio", 9))

	random := SlugCandidate("Acme Studio", 10)
	assert.Regexp(t, `^acme-studio-[0-9a-f]{4}$`, random)
}
