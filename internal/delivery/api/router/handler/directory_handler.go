package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"directory/internal/delivery/api/response"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	SitemapUC   usecase.SitemapUsecase
	Logger      *slog.Logger
}

// DirectoryHandler serves the public directory pages
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	sitemapUC   usecase.SitemapUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		sitemapUC:   params.SitemapUC,
		logger:      params.Logger,
	}
}

// DirectoryIndexResponse is the directory landing page
type DirectoryIndexResponse struct {
	ListingPageResponse
	Cities     []string         `json:"cities"`
	Categories []string         `json:"categories"`
	SEO        usecase.SEOBlock `json:"seo"`
}

// CityCategoryResponse is a city/category page
type CityCategoryResponse struct {
	ListingPageResponse
	City     string           `json:"city"`
	Category string           `json:"category"`
	SEO      usecase.SEOBlock `json:"seo"`
}

// ListingProfileResponse is a listing profile page
type ListingProfileResponse struct {
	Listing ListingDetail    `json:"listing"`
	Related []ListingSummary `json:"related"`
	SEO     usecase.SEOBlock `json:"seo"`
}

// ListListings handles GET /directory
func (h *DirectoryHandler) ListListings(c echo.Context) error {
	index, err := h.directoryUC.ListListings(c.Request().Context(), usecase.ListingQuery{
		City:     c.QueryParam("city"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     pageParam(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DirectoryIndexResponse{
		ListingPageResponse: pageOf(index.ListingPage),
		Cities:              nonNil(index.Cities),
		Categories:          nonNil(index.Categories),
		SEO:                 index.SEO,
	})
}

// CityCategoryPage handles GET /directory/:cityCategory
func (h *DirectoryHandler) CityCategoryPage(c echo.Context) error {
	page, err := h.directoryUC.GetCityCategoryPage(c.Request().Context(), c.Param("cityCategory"), pageParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CityCategoryResponse{
		ListingPageResponse: pageOf(page.ListingPage),
		City:                page.City,
		Category:            page.Category,
		SEO:                 page.SEO,
	})
}

// ListingProfile handles GET /directory/:cityCategory/:slug and redirects
// permanently when the listing belongs to another city/category.
func (h *DirectoryHandler) ListingProfile(c echo.Context) error {
	profile, err := h.directoryUC.GetListingProfile(c.Request().Context(), c.Param("cityCategory"), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if profile.RedirectPath != "" {
		return c.Redirect(http.StatusMovedPermanently, profile.RedirectPath)
	}

	return response.Success(c, http.StatusOK, ListingProfileResponse{
		Listing: detailOf(profile.Listing),
		Related: summariesOf(profile.Related),
		SEO:     profile.SEO,
	})
}

// ListingQRCode handles GET /directory/:cityCategory/:slug/qr
func (h *DirectoryHandler) ListingQRCode(c echo.Context) error {
	png, err := h.directoryUC.GetListingQRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Sitemap handles GET /company-directory-sitemap
func (h *DirectoryHandler) Sitemap(c echo.Context) error {
	entries, err := h.sitemapUC.Entries(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// pageParam reads the page query parameter; anything unparsable means the first page.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}

	return page
}
