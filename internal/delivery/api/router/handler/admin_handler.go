package handler

import (
	"log/slog"
	"net/http"
	"time"

	"directory/internal/delivery/api/response"
	"directory/internal/domain/directory"
	"directory/internal/domain/entity"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC    usecase.AdminUsecase
	SettingsUC usecase.SettingsUsecase
	Logger     *slog.Logger
}

// AdminHandler serves the staff moderation pages
type AdminHandler struct {
	adminUC    usecase.AdminUsecase
	settingsUC usecase.SettingsUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:    params.AdminUC,
		settingsUC: params.SettingsUC,
		logger:     params.Logger,
	}
}

// AdminUpdateRequest is a single-listing moderation request.
// An empty action_type updates the listing fields.
type AdminUpdateRequest struct {
	ActionType string                      `json:"action_type"`
	Priority   *int                        `json:"priority"`
	Listing    *usecase.AdminListingFields `json:"listing"`
}

// BulkActionRequest applies one action to the selected listings
type BulkActionRequest struct {
	Action     string      `json:"bulk_action"`
	ListingIDs []uuid.UUID `json:"listing_ids"`
}

// DashboardResponse is the admin overview
type DashboardResponse struct {
	Stats          *entity.ListingStats `json:"stats"`
	RecentListings []AdminListing       `json:"recent_listings"`
}

// AdminListingsResponse is a page of listings in any state
type AdminListingsResponse struct {
	Listings   []AdminListing       `json:"listings"`
	Pagination directory.Pagination `json:"pagination"`
	Cities     []string             `json:"cities"`
	Categories []string             `json:"categories"`
}

// AdminUpdateResponse reports a moderation outcome
type AdminUpdateResponse struct {
	Listing *AdminListing `json:"listing,omitempty"`
	Message string        `json:"message"`
}

// BulkActionResponse reports a bulk action outcome
type BulkActionResponse struct {
	Action   usecase.AdminAction `json:"action"`
	Affected int64               `json:"affected"`
	Skipped  int64               `json:"skipped"`
	Message  string              `json:"message"`
}

// AnalyticsResponse is the admin analytics report
type AnalyticsResponse struct {
	ByMonth    []usecase.MonthCount `json:"by_month"`
	ByCity     []entity.ValueCount  `json:"by_city"`
	ByCategory []entity.ValueCount  `json:"by_category"`
	MostViewed []AdminListing       `json:"most_viewed"`
}

// SettingsResponse is the stored directory settings
type SettingsResponse struct {
	Enabled                       bool      `json:"enabled"`
	AutoApprove                   bool      `json:"auto_approve"`
	MaxImages                     int       `json:"max_images"`
	ShowInSitemap                 bool      `json:"show_in_sitemap"`
	FeaturedLimit                 int       `json:"featured_limit"`
	Locations                     []string  `json:"locations"`
	Categories                    []string  `json:"categories"`
	SubscriptionPlanID            string    `json:"subscription_plan_id"`
	SendExpiryNotifications       bool      `json:"send_expiry_notifications"`
	SendReactivationNotifications bool      `json:"send_reactivation_notifications"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

// Dashboard handles GET /admin/plugins/company-directory
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.adminUC.GetDashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DashboardResponse{
		Stats:          dashboard.Stats,
		RecentListings: adminListingsOf(dashboard.RecentListings),
	})
}

// ListListings handles GET /admin/plugins/company-directory/listings
func (h *AdminHandler) ListListings(c echo.Context) error {
	page, err := h.adminUC.ListListings(c.Request().Context(), usecase.AdminListingQuery{
		Status:   c.QueryParam("status"),
		City:     c.QueryParam("city"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     pageParam(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AdminListingsResponse{
		Listings:   adminListingsOf(page.Listings),
		Pagination: page.Pagination,
		Cities:     nonNil(page.Cities),
		Categories: nonNil(page.Categories),
	})
}

// UpdateListing handles PUT /admin/plugins/company-directory/listings/:id
func (h *AdminHandler) UpdateListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	var req AdminUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing update")
	}

	result, err := h.adminUC.UpdateListing(c.Request().Context(), id, usecase.AdminListingUpdate{
		Action:   usecase.AdminAction(req.ActionType),
		Priority: req.Priority,
		Fields:   req.Listing,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := AdminUpdateResponse{Message: result.Message}
	if result.Listing != nil {
		listing := adminListingOf(result.Listing)
		resp.Listing = &listing
	}

	return response.Success(c, http.StatusOK, resp)
}

// DeleteListing handles DELETE /admin/plugins/company-directory/listings/:id
func (h *AdminHandler) DeleteListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	if err := h.adminUC.DeleteListing(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Listing deleted")
}

// BulkAction handles POST /admin/plugins/company-directory/listings/bulk
func (h *AdminHandler) BulkAction(c echo.Context) error {
	var req BulkActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk action")
	}

	result, err := h.adminUC.BulkAction(c.Request().Context(), usecase.AdminAction(req.Action), req.ListingIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BulkActionResponse{
		Action:   result.Action,
		Affected: result.Affected,
		Skipped:  result.Skipped,
		Message:  result.Message,
	})
}

// Analytics handles GET /admin/plugins/company-directory/analytics
func (h *AdminHandler) Analytics(c echo.Context) error {
	analytics, err := h.adminUC.GetAnalytics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AnalyticsResponse{
		ByMonth:    analytics.ByMonth,
		ByCity:     analytics.ByCity,
		ByCategory: analytics.ByCategory,
		MostViewed: adminListingsOf(analytics.MostViewed),
	})
}

// GetSettings handles GET /admin/plugins/company-directory/settings
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settingsOf(settings))
}

// UpdateSettings handles PUT /admin/plugins/company-directory/settings
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var req usecase.SettingsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings")
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settingsOf(settings))
}

// RemoveUserListings handles DELETE /admin/plugins/company-directory/users/:userId/listings
func (h *AdminHandler) RemoveUserListings(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.ErrNotFound
	}

	deleted, err := h.adminUC.RemoveUserListings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted})
}

func settingsOf(s *entity.DirectorySettings) SettingsResponse {
	return SettingsResponse{
		Enabled:                       s.Enabled,
		AutoApprove:                   s.AutoApprove,
		MaxImages:                     s.MaxImages,
		ShowInSitemap:                 s.ShowInSitemap,
		FeaturedLimit:                 s.FeaturedLimit,
		Locations:                     nonNil(s.Locations),
		Categories:                    nonNil(s.Categories),
		SubscriptionPlanID:            s.SubscriptionPlanID,
		SendExpiryNotifications:       s.SendExpiryNotifications,
		SendReactivationNotifications: s.SendReactivationNotifications,
		UpdatedAt:                     s.UpdatedAt,
	}
}
