package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/api/middleware"
	"directory/internal/delivery/api/response"
	"directory/internal/domain/directory"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MyBusinessHandlerParams holds dependencies for MyBusinessHandler, injected by Fx.
type MyBusinessHandlerParams struct {
	fx.In

	MyBusinessUC usecase.MyBusinessUsecase
	Logger       *slog.Logger
}

// MyBusinessHandler serves the owner's listing management
type MyBusinessHandler struct {
	myBusinessUC usecase.MyBusinessUsecase
	logger       *slog.Logger
}

// NewMyBusinessHandler is the constructor for MyBusinessHandler
func NewMyBusinessHandler(params MyBusinessHandlerParams) *MyBusinessHandler {
	return &MyBusinessHandler{
		myBusinessUC: params.MyBusinessUC,
		logger:       params.Logger,
	}
}

// MyBusinessResponse is the owner's listing page
type MyBusinessResponse struct {
	Listing   *ListingDetail     `json:"listing"`
	CanCreate bool               `json:"can_create"`
	Config    usecase.FormConfig `json:"config"`
}

// ListingMutationResponse reports a created or updated listing
type ListingMutationResponse struct {
	Listing ListingDetail `json:"listing"`
	Message string        `json:"message"`
}

// GetMyBusiness handles GET /my-business
func (h *MyBusinessHandler) GetMyBusiness(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	mine, err := h.myBusinessUC.GetMyBusiness(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := MyBusinessResponse{
		CanCreate: mine.CanCreate,
		Config:    mine.Config,
	}
	if mine.Listing != nil {
		detail := detailOf(mine.Listing)
		resp.Listing = &detail
	}

	return response.Success(c, http.StatusOK, resp)
}

// CreateListing handles POST /my-business
func (h *MyBusinessHandler) CreateListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req directory.ListingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.myBusinessUC.CreateListing(c.Request().Context(), actor, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ListingMutationResponse{
		Listing: detailOf(listing),
		Message: "Business listing created successfully",
	})
}

// UpdateListing handles PUT /my-business/:id
func (h *MyBusinessHandler) UpdateListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	var req directory.ListingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.myBusinessUC.UpdateListing(c.Request().Context(), actor, id, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListingMutationResponse{
		Listing: detailOf(listing),
		Message: "Business listing updated successfully",
	})
}

// DeleteListing handles DELETE /my-business/:id
func (h *MyBusinessHandler) DeleteListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	if err := h.myBusinessUC.DeleteListing(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Business listing deleted successfully")
}
