package usecase

import (
	"context"

	"directory/internal/domain/directory"
	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// FormConfig carries the choices offered by the listing form
type FormConfig struct {
	Cities     []string `json:"cities"`
	Categories []string `json:"categories"`
	MaxImages  int      `json:"max_images"`
}

// MyBusiness is the owner's view of their listing
type MyBusiness struct {
	Listing   *entity.Listing
	CanCreate bool
	Config    FormConfig
}

// MyBusinessUsecase defines the interface for owner listing management
type MyBusinessUsecase interface {
	// GetMyBusiness returns the caller's active listing, whether they may create one, and the form choices
	GetMyBusiness(ctx context.Context, actor entity.Actor) (*MyBusiness, error)

	// CreateListing publishes a new listing for the caller
	CreateListing(ctx context.Context, actor entity.Actor, input directory.ListingInput) (*entity.Listing, error)

	// UpdateListing edits a listing owned by the caller, or any listing for staff
	UpdateListing(ctx context.Context, actor entity.Actor, id uuid.UUID, input directory.ListingInput) (*entity.Listing, error)

	// DeleteListing removes a listing owned by the caller, or any listing for staff
	DeleteListing(ctx context.Context, actor entity.Actor, id uuid.UUID) error
}
