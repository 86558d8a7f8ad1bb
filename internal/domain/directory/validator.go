package directory

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/go-playground/validator/v10"
)

var priceFormat = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// Validator checks listing input against the field rules, the live
// allow-lists and the image limit, collecting every problem found.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a listing validator.
func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// ValidateListing returns a *domainerrors.ValidationError listing every
// problem of the input, or nil.
func (v *Validator) ValidateListing(in ListingInput, lists entity.AllowLists, maxImages int) error {
	verr := domainerrors.NewValidationError()

	if err := v.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.Wrap(err, "failed to validate listing input")
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), fieldMessage(fe))
		}
	}

	if in.City != "" && !lists.HasCity(in.City) {
		verr.Add("city", "is not included in the list")
	}
	if in.Category != "" && !lists.HasCategory(in.Category) {
		verr.Add("category", "is not included in the list")
	}

	if len(in.Images) > maxImages {
		verr.Add("images", fmt.Sprintf("cannot exceed %d images", maxImages))
	}

	for i, pkg := range in.Packages {
		if pkg.Name == "" {
			verr.Add("packages", fmt.Sprintf("package %d must have a name", i+1))
		}
		if pkg.Price != "" && !priceFormat.MatchString(pkg.Price) {
			verr.Add("packages", fmt.Sprintf("package %d has an invalid price", i+1))
		}
	}

	return verr.ErrOrNil()
}

// ValidatePlacement checks the city and category of a stored listing against
// the current allow-lists.
func (v *Validator) ValidatePlacement(listing *entity.Listing, lists entity.AllowLists) error {
	verr := domainerrors.NewValidationError()
	if !lists.HasCity(listing.City) {
		verr.Add("city", "is not included in the list")
	}
	if !lists.HasCategory(listing.Category) {
		verr.Add("category", "is not included in the list")
	}

	return verr.ErrOrNil()
}

// Struct applies the validate tags of any request struct and reports the
// problems as a *domainerrors.ValidationError.
func (v *Validator) Struct(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fieldMessage(fe))
	}

	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		if fe.Kind() == reflect.Slice {
			return "can't be empty"
		}
		if fe.Tag() == "required" {
			return "can't be blank"
		}

		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
	case "oneof":
		return "is not included in the list"
	default:
		return "is invalid"
	}
}
