package paging

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// pageParams mirrors the construction arguments so the shared validator
// instance can check them as a struct.
type pageParams struct {
	PageNumber int `validate:"gte=1"`
	PageSize   int `validate:"gte=1"`
}

// validate is shared across constructions; validator instances cache
// struct metadata and are safe for concurrent use.
var validate = validator.New()

// validatePageParams rejects non-positive page parameters before any
// enumeration of the source happens.
func validatePageParams(pageNumber, pageSize int) error {
	err := validate.Struct(pageParams{PageNumber: pageNumber, PageSize: pageSize})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError can only come from a broken pageParams
		// definition, so surfacing it loudly is the right move.
		return err
	}
	var ferrs []FieldError
	for _, fe := range verrs {
		switch fe.StructField() {
		case "PageNumber":
			ferrs = append(ferrs, FieldError{Field: "page_number", Message: "must be >= 1"})
		case "PageSize":
			ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be >= 1"})
		}
	}
	return newOutOfRange(ferrs)
}
