package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PageQuery selects one page of a list view.
type PageQuery struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=100"`
}

// NewPageQuery creates a PageQuery for the given 1-based page number
// with the default page size. Page numbers below 1 clamp to 1.
func NewPageQuery(page int) *PageQuery {
	if page < 1 {
		page = 1
	}
	return &PageQuery{
		Page:     page,
		PageSize: DefaultPageSize,
	}
}

// Validate checks that the query fields are within bounds.
func (q *PageQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for PageQuery: %w", err)
	}
	return nil
}

// Offset returns the record offset of the first row on the page.
func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
