package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikescor/local-library/internal/domain/catalog"
)

// Pagination carries the page links rendered under list views.
type Pagination struct {
	Page       int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// Prev returns the previous page number.
func (p Pagination) Prev() int { return p.Page - 1 }

// Next returns the next page number.
func (p Pagination) Next() int { return p.Page + 1 }

func newPagination(query *catalog.PageQuery, total int64) Pagination {
	totalPages := int((total + int64(query.PageSize) - 1) / int64(query.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		Page:       query.Page,
		TotalPages: totalPages,
	}
}

// pageQueryFrom reads the ?page query parameter, defaulting to 1.
func pageQueryFrom(ctx *gin.Context) *catalog.PageQuery {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	return catalog.NewPageQuery(page)
}
