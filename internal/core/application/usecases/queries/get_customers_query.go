package queries

import (
	"errors"
	"strings"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery lists customers by name, one page at a time. A non-empty search keeps only
// customers whose name contains it, ignoring case.
type GetCustomersQuery struct {
	search string
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery validates the paging. page and limit default to 1 and DefaultPageLimit when zero.
func NewGetCustomersQuery(search string, page, limit int) (GetCustomersQuery, error) {
	q := GetCustomersQuery{
		search: strings.TrimSpace(search),
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}

	if q.page == 0 {
		q.page = 1
	}
	if q.limit == 0 {
		q.limit = DefaultPageLimit
	}

	if q.page < 1 {
		return GetCustomersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if q.limit < 1 || q.limit > MaxPageLimit {
		return GetCustomersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}

	return q, nil
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

func (q GetCustomersQuery) Search() string {
	return q.search
}

func (q GetCustomersQuery) Page() int {
	return q.page
}

func (q GetCustomersQuery) Limit() int {
	return q.limit
}

func (q GetCustomersQuery) offset() int {
	return (q.page - 1) * q.limit
}

// pattern is the ILIKE pattern for the search, with LIKE wildcards in the input taken literally.
func (q GetCustomersQuery) pattern() string {
	if q.search == "" {
		return "%"
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q.search)
	return "%" + escaped + "%"
}

type GetCustomersQueryResponse struct {
	Customers []CustomerView
	Total     int64
	Page      int
	Limit     int
}
