package queries

import (
	"errors"
	"strings"

	"fleet/internal/core/domain/model/order"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders newest first, one page at a time, optionally narrowed to one status.
//
// Example:
//
//	query, err := NewGetOrdersQuery("prepared", 1, 50)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d prepared orders\n", len(page.Orders), page.Total)
type GetOrdersQuery struct {
	status order.Status
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery validates the filter. An empty status lists every order; page and limit
// default to 1 and DefaultPageLimit when zero.
func NewGetOrdersQuery(status string, page, limit int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if status = strings.TrimSpace(status); status != "" {
		s, err := order.StatusFromString(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = s
	}

	if q.page == 0 {
		q.page = 1
	}
	if q.limit == 0 {
		q.limit = DefaultPageLimit
	}

	if q.page < 1 {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if q.limit < 1 || q.limit > MaxPageLimit {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}

	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status is order.Unknown when no status filter was given.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

func (q GetOrdersQuery) Page() int {
	return q.page
}

func (q GetOrdersQuery) Limit() int {
	return q.limit
}

func (q GetOrdersQuery) offset() int {
	return (q.page - 1) * q.limit
}

type GetOrdersQueryResponse struct {
	Orders []OrderView
	Total  int64
	Page   int
	Limit  int
}
