package pagination

// QueryParams carries the 1-based page selection shared by every listing
// endpoint.
type QueryParams struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps the params to sane values. Page and PageSize below 1
// fall back to the defaults; PageSize is capped so a client cannot ask
// for the whole table in one request.
func (q QueryParams) Normalize() QueryParams {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset returns the row offset for the current page.
func (q QueryParams) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PagedResult is a single page of a larger result set. Items is empty,
// never nil, for out-of-range pages; TotalCount and TotalPages always
// describe the full set.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResult builds a page, deriving TotalPages = ceil(total/pageSize).
func NewPagedResult[T any](items []T, totalCount int64, params QueryParams) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages(totalCount, params.PageSize),
	}
}

func totalPages(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}
