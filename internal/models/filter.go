package models

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter is the list-query state of a resource screen: a substring search
// plus 1-based pagination.
type Filter struct {
	Search string `json:"search" form:"search"`
	Page   int    `json:"page" form:"page"`
	Limit  int    `json:"limit" form:"limit"`
}

// Normalized returns a copy with pagination forced into the recognized
// range: page >= 1 (default 1), limit in [1,100] (default 10).
func (f Filter) Normalized() Filter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Offset is the row offset corresponding to the (1-based) page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Page holds one slice of a paginated list query together with the
// pagination metadata the dashboard tables render.
type Page[T any] struct {
	Items   []T   `json:"data"`
	Total   int64 `json:"total"`
	Page    int   `json:"currentPage"`
	PerPage int   `json:"perPage"`
}

// HasMore reports whether pages beyond this one exist.
func (p Page[T]) HasMore() bool {
	return int64(p.Page*p.PerPage) < p.Total
}

// StatusCount is one bucket of the dashboard's complaints-by-status chart.
type StatusCount struct {
	Status ComplaintStatus `json:"status"`
	Count  int64           `json:"count"`
}

// PriorityCount is one bucket of the complaints-by-priority chart.
type PriorityCount struct {
	Priority ComplaintPriority `json:"priority"`
	Count    int64             `json:"count"`
}

// CategoryCount is one bucket of the complaints-by-category chart.
type CategoryCount struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

// DashboardStats is the payload behind the dashboard chart widgets.
type DashboardStats struct {
	TotalComplaints int64           `json:"total_complaints"`
	TotalUsers      int64           `json:"total_users"`
	TotalCategories int64           `json:"total_categories"`
	ByStatus        []StatusCount   `json:"by_status"`
	ByPriority      []PriorityCount `json:"by_priority"`
	ByCategory      []CategoryCount `json:"by_category"`
}
