package tole

import (
	"slices"
	"strings"
	"time"
)

// StatusFilter narrows the list by app access or expiry.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"
	FilterInactive StatusFilter = "inactive"
	FilterExpired  StatusFilter = "expired"
)

func ParseStatusFilter(v string) StatusFilter {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(v))) {
	case FilterActive:
		return FilterActive
	case FilterInactive:
		return FilterInactive
	case FilterExpired:
		return FilterExpired
	default:
		return FilterAll
	}
}

var PageSizes = []int{5, 10, 25, 50}

// MaxPageSize caps sizes requested through the query string.
var MaxPageSize = slices.Max(PageSizes)

// ListFilter is the operator's view over the full tole collection.
type ListFilter struct {
	Search   string
	Status   StatusFilter
	Page     int
	PageSize int
}

// Normalize clamps page and size. A size change relative to prevSize resets the page.
func (f ListFilter) Normalize(defaultSize, prevSize int) ListFilter {
	f.Search = strings.TrimSpace(f.Search)
	if f.Status == "" {
		f.Status = FilterAll
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if f.Page < 0 {
		f.Page = 0
	}
	if prevSize > 0 && prevSize != f.PageSize {
		f.Page = 0
	}
	return f
}

func matchesSearch(t Tole, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.ID), q) ||
		strings.Contains(strings.ToLower(t.Contact), q)
}

func matchesStatus(t Tole, status StatusFilter, now time.Time) bool {
	switch status {
	case FilterActive:
		return t.AllowApp == AllowAppYes
	case FilterInactive:
		return t.AllowApp == AllowAppNo
	case FilterExpired:
		return IsExpired(t, now)
	default:
		return true
	}
}

// Apply returns the toles matching search and status, in their original order.
func (f ListFilter) Apply(toles []Tole, now time.Time) []Tole {
	out := make([]Tole, 0, len(toles))
	for _, t := range toles {
		if matchesSearch(t, f.Search) && matchesStatus(t, f.Status, now) {
			out = append(out, t)
		}
	}
	return out
}

// Paginate slices the current page out of filtered. A page past the end
// falls back to the last page.
func (f ListFilter) Paginate(filtered []Tole) ([]Tole, int) {
	size := f.PageSize
	if size <= 0 {
		return filtered, 0
	}
	page := f.Page
	if page < 0 {
		page = 0
	}
	lastPage := 0
	if len(filtered) > 0 {
		lastPage = (len(filtered) - 1) / size
	}
	if page > lastPage {
		page = lastPage
	}
	start := page * size
	end := min(start+size, len(filtered))
	return filtered[start:end], page
}

// Stats are the counters shown above the list.
type Stats struct {
	Total    int
	Active   int
	Expired  int
	Disabled int
}

func ComputeStats(toles []Tole, now time.Time) Stats {
	s := Stats{Total: len(toles)}
	for _, t := range toles {
		switch StatusAt(t, now) {
		case StatusActive:
			s.Active++
		case StatusExpired:
			s.Expired++
		case StatusDisabled:
			s.Disabled++
		}
	}
	return s
}
