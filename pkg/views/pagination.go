package views

import (
	"net/url"
	"strconv"
)

// Pagination describes one page of an in-memory list for the "pagination" template.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
	Path     string
	Query    url.Values
}

// page clamps Page to the last page so offsets never exceed Total.
func (p Pagination) page() int {
	if p.Page <= 0 || p.PageSize <= 0 {
		return 0
	}
	last := 0
	if p.Total > 0 {
		last = (p.Total - 1) / p.PageSize
	}
	return min(p.Page, last)
}

func (p Pagination) From() int {
	if p.Total == 0 {
		return 0
	}
	return p.page()*p.PageSize + 1
}

func (p Pagination) To() int {
	if p.PageSize <= 0 {
		return p.Total
	}
	return min((p.page()+1)*p.PageSize, p.Total)
}

func (p Pagination) HasPrev() bool {
	return p.page() > 0
}

func (p Pagination) HasNext() bool {
	return p.PageSize > 0 && (p.page()+1)*p.PageSize < p.Total
}

func (p Pagination) PrevURL() string {
	return p.urlFor(p.page() - 1)
}

func (p Pagination) NextURL() string {
	return p.urlFor(p.page() + 1)
}

func (p Pagination) urlFor(page int) string {
	q := url.Values{}
	for k, v := range p.Query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(p.PageSize))
	return p.Path + "?" + q.Encode()
}
