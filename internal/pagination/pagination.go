// Package pagination implements page-number pagination with a
// limit query parameter and the enveloped list response.
package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100

	pageParam  = "page"
	limitParam = "limit"
)

// Params is a parsed page request.
type Params struct {
	Page  int32
	Limit int32
}

func (p Params) Offset() int32 {
	return (p.Page - 1) * p.Limit
}

// FromRequest reads page/limit from the query string, clamping to sane
// bounds. Malformed values fall back to the defaults rather than erroring,
// matching the original API behavior.
func FromRequest(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultPageSize}

	if raw := r.URL.Query().Get(pageParam); raw != "" {
		if page, err := strconv.ParseInt(raw, 10, 32); err == nil && page >= 1 {
			p.Page = int32(page)
		}
	}
	if raw := r.URL.Query().Get(limitParam); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 32); err == nil && limit >= 1 {
			p.Limit = int32(min(limit, MaxPageSize))
		}
	}

	return p
}

// Page is the enveloped list response.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage wraps results with count and absolute next/previous links built
// from the request URL.
func NewPage[T any](r *http.Request, p Params, count int64, results []T) Page[T] {
	page := Page[T]{
		Count:   count,
		Results: results,
	}
	if results == nil {
		page.Results = []T{}
	}

	if int64(p.Offset())+int64(len(results)) < count {
		next := pageURL(r, p.Page+1, p.Limit)
		page.Next = &next
	}
	if p.Page > 1 {
		prev := pageURL(r, p.Page-1, p.Limit)
		page.Previous = &prev
	}

	return page
}

func pageURL(r *http.Request, page, limit int32) string {
	u := *r.URL
	q := u.Query()
	q.Set(pageParam, strconv.FormatInt(int64(page), 10))
	q.Set(limitParam, strconv.FormatInt(int64(limit), 10))
	u.RawQuery = q.Encode()

	if u.Host == "" && r.Host != "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s%s", scheme, r.Host, u.String())
	}
	return u.String()
}
