package pagination

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int32
		wantLimit int32
	}{
		{
			name:      "defaults",
			url:       "/api/recipes",
			wantPage:  1,
			wantLimit: DefaultPageSize,
		},
		{
			name:      "explicit page and limit",
			url:       "/api/recipes?page=3&limit=10",
			wantPage:  3,
			wantLimit: 10,
		},
		{
			name:      "limit clamped to maximum",
			url:       "/api/recipes?limit=100000",
			wantPage:  1,
			wantLimit: MaxPageSize,
		},
		{
			name:      "malformed values fall back to defaults",
			url:       "/api/recipes?page=abc&limit=-2",
			wantPage:  1,
			wantLimit: DefaultPageSize,
		},
		{
			name:      "zero page falls back to first",
			url:       "/api/recipes?page=0",
			wantPage:  1,
			wantLimit: DefaultPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := FromRequest(r)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", p.Limit, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 5}
	if got := p.Offset(); got != 10 {
		t.Errorf("Offset() = %d, want 10", got)
	}
}

func TestNewPageMiddle(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/api/recipes?page=2&limit=5", nil)
	results := []int{6, 7, 8, 9, 10}

	page := NewPage(r, Params{Page: 2, Limit: 5}, 12, results)

	if page.Count != 12 {
		t.Errorf("Count = %d, want 12", page.Count)
	}
	if len(page.Results) != 5 {
		t.Errorf("len(Results) = %d, want 5", len(page.Results))
	}
	if page.Next == nil {
		t.Fatal("Next is nil, want a link")
	}
	if !strings.Contains(*page.Next, "page=3") {
		t.Errorf("Next = %q, want page=3", *page.Next)
	}
	if page.Previous == nil {
		t.Fatal("Previous is nil, want a link")
	}
	if !strings.Contains(*page.Previous, "page=1") {
		t.Errorf("Previous = %q, want page=1", *page.Previous)
	}
}

func TestNewPageLast(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/api/recipes?page=3&limit=5", nil)

	page := NewPage(r, Params{Page: 3, Limit: 5}, 12, []int{11, 12})

	if page.Next != nil {
		t.Errorf("Next = %q, want nil", *page.Next)
	}
	if page.Previous == nil {
		t.Error("Previous is nil, want a link")
	}
}

func TestNewPageEmptyResults(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/api/recipes", nil)

	page := NewPage[int](r, Params{Page: 1, Limit: 5}, 0, nil)

	if page.Results == nil {
		t.Error("Results is nil, want empty slice")
	}
	if page.Next != nil || page.Previous != nil {
		t.Error("expected no links on an empty page")
	}
}

func TestNewPageAbsoluteLinks(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users?page=2", nil)
	r.Host = "foodgram.example"

	page := NewPage(r, Params{Page: 2, Limit: 5}, 20, []int{1, 2, 3, 4, 5})

	if page.Next == nil || !strings.HasPrefix(*page.Next, "http://foodgram.example/") {
		t.Errorf("Next = %v, want absolute URL on foodgram.example", page.Next)
	}
}
