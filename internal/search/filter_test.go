package search

import (
	"math"
	"strconv"
	"testing"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		want        Pagination
	}{
		{"defaults", "", "", Pagination{Page: 1, Limit: 12, Skip: 0}},
		{"page zero", "0", "10", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"negative page", "-4", "10", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"garbage page", "abc", "10", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"third page", "3", "10", Pagination{Page: 3, Limit: 10, Skip: 20}},
		{"limit clamp high", "1", "200", Pagination{Page: 1, Limit: 100, Skip: 0}},
		{"limit zero", "1", "0", Pagination{Page: 1, Limit: 12, Skip: 0}},
		{"limit negative", "2", "-5", Pagination{Page: 2, Limit: 1, Skip: 1}},
		{"limit garbage", "2", "x", Pagination{Page: 2, Limit: 12, Skip: 12}},
		{"max page", strconv.Itoa(math.MaxInt), "12", Pagination{Page: math.MaxInt/12 + 1, Limit: 12, Skip: math.MaxInt / 12 * 12}},
		{"last page before overflow", strconv.Itoa(math.MaxInt/12 + 1), "12", Pagination{Page: math.MaxInt/12 + 1, Limit: 12, Skip: math.MaxInt / 12 * 12}},
		{"page just past overflow", strconv.Itoa(math.MaxInt/12 + 2), "12", Pagination{Page: math.MaxInt/12 + 1, Limit: 12, Skip: math.MaxInt / 12 * 12}},
	}

	for _, tc := range cases {
		got := Paginate(tc.page, tc.limit)
		if got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
		if got.Skip < 0 {
			t.Fatalf("%s: negative skip %d", tc.name, got.Skip)
		}
	}
}

func TestBuildJobQuery(t *testing.T) {
	q := BuildJobQuery(JobQueryParams{
		Q:               "  go   engineer ",
		Location:        " remote ",
		Type:            "full-time",
		ExperienceLevel: "senior",
	})

	if !q.Filter.ActiveOnly {
		t.Fatalf("public listing must be restricted to active jobs")
	}
	if q.Filter.Text != "go engineer" {
		t.Fatalf("unexpected text %q", q.Filter.Text)
	}
	if q.Filter.LocationContains != "remote" {
		t.Fatalf("unexpected location %q", q.Filter.LocationContains)
	}
	if q.Filter.Department != "" {
		t.Fatalf("absent department must stay empty")
	}
	if q.Page.Page != 1 || q.Page.Limit != 12 {
		t.Fatalf("unexpected page %+v", q.Page)
	}
}
