package search

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// JobQueryParams are the raw listing query parameters, unparsed.
type JobQueryParams struct {
	Q               string
	Type            string
	Location        string
	Department      string
	ExperienceLevel string
	Page            string
	Limit           string
}

// JobFilter is a store-agnostic description of which jobs match. Empty
// strings mean "no constraint".
type JobFilter struct {
	ActiveOnly bool

	// Text is matched with full-text search over title and description.
	Text string
	// LocationContains is a case-insensitive substring match.
	LocationContains string

	Type            string
	Department      string
	ExperienceLevel string
}

type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

type JobQuery struct {
	Filter JobFilter
	Page   Pagination
}

// BuildJobQuery turns listing parameters into a filter restricted to active
// jobs plus page bounds. It never fails: bad numbers fall back to defaults.
func BuildJobQuery(p JobQueryParams) JobQuery {
	f := JobFilter{
		ActiveOnly:       true,
		Text:             collapseSpaces(p.Q),
		LocationContains: strings.TrimSpace(p.Location),
		Type:             strings.TrimSpace(p.Type),
		Department:       strings.TrimSpace(p.Department),
		ExperienceLevel:  strings.TrimSpace(p.ExperienceLevel),
	}
	return JobQuery{Filter: f, Page: Paginate(p.Page, p.Limit)}
}

// Paginate resolves page and limit. A page that is missing, unparseable or
// below 1 becomes 1. A limit that is missing, unparseable or zero becomes
// DefaultLimit; anything else is clamped to [1, MaxLimit].
func Paginate(rawPage, rawLimit string) Pagination {
	page := parseIntOr(rawPage, DefaultPage)
	if page < 1 {
		page = 1
	}

	limit := parseIntOr(rawLimit, DefaultLimit)
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	// Past this page the offset would overflow int.
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}

	return Pagination{Page: page, Limit: limit, Skip: (page - 1) * limit}
}

func parseIntOr(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
