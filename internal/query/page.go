package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Page size bounds used when no configuration overrides them.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Request parameter names consumed by pagination.
const (
	KeySkip   = "skip"
	KeyLimit  = "limit"
	KeySortBy = "sortBy"
	KeySort   = "sort"
)

// PageParams are the raw pagination/sort request values.
type PageParams struct {
	Skip   string
	Limit  string
	SortBy string
	Sort   string
}

// SplitPage removes the pagination keys from c and returns them.
func SplitPage(c Conditions) (Conditions, PageParams, error) {
	rest := make(Conditions, len(c))
	var p PageParams
	for key, raw := range c {
		var dst *string
		switch key {
		case KeySkip:
			dst = &p.Skip
		case KeyLimit:
			dst = &p.Limit
		case KeySortBy:
			dst = &p.SortBy
		case KeySort:
			dst = &p.Sort
		default:
			rest[key] = raw
			continue
		}
		s, err := pageString(key, raw)
		if err != nil {
			return nil, PageParams{}, err
		}
		*dst = s
	}
	return rest, p, nil
}

func pageString(key string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return single(key, raw)
	}
}

// SortKey is one ORDER BY term.
type SortKey struct {
	Field string
	Desc  bool
}

// Page is a resolved pagination window and ordering.
type Page struct {
	Skip  int
	Limit int
	Sort  []SortKey
}

// OrderBy renders the ORDER BY clause.
func (p Page) OrderBy() string {
	if len(p.Sort) == 0 {
		return ""
	}
	terms := make([]string, 0, len(p.Sort))
	for _, k := range p.Sort {
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		terms = append(terms, k.Field+" "+dir)
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}

// Resolver validates pagination and sort input against a schema.
type Resolver struct {
	DefaultLimit int
	MaxLimit     int
	// StrictSort rejects sortBy values outside the schema allow-list
	// instead of ignoring them.
	StrictSort bool
}

// NewResolver returns a resolver, substituting package defaults for
// non-positive limits.
func NewResolver(defaultLimit, maxLimit int, strictSort bool) Resolver {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = min(DefaultLimit, maxLimit)
	}
	return Resolver{DefaultLimit: defaultLimit, MaxLimit: maxLimit, StrictSort: strictSort}
}

// Resolve parses p for schema s. The record id is always the last sort key
// so that skip/limit windows are stable.
func (r Resolver) Resolve(s Schema, p PageParams) (Page, error) {
	if r.MaxLimit <= 0 {
		r = NewResolver(r.DefaultLimit, r.MaxLimit, r.StrictSort)
	}

	skip, err := parseCount(KeySkip, p.Skip, 0)
	if err != nil {
		return Page{}, err
	}

	limit, err := parseCount(KeyLimit, p.Limit, r.DefaultLimit)
	if err != nil {
		return Page{}, err
	}
	if limit == 0 {
		limit = r.DefaultLimit
	}
	if limit > r.MaxLimit {
		limit = r.MaxLimit
	}

	var keys []SortKey
	if sortBy := strings.TrimSpace(p.SortBy); sortBy != "" && sortBy != "id" {
		if s.CanSort(sortBy) {
			keys = append(keys, SortKey{Field: sortBy, Desc: descending(p.Sort)})
		} else if r.StrictSort {
			return Page{}, fmt.Errorf("%w: cannot sort %s by %q", ErrInvalidArgument, s.Kind, sortBy)
		}
	}
	tiebreak := SortKey{Field: "id"}
	if strings.TrimSpace(p.SortBy) == "id" {
		tiebreak.Desc = descending(p.Sort)
	}
	keys = append(keys, tiebreak)

	return Page{Skip: skip, Limit: limit, Sort: keys}, nil
}

func parseCount(key, raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidArgument, key, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidArgument, key)
	}
	return n, nil
}

// descending interprets the sort direction: only a negative number sorts
// descending. Zero, positive and non-numeric values sort ascending.
func descending(raw string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return err == nil && n < 0
}
