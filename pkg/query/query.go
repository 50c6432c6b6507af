// Package query normalizes loosely-typed list parameters into a bounded
// descriptor the dao layer can apply directly.
package query

import (
	"fmt"

	"convo-backend/pkg/apperrors"
)

const (
	DefaultLimit = 10
	DefaultPage  = 1

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Options carries the pagination and sort parameters of a list request,
// already type-coerced by the binding layer.
type Options struct {
	SortBy   string
	SortType string
	Limit    int
	Page     int
}

// Descriptor is the normalized query consumed by the dao layer: a filter
// restricted to permitted keys, a sort specification and a page window.
type Descriptor struct {
	Filter    map[string]any
	SortField string
	SortDir   string
	Offset    int
	Limit     int
}

// Build produces a Descriptor from validated inputs. sortable maps the
// caller-facing sort field names to database columns; a SortBy outside it
// is rejected rather than forwarded to the database.
//
// The page window is offset = page*limit with page defaulting to 1, which
// skips one page's worth of records relative to conventional 1-indexed
// paging. Existing clients depend on this skip; do not change it here
// without versioning the API.
func Build(filter map[string]any, opts Options, sortable map[string]string) (Descriptor, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := opts.Page
	if page <= 0 {
		page = DefaultPage
	}

	dir := opts.SortType
	switch dir {
	case "":
		dir = SortDesc
	case SortAsc, SortDesc:
	default:
		return Descriptor{}, apperrors.Validation(fmt.Sprintf("sortType must be %q or %q", SortAsc, SortDesc))
	}

	var sortField string
	if opts.SortBy != "" {
		col, ok := sortable[opts.SortBy]
		if !ok {
			return Descriptor{}, apperrors.Validation(fmt.Sprintf("cannot sort by %q", opts.SortBy))
		}
		sortField = col
	}

	if filter == nil {
		filter = map[string]any{}
	}

	return Descriptor{
		Filter:    filter,
		SortField: sortField,
		SortDir:   dir,
		Offset:    page * limit,
		Limit:     limit,
	}, nil
}

// OrderClause renders the sort specification for a SQL ORDER BY, or ""
// when no sort field was requested.
func (d Descriptor) OrderClause() string {
	if d.SortField == "" {
		return ""
	}
	return d.SortField + " " + d.SortDir
}
