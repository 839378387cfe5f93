package tables

import (
	"fmt"
	"sort"
	"strings"
)

const RouteColorsStylesheet = "route-colors"

type SortOrder string

const (
	SortNone     SortOrder = "none"
	SortNameAsc  SortOrder = "name-asc"
	SortNameDesc SortOrder = "name-desc"
)

func ParseSortOrder(value string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(value))); order {
	case "", SortNone:
		return SortNone, nil
	case SortNameAsc, SortNameDesc:
		return order, nil
	default:
		return "", fmt.Errorf("unknown sort order: %s", value)
	}
}

type RouteTableOptions struct {
	SortBy SortOrder

	// RequireRoutes turns an empty route list into an EmptyDatasetError.
	RequireRoutes bool
}

// StyledRouteTable renders one row per route, tagged with the route's color classes.
func StyledRouteTable(routes []Route, opts RouteTableOptions) (Table, error) {
	ordered, err := prepareRoutes(routes, opts)
	if err != nil {
		return Table{}, err
	}

	table := Table{
		Rows:       make([]Row, 0, len(ordered)),
		Stylesheet: RouteColorsStylesheet,
	}

	for _, route := range ordered {
		table.Rows = append(table.Rows, Row{
			Classes: []string{"color-" + route.Color, "text-color-" + route.TextColor},
			Cells:   []Cell{TextCell(route.LongName)},
		})
	}

	return table, nil
}

// LinkedRouteTable renders one row per route linking to its schedule.
func LinkedRouteTable(routes []Route, opts RouteTableOptions) (Table, error) {
	ordered, err := prepareRoutes(routes, opts)
	if err != nil {
		return Table{}, err
	}

	table := Table{
		Header: []string{"Select a route"},
		Rows:   make([]Row, 0, len(ordered)),
	}

	for _, route := range ordered {
		table.Rows = append(table.Rows, Row{
			Cells: []Cell{LinkCell(route.LongName, route.ID)},
		})
	}

	return table, nil
}

func prepareRoutes(routes []Route, opts RouteTableOptions) ([]Route, error) {
	if len(routes) == 0 && opts.RequireRoutes {
		return nil, &EmptyDatasetError{Dataset: "routes"}
	}

	switch opts.SortBy {
	case "", SortNone:
		return routes, nil
	case SortNameAsc, SortNameDesc:
	default:
		return nil, fmt.Errorf("unknown sort order: %s", opts.SortBy)
	}

	sorted := make([]Route, len(routes))
	copy(sorted, routes)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(sorted[i].LongName), strings.ToLower(sorted[j].LongName)
		if opts.SortBy == SortNameDesc {
			return a > b
		}
		return a < b
	})

	return sorted, nil
}
