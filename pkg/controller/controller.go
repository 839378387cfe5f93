package controller

import (
	"context"
	"errors"
	"github.com/golang/glog"
	"github.com/rycus86/mbta-route-tables/pkg/tables"
	"strings"
)

// API is the part of the transit API client the tables are built from.
type API interface {
	StyledRoutes(ctx context.Context) ([]tables.Route, error)
	LinkedRoutes(ctx context.Context) ([]tables.Route, error)
	Schedules(ctx context.Context, routeID string, limit int) ([]tables.ScheduleEntry, error)
}

type Options struct {
	Routes        tables.RouteTableOptions
	ScheduleLimit int
}

// Controller serves the route and schedule tables. Every outcome, including
// API failures, is returned as a tables.Result.
type Controller struct {
	api     API
	stops   tables.StopNameResolver
	options Options
}

func (c *Controller) StyledRoutes(ctx context.Context) tables.Result {
	routes, err := c.api.StyledRoutes(ctx)
	if err != nil {
		return failed(&tables.NetworkError{Op: "fetch routes", Err: err})
	}

	table, err := tables.StyledRouteTable(routes, c.options.Routes)
	if err != nil {
		return failed(err)
	}

	return tables.Ok(table)
}

func (c *Controller) LinkedRoutes(ctx context.Context) tables.Result {
	routes, err := c.api.LinkedRoutes(ctx)
	if err != nil {
		return failed(&tables.NetworkError{Op: "fetch routes", Err: err})
	}

	table, err := tables.LinkedRouteTable(routes, c.options.Routes)
	if err != nil {
		return failed(err)
	}

	return tables.Ok(table)
}

func (c *Controller) ScheduleTable(ctx context.Context, routeID string) tables.Result {
	routeID = strings.TrimSpace(routeID)
	if routeID == "" {
		return failed(&tables.InvalidRequestError{Reason: "missing route id"})
	}

	entries, err := c.api.Schedules(ctx, routeID, c.options.ScheduleLimit)
	if err != nil {
		return failed(&tables.NetworkError{Op: "fetch schedules of " + routeID, Err: err})
	}

	rows, err := tables.BuildScheduleRows(ctx, entries, c.stops)
	if err != nil {
		return failed(&tables.NetworkError{Op: "resolve stops of " + routeID, Err: err})
	}

	if errs := tables.RowErrors(rows); len(errs) > 0 {
		glog.Warningf("Schedule of route %s has %d unreadable rows: %v", routeID, len(errs), errors.Join(errs...))
	}

	return tables.Ok(tables.ScheduleTable(rows))
}

func failed(err error) tables.Result {
	result := tables.Fail(err)
	glog.Errorf("Failed to build table (%s): %v", result.Kind, err)
	return result
}

func New(api API, stops tables.StopNameResolver, options Options) *Controller {
	return &Controller{
		api:     api,
		stops:   stops,
		options: options,
	}
}
