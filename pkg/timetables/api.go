package timetables

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/rycus86/mbta-route-tables/pkg/client"
	"github.com/rycus86/mbta-route-tables/pkg/tables"
	"net/url"
	"strconv"
)

const DefaultScheduleLimit = 25

type Client struct {
	client client.Client
}

// StyledRoutes fetches every route with its official colors.
func (c *Client) StyledRoutes(ctx context.Context) ([]tables.Route, error) {
	return c.routes(ctx, "color,text_color,long_name")
}

// LinkedRoutes fetches every route with just its name.
func (c *Client) LinkedRoutes(ctx context.Context) ([]tables.Route, error) {
	return c.routes(ctx, "long_name")
}

func (c *Client) routes(ctx context.Context, fields string) ([]tables.Route, error) {
	query := url.Values{}
	query.Set("fields[route]", fields)

	resources, err := c.fetchList(ctx, "/routes", query)
	if err != nil {
		return nil, err
	}

	routes := make([]tables.Route, 0, len(resources))
	for _, res := range resources {
		var attrs routeAttributes
		if err := decodeAttributes(res, &attrs); err != nil {
			return nil, err
		}

		routes = append(routes, tables.Route{
			ID:        res.ID,
			LongName:  attrs.LongName,
			Color:     attrs.Color,
			TextColor: attrs.TextColor,
		})
	}

	return routes, nil
}

// Schedules fetches the first limit schedule entries of a route, in API order.
func (c *Client) Schedules(ctx context.Context, routeID string, limit int) ([]tables.ScheduleEntry, error) {
	if limit <= 0 {
		limit = DefaultScheduleLimit
	}

	query := url.Values{}
	query.Set("filter[route]", routeID)
	query.Set("page[limit]", strconv.Itoa(limit))

	resources, err := c.fetchList(ctx, "/schedules", query)
	if err != nil {
		return nil, err
	}

	entries := make([]tables.ScheduleEntry, 0, len(resources))
	for _, res := range resources {
		var attrs scheduleAttributes
		if err := decodeAttributes(res, &attrs); err != nil {
			return nil, err
		}

		entries = append(entries, tables.ScheduleEntry{
			StopID:        res.relatedID("stop"),
			ArrivalTime:   attrs.ArrivalTime,
			DepartureTime: attrs.DepartureTime,
		})
	}

	return entries, nil
}

func (c *Client) Stop(ctx context.Context, id string) (tables.Stop, error) {
	query := url.Values{}
	query.Set("fields[stop]", "name")

	body, err := c.client.FetchJSON(ctx, "/stops/"+url.PathEscape(id), query)
	if err != nil {
		return tables.Stop{}, err
	}

	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return tables.Stop{}, fmt.Errorf("failed to decode stop %s: %w", id, err)
	}

	var res resource
	if err := json.Unmarshal(doc.Data, &res); err != nil {
		return tables.Stop{}, fmt.Errorf("failed to decode stop %s: %w", id, err)
	}

	var attrs stopAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return tables.Stop{}, err
	}

	return tables.Stop{ID: res.ID, Name: attrs.Name}, nil
}

func (c *Client) fetchList(ctx context.Context, path string, query url.Values) ([]resource, error) {
	body, err := c.client.FetchJSON(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	var resources []resource
	if len(doc.Data) > 0 && string(doc.Data) != "null" {
		if err := json.Unmarshal(doc.Data, &resources); err != nil {
			return nil, fmt.Errorf("failed to decode %s data: %w", path, err)
		}
	}

	return resources, nil
}

func decodeAttributes(res resource, target interface{}) error {
	if len(res.Attributes) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Attributes, target); err != nil {
		return fmt.Errorf("failed to decode attributes of %s %s: %w", res.Type, res.ID, err)
	}
	return nil
}

func NewClient(client client.Client) *Client {
	return &Client{
		client: client,
	}
}
