package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/rycus86/mbta-route-tables/pkg/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	routes    []tables.Route
	schedules []tables.ScheduleEntry
	err       error

	scheduleRoute string
	scheduleLimit int
}

func (f *fakeAPI) StyledRoutes(ctx context.Context) ([]tables.Route, error) {
	return f.routes, f.err
}

func (f *fakeAPI) LinkedRoutes(ctx context.Context) ([]tables.Route, error) {
	return f.routes, f.err
}

func (f *fakeAPI) Schedules(ctx context.Context, routeID string, limit int) ([]tables.ScheduleEntry, error) {
	f.scheduleRoute, f.scheduleLimit = routeID, limit
	return f.schedules, f.err
}

func stopNames(names map[string]string, err error) tables.StopNameResolver {
	return tables.ResolverFunc(func(ctx context.Context, id string) (string, error) {
		return names[id], err
	})
}

func ptr(s string) *string { return &s }

func TestController_StyledRoutes(t *testing.T) {
	api := &fakeAPI{routes: []tables.Route{
		{ID: "Red", LongName: "Red Line", Color: "DA291C", TextColor: "FFFFFF"},
		{ID: "Blue", LongName: "Blue Line", Color: "003DA5", TextColor: "FFFFFF"},
	}}
	ctl := New(api, stopNames(nil, nil), Options{Routes: tables.RouteTableOptions{SortBy: tables.SortNameAsc}})

	result := ctl.StyledRoutes(context.Background())
	require.True(t, result.OK())
	require.Len(t, result.Table.Rows, 2)
	assert.Equal(t, "Blue Line", result.Table.Rows[0].Cells[0].Text)
	assert.Equal(t, []string{"color-003DA5", "text-color-FFFFFF"}, result.Table.Rows[0].Classes)
}

func TestController_LinkedRoutes(t *testing.T) {
	api := &fakeAPI{routes: []tables.Route{{ID: "Red", LongName: "Red Line"}}}
	ctl := New(api, stopNames(nil, nil), Options{})

	result := ctl.LinkedRoutes(context.Background())
	require.True(t, result.OK())
	assert.Equal(t, &tables.Link{Label: "Red Line", Target: "Red"}, result.Table.Rows[0].Cells[0].Link)
}

func TestController_NetworkFailure(t *testing.T) {
	api := &fakeAPI{err: errors.New("dial tcp: connection refused")}
	ctl := New(api, stopNames(nil, nil), Options{})

	for _, result := range []tables.Result{
		ctl.StyledRoutes(context.Background()),
		ctl.LinkedRoutes(context.Background()),
		ctl.ScheduleTable(context.Background(), "Red"),
	} {
		assert.False(t, result.OK())
		assert.Equal(t, tables.KindNetwork, result.Kind)
		assert.Contains(t, result.Render().Message, "unavailable")
	}
}

func TestController_EmptyRoutes(t *testing.T) {
	ctl := New(&fakeAPI{}, stopNames(nil, nil), Options{})
	result := ctl.StyledRoutes(context.Background())
	require.True(t, result.OK())
	assert.Empty(t, result.Table.Rows)

	ctl = New(&fakeAPI{}, stopNames(nil, nil), Options{Routes: tables.RouteTableOptions{RequireRoutes: true}})
	result = ctl.LinkedRoutes(context.Background())
	assert.Equal(t, tables.KindEmptyDataset, result.Kind)
}

func TestController_ScheduleTable(t *testing.T) {
	api := &fakeAPI{schedules: []tables.ScheduleEntry{
		{StopID: "70061", DepartureTime: ptr("2024-01-01T17:16:00-05:00")},
		{StopID: "70063"},
		{StopID: "70065", ArrivalTime: ptr("2024-01-01T17:20:00-05:00")},
	}}
	names := map[string]string{"70061": "Alewife", "70063": "Davis", "70065": "Porter"}
	ctl := New(api, stopNames(names, nil), Options{ScheduleLimit: 10})

	result := ctl.ScheduleTable(context.Background(), " Red ")
	require.True(t, result.OK())

	assert.Equal(t, "Red", api.scheduleRoute)
	assert.Equal(t, 10, api.scheduleLimit)
	assert.Equal(t, []string{"Stop Name", "Time"}, result.Table.Header)
	require.Len(t, result.Table.Rows, 3)
	assert.Equal(t, "12:16", result.Table.Rows[0].Cells[1].Text)
	assert.Equal(t, "--", result.Table.Rows[1].Cells[1].Text)
	assert.Equal(t, "Porter", result.Table.Rows[2].Cells[0].Text)
	assert.Equal(t, "12:20", result.Table.Rows[2].Cells[1].Text)
}

func TestController_ScheduleTable_StopLookupFailure(t *testing.T) {
	api := &fakeAPI{schedules: []tables.ScheduleEntry{{StopID: "70061", DepartureTime: ptr("2024-01-01T17:16:00-05:00")}}}
	ctl := New(api, stopNames(nil, errors.New("timeout")), Options{})

	result := ctl.ScheduleTable(context.Background(), "Red")
	assert.Equal(t, tables.KindNetwork, result.Kind)
}

func TestController_ScheduleTable_MissingRoute(t *testing.T) {
	api := &fakeAPI{}
	ctl := New(api, stopNames(nil, nil), Options{})

	result := ctl.ScheduleTable(context.Background(), "  ")
	assert.Equal(t, tables.KindInvalidRequest, result.Kind)
	assert.Empty(t, api.scheduleRoute)
}
