package tables

import (
	"context"
)

// StopNameResolver looks up display names for a batch of stop ids.
// Ids missing from the returned map are shown by id.
type StopNameResolver interface {
	ResolveMany(ctx context.Context, ids []string) (map[string]string, error)
}

// ResolverFunc adapts a single-stop lookup into a StopNameResolver.
type ResolverFunc func(ctx context.Context, id string) (string, error)

func (f ResolverFunc) ResolveMany(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		name, err := f(ctx, id)
		if err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, nil
}

type ScheduleRow struct {
	StopID   string
	StopName string
	Time     string
	Err      error
}

// BuildScheduleRows produces one row per entry, in input order. Stop names are
// resolved in a single batch; a resolver failure fails the whole call, while
// timestamp problems are recorded on the affected row only.
func BuildScheduleRows(ctx context.Context, entries []ScheduleEntry, resolver StopNameResolver) ([]ScheduleRow, error) {
	names, err := resolver.ResolveMany(ctx, distinctStopIDs(entries))
	if err != nil {
		return nil, err
	}

	rows := make([]ScheduleRow, 0, len(entries))
	for _, entry := range entries {
		row := ScheduleRow{
			StopID:   entry.StopID,
			StopName: entry.StopID,
		}
		if name, ok := names[entry.StopID]; ok && name != "" {
			row.StopName = name
		}

		if timestamp, ok := entry.displayTimestamp(); !ok {
			row.Err = &MissingTimestampError{StopID: entry.StopID}
		} else if row.Time, err = FormatTime(timestamp); err != nil {
			row.Err = err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ScheduleTable lays out rows under a "Stop Name" / "Time" header.
func ScheduleTable(rows []ScheduleRow) Table {
	table := Table{
		Header: []string{"Stop Name", "Time"},
		Rows:   make([]Row, 0, len(rows)),
	}

	for _, row := range rows {
		if row.Err != nil {
			table.Rows = append(table.Rows, Row{
				Classes: []string{"row-error"},
				Cells:   []Cell{TextCell(row.StopName), TextCell("--")},
			})
			continue
		}

		table.Rows = append(table.Rows, Row{
			Cells: []Cell{TextCell(row.StopName), TextCell(row.Time)},
		})
	}

	return table
}

// RowErrors returns the errors recorded on rows, in row order.
func RowErrors(rows []ScheduleRow) []error {
	var errs []error
	for _, row := range rows {
		if row.Err != nil {
			errs = append(errs, row.Err)
		}
	}
	return errs
}

func (e ScheduleEntry) displayTimestamp() (string, bool) {
	if e.DepartureTime != nil && *e.DepartureTime != "" {
		return *e.DepartureTime, true
	}
	if e.ArrivalTime != nil && *e.ArrivalTime != "" {
		return *e.ArrivalTime, true
	}
	return "", false
}

func distinctStopIDs(entries []ScheduleEntry) []string {
	seen := make(map[string]bool, len(entries))
	ids := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.StopID == "" || seen[entry.StopID] {
			continue
		}
		seen[entry.StopID] = true
		ids = append(ids, entry.StopID)
	}

	return ids
}
