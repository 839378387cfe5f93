package timetables

import (
	"context"
	"fmt"
)

// StopResolver looks stop names up one stop at a time through the API.
type StopResolver struct {
	client *Client
}

func (r *StopResolver) ResolveMany(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))

	for _, id := range ids {
		if _, done := names[id]; done || id == "" {
			continue
		}

		stop, err := r.client.Stop(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to look up stop %s: %w", id, err)
		}

		names[id] = stop.Name
	}

	return names, nil
}

func NewStopResolver(client *Client) *StopResolver {
	return &StopResolver{client: client}
}
