package cache

import (
	"context"
	"github.com/golang/glog"
	"github.com/rycus86/mbta-route-tables/pkg/tables"
)

const keyPrefix = "stop-name:"

// Backend stores stop names by stop id.
type Backend interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Resolver answers stop name lookups from a Backend and forwards only the misses.
type Resolver struct {
	backend Backend
	next    tables.StopNameResolver
}

func (r *Resolver) ResolveMany(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	var misses []string

	for _, id := range ids {
		if name, ok := r.backend.Get(keyPrefix + id); ok {
			names[id] = name
		} else {
			misses = append(misses, id)
		}
	}

	if len(misses) == 0 {
		return names, nil
	}

	resolved, err := r.next.ResolveMany(ctx, misses)
	if err != nil {
		return nil, err
	}

	for id, name := range resolved {
		names[id] = name

		if err := r.backend.Set(keyPrefix+id, name); err != nil {
			glog.Warningf("Failed to cache name of stop %s: %v", id, err)
		}
	}

	return names, nil
}

func NewResolver(backend Backend, next tables.StopNameResolver) *Resolver {
	return &Resolver{
		backend: backend,
		next:    next,
	}
}
