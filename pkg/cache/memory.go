package cache

import (
	gocache "github.com/patrickmn/go-cache"
	"time"
)

type MemoryBackend struct {
	backend *gocache.Cache
}

func (m MemoryBackend) Get(key string) (string, bool) {
	raw, found := m.backend.Get(key)
	if !found {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

func (m MemoryBackend) Set(key string, value string) error {
	m.backend.SetDefault(key, value)
	return nil
}

func NewMemoryBackend(expirationTime time.Duration) Backend {
	return MemoryBackend{
		backend: gocache.New(expirationTime, expirationTime*2),
	}
}
