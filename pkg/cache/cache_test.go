package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	names map[string]string
	asked [][]string
	err   error
}

func (c *countingResolver) ResolveMany(ctx context.Context, ids []string) (map[string]string, error) {
	c.asked = append(c.asked, ids)
	if c.err != nil {
		return nil, c.err
	}
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := c.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type failingBackend struct {
	Backend
}

func (failingBackend) Set(key string, value string) error {
	return errors.New("read-only")
}

func TestMemoryBackend(t *testing.T) {
	backend := NewMemoryBackend(time.Minute)

	_, found := backend.Get("stop-name:70061")
	assert.False(t, found)

	require.NoError(t, backend.Set("stop-name:70061", "Alewife"))

	value, found := backend.Get("stop-name:70061")
	assert.True(t, found)
	assert.Equal(t, "Alewife", value)
}

func TestMemoryBackend_Expiry(t *testing.T) {
	backend := NewMemoryBackend(10 * time.Millisecond)
	require.NoError(t, backend.Set("k", "v"))

	time.Sleep(30 * time.Millisecond)

	_, found := backend.Get("k")
	assert.False(t, found)
}

func TestResolver_OnlyForwardsMisses(t *testing.T) {
	next := &countingResolver{names: map[string]string{"70061": "Alewife", "70063": "Davis", "70065": "Porter"}}
	resolver := NewResolver(NewMemoryBackend(time.Minute), next)

	names, err := resolver.ResolveMany(context.Background(), []string{"70061", "70063"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"70061": "Alewife", "70063": "Davis"}, names)

	names, err = resolver.ResolveMany(context.Background(), []string{"70061", "70065"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"70061": "Alewife", "70065": "Porter"}, names)

	names, err = resolver.ResolveMany(context.Background(), []string{"70065", "70063"})
	require.NoError(t, err)
	assert.Len(t, names, 2)

	assert.Equal(t, [][]string{{"70061", "70063"}, {"70065"}}, next.asked)
}

func TestResolver_PropagatesErrors(t *testing.T) {
	next := &countingResolver{err: errors.New("timeout")}
	resolver := NewResolver(NewMemoryBackend(time.Minute), next)

	_, err := resolver.ResolveMany(context.Background(), []string{"70061"})
	assert.Error(t, err)
}

func TestResolver_BackendWriteFailureIsNotFatal(t *testing.T) {
	next := &countingResolver{names: map[string]string{"70061": "Alewife"}}
	resolver := NewResolver(failingBackend{NewMemoryBackend(time.Minute)}, next)

	names, err := resolver.ResolveMany(context.Background(), []string{"70061"})
	require.NoError(t, err)
	assert.Equal(t, "Alewife", names["70061"])
}

func TestRedisBackend(t *testing.T) {
	address := os.Getenv("REDIS_ADDR")
	if address == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	backend := NewRedisBackend(address, os.Getenv("REDIS_PASSWORD"), time.Minute)
	key := "stop-name:test-" + time.Now().Format("150405.000000")

	_, found := backend.Get(key)
	assert.False(t, found)

	require.NoError(t, backend.Set(key, "Alewife"))

	value, found := backend.Get(key)
	assert.True(t, found)
	assert.Equal(t, "Alewife", value)
}
