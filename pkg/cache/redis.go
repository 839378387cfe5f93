package cache

import (
	"encoding/json"
	rediscache "github.com/go-redis/cache"
	"github.com/go-redis/redis"
	"github.com/golang/glog"
	"time"
)

type RedisBackend struct {
	codec          *rediscache.Codec
	expirationTime time.Duration
}

func (r RedisBackend) Get(key string) (string, bool) {
	var value string
	if err := r.codec.Get(key, &value); err != nil {
		if err != rediscache.ErrCacheMiss {
			glog.Warningf("Redis lookup of %s failed: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (r RedisBackend) Set(key string, value string) error {
	return r.codec.Set(&rediscache.Item{
		Key:        key,
		Object:     value,
		Expiration: r.expirationTime,
	})
}

func NewRedisBackend(address string, password string, expirationTime time.Duration) Backend {
	return RedisBackend{
		codec: &rediscache.Codec{
			Redis: redis.NewClient(&redis.Options{
				Addr:     address,
				Password: password,
			}),
			Marshal:   json.Marshal,
			Unmarshal: json.Unmarshal,
		},
		expirationTime: expirationTime,
	}
}
