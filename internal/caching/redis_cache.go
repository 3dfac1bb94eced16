package caching

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient accepts either host:port or a redis:// URL.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if opts, err := redis.ParseURL(addr); err == nil {
			return redis.NewClient(opts)
		}
		log.Warn().Str("addr", addr).Msg("could not parse redis url, using it as an address")
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisPageCache(client *redis.Client, ttl time.Duration) PageCache {
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("redis ping failed, page cache will miss until it is reachable")
	}
	return &redisPageCache{client: client, ttl: ttl}
}

func (r *redisPageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *redisPageCache) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Revalidate deletes page:<path> and every page:<path>?<query> variant.
func (r *redisPageCache) Revalidate(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		keys := []string{Key(path, "")}
		iter := r.client.Scan(ctx, 0, escapeGlob(Key(path, ""))+`\?*`, 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		log.Debug().Str("path", path).Int("keys", len(keys)).Msg("revalidated")
	}
	return nil
}

// escapeGlob quotes the characters SCAN MATCH treats as wildcards.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
