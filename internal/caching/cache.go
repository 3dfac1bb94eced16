package caching

import (
	"context"
)

// PageCache stores rendered read responses keyed by request path.
// Revalidate drops every cached variant of the given paths.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Revalidate(ctx context.Context, paths ...string) error
}

const keyPrefix = "page:"

// Key builds the cache key of a path and its raw query string.
func Key(path, rawQuery string) string {
	if rawQuery == "" {
		return keyPrefix + path
	}
	return keyPrefix + path + "?" + rawQuery
}

type noopCache struct{}

// NewNoopCache returns a cache that never hits, used when Redis is not configured.
func NewNoopCache() PageCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopCache) Set(context.Context, string, []byte) error { return nil }

func (noopCache) Revalidate(context.Context, ...string) error { return nil }
