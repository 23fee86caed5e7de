/*
Copyright 2024 The AzMig Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package azure

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/mayoit/azmig-tool-assistant/util/cache/ttllru"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

const (
	// defaultRunCacheSize bounds the number of cached call results.
	defaultRunCacheSize = 1024
	// defaultRunCacheTTL is how long a cached call result stays valid.
	defaultRunCacheTTL = 5 * time.Minute
)

// CallKey identifies a single cacheable Azure call within a validation run.
// Calls with identical keys share one cached result.
type CallKey struct {
	Op             string
	SubscriptionID string
	ResourceGroup  string
	Resource       string
}

// String returns the canonical cache key.
func (k CallKey) String() string {
	return strings.Join([]string{k.Op, k.SubscriptionID, k.ResourceGroup, k.Resource}, "|")
}

// RunCache deduplicates Azure calls within a validation run. Identical calls
// issued concurrently are collapsed into one in-flight request, and completed
// results are kept until the TTL expires. Errors are never cached, so a call
// that failed can be retried by a later check.
type RunCache struct {
	cache ttllru.PeekingCacher
	group singleflight.Group
}

// NewRunCache creates a RunCache with the default size and TTL.
func NewRunCache() (*RunCache, error) {
	return NewRunCacheWithTTL(defaultRunCacheSize, defaultRunCacheTTL)
}

// NewRunCacheWithTTL creates a RunCache with the given bounds.
func NewRunCacheWithTTL(size int, ttl time.Duration) (*RunCache, error) {
	c, err := ttllru.New(size, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build run cache")
	}
	return &RunCache{cache: c}, nil
}

// GetOrFetch returns the cached result for key, invoking fetch to produce it
// on a miss. Concurrent callers with the same key share a single fetch.
func (rc *RunCache) GetOrFetch(ctx context.Context, key CallKey, fetch func(context.Context) (interface{}, error)) (interface{}, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "azure.RunCache.GetOrFetch",
		tele.KVP("operation", key.Op),
	)
	defer done()

	if val, ok := rc.cache.Get(key.String()); ok {
		return val, nil
	}

	val, err, _ := rc.group.Do(key.String(), func() (interface{}, error) {
		// Another caller may have populated the cache while this one was
		// waiting on the flight group.
		if val, ok := rc.cache.Get(key.String()); ok {
			return val, nil
		}

		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		rc.cache.Add(key.String(), val)
		return val, nil
	})
	return val, err
}

// Fetch returns the cached result for key typed as T, invoking fetch to
// produce it on a miss.
func Fetch[T any](ctx context.Context, rc *RunCache, key CallKey, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	val, err := rc.GetOrFetch(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := val.(T)
	if !ok {
		return zero, errors.Errorf("unexpected type %T cached for call %q", val, key.String())
	}
	return typed, nil
}
