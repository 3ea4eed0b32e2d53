package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/sirupsen/logrus"
)

type URLCacheServiceProvider interface {
	GetReadURL(ctx context.Context, objectKey string) (string, error)
}

// URLCacheService caches presigned read URLs until shortly before they expire.
type URLCacheService struct {
	cache *cache.LoadableCache[string]
}

// cacheTTL keeps a cached URL for 80% of its lifetime.
func cacheTTL(urlExpiration time.Duration) time.Duration {
	return urlExpiration * 4 / 5
}

func NewURLCacheService(awsService AWSServiceProvider, urlExpiration time.Duration, log logrus.FieldLogger) (*URLCacheService, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	ttl := cacheTTL(urlExpiration)
	loadFunction := func(ctx context.Context, key any) (string, []store.Option, error) {
		objectKey, ok := key.(string)
		if !ok {
			return "", nil, fmt.Errorf("invalid key type provided to URL cache: expected string, got %T", key)
		}
		log.WithField("object_key", objectKey).Debug("url cache miss")
		url, err := awsService.GetPresignedReadURL(ctx, objectKey)
		return url, []store.Option{store.WithExpiration(ttl), store.WithCost(int64(len(url)))}, err
	}

	return &URLCacheService{
		cache: cache.NewLoadable[string](loadFunction, cache.New[string](ristrettoStore)),
	}, nil
}

func (s *URLCacheService) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", nil
	}
	return s.cache.Get(ctx, objectKey)
}
