package caption

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedProvider memoizes captions by image digest so re-sending the same
// image does not hit the collaborator again. Failures are never cached.
type CachedProvider struct {
	inner Provider
	cache *cache.Cache
}

var _ Provider = &CachedProvider{}

func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (c *CachedProvider) Caption(ctx context.Context, image string) (string, error) {
	key := imageDigest(image)
	if x, found := c.cache.Get(key); found {
		return x.(string), nil
	}

	text, err := c.inner.Caption(ctx, image)
	if err != nil {
		return "", err
	}

	c.cache.Set(key, text, cache.DefaultExpiration)
	return text, nil
}

func imageDigest(image string) string {
	sum := sha256.Sum256([]byte(image))
	return hex.EncodeToString(sum[:])
}
