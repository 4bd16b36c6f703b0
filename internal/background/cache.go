// Package background maintains the content-addressable cache of per-sport
// background images: at most one generated blob per sport slug, created lazily
// on first request and reused by every later one.
package background

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prosport1/ProSport/internal/storage"
	"github.com/prosport1/ProSport/internal/util"
	perrors "github.com/prosport1/ProSport/pkg/errors"
)

const (
	// defaultSlug is the cache key for sports that slugify to nothing.
	defaultSlug = "bg"

	urlKeyPrefix  = "prosport:bg:url:"
	lockKeyPrefix = "prosport:bg:lock:"

	lockTTL      = 45 * time.Second
	lockPollStep = 500 * time.Millisecond
	lockPollMax  = 12 * time.Second

	blobCacheControl = "public,max-age=31536000,immutable"
)

const imagePrompt = `Thematic photographic background for %s, cinematic still style,
no people or faces, no logos, no text.
Composition suited for a landing page backdrop, soft dramatic lighting,
light texture and tones coherent with the sport.`

// locker serializes first-generation of a slug across concurrent requests.
type locker interface {
	acquire(ctx context.Context, slug string) (release func(), acquired bool)
}

// noopLocker always grants the lock. Used when Redis is not configured; the
// duplicate-generation race is accepted because the blob write is idempotent.
type noopLocker struct{}

func (noopLocker) acquire(context.Context, string) (func(), bool) {
	return func() {}, true
}

type redisLocker struct {
	client *redis.Client
	logger *zap.Logger
}

func (l *redisLocker) acquire(ctx context.Context, slug string) (func(), bool) {
	key := lockKeyPrefix + slug
	ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
	if err != nil {
		l.logger.Warn("Background lock unavailable, proceeding without it",
			zap.String("slug", slug),
			zap.Error(perrors.NewCacheError("background lock acquisition failed", "setnx", slug, err)),
		)
		return func() {}, true
	}
	if !ok {
		return nil, false
	}
	return func() { _ = l.client.Del(context.WithoutCancel(ctx), key).Err() }, true
}

// Cache resolves the background image URL for a sport. Every failure path
// degrades to an empty URL; Ensure never returns an error.
type Cache struct {
	store    storage.Store
	images   ImageGenerator
	redis    *redis.Client
	locks    locker
	logger   *zap.Logger
	pollStep time.Duration
	pollMax  time.Duration
}

// NewCache builds a background cache. images may be nil (no image credential
// configured) and redis may be nil (no per-slug lock, no URL cache).
func NewCache(store storage.Store, images ImageGenerator, rdb *redis.Client, logger *zap.Logger) *Cache {
	var locks locker = noopLocker{}
	if rdb != nil {
		locks = &redisLocker{client: rdb, logger: logger}
	}

	return &Cache{
		store:    store,
		images:   images,
		redis:    rdb,
		locks:    locks,
		logger:   logger,
		pollStep: lockPollStep,
		pollMax:  lockPollMax,
	}
}

// Slug normalizes a sport name to its background cache key.
func Slug(sport string) string {
	if s := util.Slugify(sport); s != "" {
		return s
	}
	return defaultSlug
}

// Ensure returns the public URL of the sport's background image, generating and
// persisting it on first request. Returns "" when no background is available;
// downstream generation proceeds without one.
func (c *Cache) Ensure(ctx context.Context, sport string) string {
	slug := Slug(sport)
	path := fmt.Sprintf("backgrounds/%s.jpg", slug)

	if url := c.cachedURL(ctx, slug); url != "" {
		return url
	}

	exists, err := c.store.Exists(ctx, path)
	if err != nil {
		c.logger.Warn("Background existence check failed",
			zap.String("slug", slug),
			zap.Error(perrors.NewCacheError("background existence check failed", "exists", slug, err)),
		)
		return ""
	}
	if exists {
		url := c.store.PublicURL(path)
		c.rememberURL(ctx, slug, url)
		return url
	}

	if c.images == nil {
		c.logger.Warn("Background generation skipped: image model not configured",
			zap.String("slug", slug),
		)
		return ""
	}

	release, acquired := c.locks.acquire(ctx, slug)
	if !acquired {
		// Another request is generating this slug right now. Wait for its blob
		// instead of paying for a duplicate model call.
		return c.awaitBlob(ctx, slug, path)
	}
	defer release()

	data, err := c.images.GenerateImage(ctx, fmt.Sprintf(imagePrompt, strings.TrimSpace(sport)))
	if err != nil {
		c.logger.Warn("Background generation failed",
			zap.String("slug", slug),
			zap.Error(perrors.NewUpstreamError("background generation failed", "gemini", "generate_image", err)),
		)
		return ""
	}
	if len(data) == 0 {
		c.logger.Warn("Background generation returned empty payload", zap.String("slug", slug))
		return ""
	}

	if err := c.store.Save(ctx, path, data, storage.SaveOptions{
		ContentType:  "image/jpeg",
		CacheControl: blobCacheControl,
	}); err != nil {
		c.logger.Warn("Background upload failed",
			zap.String("slug", slug),
			zap.Error(perrors.NewCacheError("background upload failed", "save", slug, err)),
		)
		return ""
	}
	if err := c.store.MakePublic(ctx, path); err != nil {
		c.logger.Warn("Background publish failed",
			zap.String("slug", slug),
			zap.Error(perrors.NewCacheError("background publish failed", "publish", slug, err)),
		)
		return ""
	}

	url := c.store.PublicURL(path)
	c.rememberURL(ctx, slug, url)

	c.logger.Info("Background generated",
		zap.String("slug", slug),
		zap.Int("bytes", len(data)),
	)
	return url
}

func (c *Cache) cachedURL(ctx context.Context, slug string) string {
	if c.redis == nil {
		return ""
	}
	url, err := c.redis.Get(ctx, urlKeyPrefix+slug).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		c.logger.Warn("Background URL cache read failed",
			zap.String("slug", slug),
			zap.Error(perrors.NewCacheError("background URL cache read failed", "get", slug, err)),
		)
		return ""
	}
	return url
}

func (c *Cache) rememberURL(ctx context.Context, slug, url string) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, urlKeyPrefix+slug, url, 24*time.Hour).Err(); err != nil {
		c.logger.Warn("Background URL cache write failed",
			zap.String("slug", slug),
			zap.Error(perrors.NewCacheError("background URL cache write failed", "set", slug, err)),
		)
	}
}

// awaitBlob polls for the blob another request is uploading.
func (c *Cache) awaitBlob(ctx context.Context, slug, path string) string {
	deadline := time.Now().Add(c.pollMax)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ""
		case <-time.After(c.pollStep):
		}

		exists, err := c.store.Exists(ctx, path)
		if err != nil {
			continue
		}
		if exists {
			url := c.store.PublicURL(path)
			c.rememberURL(ctx, slug, url)
			return url
		}
	}

	c.logger.Warn("Timed out waiting for concurrent background generation",
		zap.String("slug", slug),
	)
	return ""
}
