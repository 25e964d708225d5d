package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cordwain/internal/application/review"
	"cordwain/internal/domain/ticket"
	"cordwain/internal/shared/logger"
)

const (
	translationCachePrefix     = "translation:"
	translationCacheDefaultTTL = 30 * 24 * time.Hour
)

// CachedTranslator caches translations in Redis. Comment texts are
// immutable once stored, so a cached translation never goes stale.
type CachedTranslator struct {
	inner  review.Translator
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedTranslator(inner review.Translator, client *redis.Client, ttl time.Duration) *CachedTranslator {
	if ttl <= 0 {
		ttl = translationCacheDefaultTTL
	}

	return &CachedTranslator{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.NewLogger().With("component", "translation.cache"),
	}
}

func (t *CachedTranslator) Translate(ctx context.Context, text string, source, target ticket.Language) (string, error) {
	key := translationCacheKey(text, source, target)

	cached, err := t.client.Get(ctx, key).Result()
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		// Cache trouble must not take the translator down.
		t.logger.Warnw("translation cache read failed", "error", err)
	}

	translated, err := t.inner.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	if err := t.client.Set(ctx, key, translated, t.ttl).Err(); err != nil {
		t.logger.Warnw("translation cache write failed", "error", err)
	}

	return translated, nil
}

func translationCacheKey(text string, source, target ticket.Language) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s%s:%s:%s", translationCachePrefix, source, target, hex.EncodeToString(sum[:]))
}
