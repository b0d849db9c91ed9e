package moderation

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mkravets/safechat/internal/services"
)

const scoreTTL = 24 * time.Hour

// CachedClassifier fronts a classifier with a Redis score cache so the same
// text is scored once per TTL window. Cache failures never fail the
// moderation path; they just fall through to the classifier.
type CachedClassifier struct {
	inner services.Classifier
	redis *redis.Client
}

func NewCachedClassifier(inner services.Classifier, rdb *redis.Client) *CachedClassifier {
	return &CachedClassifier{inner: inner, redis: rdb}
}

func (c *CachedClassifier) Classify(ctx context.Context, text string) (services.Scores, error) {
	key := scoreKey(text)

	if val, err := c.redis.Get(ctx, key).Result(); err == nil {
		if scores, perr := ParseScores(val); perr == nil {
			return scores, nil
		}
	}

	scores, err := c.inner.Classify(ctx, text)
	if err != nil {
		return scores, err
	}

	c.redis.Set(ctx, key, fmt.Sprintf("%g %g", scores.Score0, scores.Score1), scoreTTL)

	return scores, nil
}

func scoreKey(text string) string {
	sum := sha1.Sum([]byte(text))
	return "toxicity:" + hex.EncodeToString(sum[:])
}
