package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"devops-reference/internal/cache"
	"devops-reference/internal/domain"
	"devops-reference/internal/logger"
	"devops-reference/internal/metrics"
	"devops-reference/internal/render"

	"go.uber.org/zap"
)

const DefaultRenderedAnswerTTL = 24 * time.Hour

// AnswerRenderer turns a question's raw answer into display markup.
type AnswerRenderer interface {
	Render(ctx context.Context, q domain.QuestionRecord) string
}

// answerRenderCache renders answers and memoizes the markup in the cache.
// Cache failures are logged and never surface to callers.
type answerRenderCache struct {
	cache   domain.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewAnswerRenderCache creates an AnswerRenderer. A nil cache renders on every call.
func NewAnswerRenderCache(c domain.Cache, ttl time.Duration, m *metrics.Metrics) AnswerRenderer {
	if ttl <= 0 {
		ttl = DefaultRenderedAnswerTTL
	}
	return &answerRenderCache{cache: c, ttl: ttl, metrics: m}
}

func answerDigest(answer string) string {
	sum := sha256.Sum256([]byte(answer))
	return hex.EncodeToString(sum[:8])
}

// Render implements AnswerRenderer.
func (s *answerRenderCache) Render(ctx context.Context, q domain.QuestionRecord) string {
	if s.cache == nil {
		return render.FormatAnswer(q.Answer)
	}

	key := cache.RenderedAnswerKey(q.ID, answerDigest(q.Answer))
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		s.metrics.ObserveCache(true)
		return cached
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("AnswerRenderCache: cache lookup failed, rendering directly",
			zap.String("key", key),
			zap.Error(err))
	}
	s.metrics.ObserveCache(false)

	html := render.FormatAnswer(q.Answer)
	if err := s.cache.Set(ctx, key, html, s.ttl); err != nil {
		logger.Get().Warn("AnswerRenderCache: failed to store rendered answer",
			zap.String("key", key),
			zap.Error(err))
	}
	return html
}
