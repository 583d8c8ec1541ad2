package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/metrics"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/response"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the key store
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// DefaultIdempotencyTTL is how long keys are valid
	DefaultIdempotencyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo    repository.IdempotencyRepository
	TTL     time.Duration
	Metrics *metrics.Metrics
	Log     *zap.Logger
	Now     func() time.Time
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a POST repeats its
// Idempotency-Key. Reusing a key with a different body or endpoint is a 422;
// repeating it while the first request still runs is a 409.
// Requests without the header pass through untouched.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultIdempotencyTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		userID, ok := c.Get(ContextUserID)
		if !ok {
			c.Next()
			return
		}
		uid, ok := userID.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Could not read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])
		endpoint := c.Request.Method + " " + c.FullPath()

		existing, err := cfg.Repo.GetByKey(c.Request.Context(), key, uid)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if existing != nil && !existing.IsExpired(cfg.Now()) {
			answerExisting(c, cfg, existing, endpoint, requestHash)
			return
		}

		// the reservation is the lock: a concurrent duplicate finds it pending
		ikey := &entity.IdempotencyKey{
			Key:         key,
			UserID:      uid,
			Endpoint:    endpoint,
			RequestHash: requestHash,
			ExpiresAt:   cfg.Now().Add(cfg.TTL),
		}
		reserved, err := cfg.Repo.Reserve(c.Request.Context(), ikey)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !reserved {
			existing, err := cfg.Repo.GetByKey(c.Request.Context(), key, uid)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			if existing == nil {
				// released between our insert and this read
				existing = ikey
			}
			answerExisting(c, cfg, existing, endpoint, requestHash)
			return
		}

		capture := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		ctx := context.WithoutCancel(c.Request.Context())
		status := c.Writer.Status()
		// only successful writes are replayable; a failed attempt may be retried
		if status < 200 || status >= 300 {
			if err := cfg.Repo.Release(ctx, ikey.ID); err != nil {
				cfg.Log.Warn("idempotency reservation not released",
					zap.String("key", key),
					zap.String("endpoint", endpoint),
					zap.Error(err),
				)
			}
			return
		}
		if err := cfg.Repo.Complete(ctx, ikey.ID, status, capture.body.String()); err != nil {
			cfg.Log.Warn("idempotency key not stored",
				zap.String("key", key),
				zap.String("endpoint", endpoint),
				zap.Error(err),
			)
		}
	}
}

func answerExisting(c *gin.Context, cfg IdempotencyConfig, existing *entity.IdempotencyKey, endpoint, requestHash string) {
	defer c.Abort()
	if !existing.Matches(endpoint, requestHash) {
		response.Error(c, apperror.NewFieldError(IdempotencyKeyHeader,
			"Esta chave já foi usada com outra requisição", nil))
		return
	}
	if existing.IsPending() {
		response.Error(c, apperror.NewConflictError("Requisição com esta chave ainda em processamento"))
		return
	}
	cfg.Metrics.IdempotentReplay(endpoint)
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
}

// IdempotencyJanitor deletes expired keys every interval until ctx is done
func IdempotencyJanitor(ctx context.Context, repo repository.IdempotencyRepository, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := repo.DeleteExpired(ctx, now)
			if err != nil {
				log.Warn("idempotency cleanup failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				log.Debug("idempotency keys expired", zap.Int64("removed", removed))
			}
		}
	}
}
