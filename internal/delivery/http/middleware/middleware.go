package middleware

import (
	"net/http"
	"time"

	entity "disaster-alert/internal/domain"
	"disaster-alert/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

type hashEnvelope struct {
	Hash *string `json:"hash"`
}

// HashRequired rejects any request whose JSON body does not carry a "hash"
// equal to secret. The body is cached on the context so handlers can bind it
// again with ShouldBindBodyWith. Rejections answer failStatus with
// {"message":"Invalid Hash"}.
func HashRequired(secret string, failStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body hashEnvelope
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil ||
			body.Hash == nil || secret == "" || !utils.SecureCompare(*body.Hash, secret) {
			c.AbortWithStatusJSON(failStatus, gin.H{"message": entity.MsgInvalidHash})
			return
		}
		c.Next()
	}
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(RequestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)))
		c.AbortWithStatusJSON(http.StatusInternalServerError, entity.Failure(entity.MsgInternalError))
	})
}
