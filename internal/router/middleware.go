package router

import (
	"context"
	"strings"
	"time"

	"github.com/yallaorder-next/internal/cache"
	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/http/handlers/shared"
	"github.com/yallaorder-next/internal/http/response"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/provider"
	"github.com/yallaorder-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by the client.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggerMiddleware logs one structured line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"),
			"client_ip", c.ClientIP(),
		)
	}
}

// CORSMiddleware applies the configured cross-origin policy.
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Methods", methods)
			c.Writer.Header().Set("Access-Control-Allow-Headers", headers)
			if cfg.AllowCredentials {
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			c.Writer.Header().Set("Vary", "Origin")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// PartnerAuthMiddleware authenticates partner requests. The token must be
// a valid partner token and the partner must still be approved; the
// approval check is answered from cache when fresh.
func PartnerAuthMiddleware(container *provider.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, err := service.ParseToken(container.Cfg.PartnerJWT, token, service.TokenRolePartner)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		status, err := partnerStatus(c.Request.Context(), container, claims.SubjectID)
		if err != nil {
			logger.Errorw("partner_auth_lookup_failed",
				"partner_id", claims.SubjectID,
				"error", err,
			)
			response.InternalError(c)
			c.Abort()
			return
		}
		if status != constants.ApplicationStatusApproved {
			response.Unauthorized(c, "partner account is not active")
			c.Abort()
			return
		}

		c.Set(shared.CtxPartnerID, claims.SubjectID)
		c.Next()
	}
}

// partnerStatus resolves a partner's application status, cache first.
func partnerStatus(ctx context.Context, container *provider.Container, partnerID uint) (string, error) {
	if state, ok, err := cache.GetPartnerAuthState(ctx, partnerID); err == nil && ok {
		return state.Status, nil
	}
	app, err := container.Partners.GetByID(partnerID)
	if err != nil {
		return "", err
	}
	if app == nil {
		return "", nil
	}
	if err := cache.SetPartnerAuthState(ctx, cache.BuildPartnerAuthState(app)); err != nil {
		logger.Warnw("partner_auth_state_cache_failed",
			"partner_id", partnerID,
			"error", err,
		)
	}
	return app.Status, nil
}

// UserAuthMiddleware authenticates customer requests.
func UserAuthMiddleware(container *provider.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		claims, err := service.ParseToken(container.Cfg.UserJWT, token, service.TokenRoleUser)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(shared.CtxUserID, claims.SubjectID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
