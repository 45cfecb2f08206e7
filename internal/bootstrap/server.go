package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/artwalls/artwalls/api"
	"github.com/artwalls/artwalls/config"
	"github.com/artwalls/artwalls/internal/auth"
	"github.com/artwalls/artwalls/internal/cache"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Schedules    *api.ScheduleHandler
	Availability *api.AvailabilityHandler
	Bookings     *api.BookingHandler
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, authMgr *auth.Manager, redisCache *cache.RedisCache, h Handlers) error {
	engine := newEngine(cfg, logger, authMgr, redisCache, h)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newEngine(cfg *config.Config, logger *zap.Logger, authMgr *auth.Manager, redisCache *cache.RedisCache, h Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	limit := rateLimit(redisCache, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	root := engine.Group("/api")
	root.Use(auth.Resolve(authMgr))

	venues := root.Group("/venues/:venueId")
	venues.GET("/schedule", h.Schedules.Get)
	venues.POST("/schedule", limit, auth.RequireVenueOwner(), h.Schedules.Upsert)
	venues.GET("/availability", h.Availability.Get)
	venues.POST("/bookings", limit, auth.RequireAuth(), h.Bookings.Create)
	venues.GET("/bookings", auth.RequireVenueOwner(), h.Bookings.ListForVenue)

	return engine
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// rateLimit gates mutating routes; Redis trouble degrades open rather
// than refusing traffic.
func rateLimit(redisCache *cache.RedisCache, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisCache == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := redisCache.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
