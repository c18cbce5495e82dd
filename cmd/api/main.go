package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rollcall/internal/auth"
	"rollcall/internal/config"
	"rollcall/internal/handler"
	"rollcall/internal/httpmiddleware"
	"rollcall/internal/ledger"
	"rollcall/internal/ledger/memory"
	"rollcall/internal/snapshot"
	"rollcall/internal/store"
	"rollcall/internal/watch"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

// storeFor picks the ledger store backend. The memory backend exists for
// development without Postgres; it shares semantics with the repository.
func storeFor(ctx context.Context, cfg config.App) (ledger.Store, *store.DB, error) {
	if cfg.StoreBackend == "memory" {
		log.Println("using in-memory store (STORE_BACKEND=memory)")
		return memory.NewStore(), nil, nil
	}
	db, err := store.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, nil, err
	}
	return ledger.NewRepository(db.Client), db, nil
}

func runHTTP(cfg config.App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, db, err := storeFor(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient := store.NewRedis(cfg.RedisAddr)

	var notifier watch.Notifier
	if cfg.NotifyBackend == "memory" {
		notifier = watch.NewInMemory(64)
	} else {
		notifier = watch.NewRedisNotifier(redisClient.Client, "rollcall:changes")
	}

	svc := ledger.NewService(st, notifier)

	cache := snapshot.New(st)
	go func() {
		if err := cache.Run(ctx, notifier); err != nil && ctx.Err() == nil {
			log.Printf("snapshot watcher stopped: %v", err)
		}
	}()

	var counts handler.Counter
	if cfg.NotifyBackend != "memory" {
		counts = redisClient
	}
	h := handler.New(svc, cache, counts, handler.SessionConfig{
		Issuer:     cfg.JWTIssuer,
		SigningKey: cfg.JWTSigningKey,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(corsMiddleware())
	r.Use(securityHeaders())
	r.Use(httpmiddleware.NewSimpleTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin).GinMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", healthzHandler(cfg, db, redisClient))

	authed := r.Group("/v1", auth.SessionAuth(cfg.JWTSigningKey, cfg.JWTIssuer))
	h.Register(r, authed)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}

// healthzHandler reports readiness. Each dependency is checked only when the
// configured backends actually use it: Redis when notifications go through it,
// Postgres when it is the store.
func healthzHandler(cfg config.App, db *store.DB, redisClient *store.Redis) gin.HandlerFunc {
	return func(c *gin.Context) {
		redisHealthy := cfg.NotifyBackend == "memory" || redisClient.Healthy(c.Request.Context())
		dbHealthy := cfg.StoreBackend == "memory" || db != nil
		status := http.StatusOK
		if !redisHealthy || !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "redis": redisHealthy, "db": dbHealthy})
	}
}

// CORS middleware for browser requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Security headers middleware
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
