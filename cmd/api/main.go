package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"arena-portal-backend/config"
	"arena-portal-backend/internal/delivery/http/middleware"
	v1 "arena-portal-backend/internal/delivery/http/v1"
	"arena-portal-backend/internal/infrastructure/cache"
	"arena-portal-backend/internal/infrastructure/metrics"
	"arena-portal-backend/internal/repository"
	"arena-portal-backend/internal/usecase"
	"arena-portal-backend/pkg/logger"
	"arena-portal-backend/pkg/utils"
)

const serviceName = "order-progress"

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Order source: upstream API or ERP database
	orders, closeOrders, err := repository.NewOrderRepository(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.OrderSource).Msg("Failed to initialize order source")
	}
	defer closeOrders()

	// Initialize Cache (In-Memory)
	// Orders expire quickly so status changes show up; cleanup every 5m
	memCache := cache.NewMemoryCache(cfg.CacheOrderTTL, 5*time.Minute)

	// Metrics live on a private registry so tests and tools can build their own
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	progressMetrics := metrics.NewProgressMetrics(reg)
	httpMetrics := middleware.NewHTTPMetrics(reg, "/health", "/api/v1/health", "/metrics")

	// Tracking Module
	trackingUC := usecase.NewTrackingUsecase(orders, memCache, progressMetrics, cfg.CacheOrderTTL, cfg.UpstreamTimeout)

	routes := v1.Routes{
		Tracking: v1.NewTrackingHandler(trackingUC),
		Config:   v1.NewConfigHandler(memCache, cfg.CacheEnumsTTL),
		Health:   v1.NewHealthHandler(memCache, cfg.OrderSource),
	}
	if cfg.MetricsToken != "" {
		routes.Metrics = middleware.MetricsGuard(cfg.MetricsToken)(
			promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		)
	} else {
		log.Warn().Msg("METRICS_TOKEN not set, /metrics disabled")
	}

	if err := middleware.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatal().Err(err).Msg("Invalid TRUSTED_PROXIES")
	}

	mux := http.NewServeMux()
	routes.Register(mux)

	// Initialize Rate Limiter with lifecycle management
	// cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS, Metrics, Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg.AllowedOrigin)(mux)
	handler = httpMetrics.Middleware()(handler)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, cfg.OrderSource, cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop(serviceName)
}
