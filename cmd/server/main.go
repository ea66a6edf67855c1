package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/Mahesh-gd/google-flights-demo/internal/cache"
	"github.com/Mahesh-gd/google-flights-demo/internal/handler"
	"github.com/Mahesh-gd/google-flights-demo/internal/providers"
	"github.com/Mahesh-gd/google-flights-demo/internal/ratelimit"
	"github.com/Mahesh-gd/google-flights-demo/internal/search"
	"github.com/Mahesh-gd/google-flights-demo/internal/session"
)

type Config struct {
	Port            string
	CacheEnabled    bool
	RedisHost       string
	RedisPort       string
	RedisTTL        time.Duration
	SkyAPIKey       string
	SkyAPIHost      string
	SkyBaseURL      string
	ProviderTimeout time.Duration
}

func main() {
	cfg := loadConfig()
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	providerCfg := providers.DefaultSkyScannerConfig()
	providerCfg.APIKey = cfg.SkyAPIKey
	if cfg.SkyAPIHost != "" {
		providerCfg.APIHost = cfg.SkyAPIHost
	}
	if cfg.SkyBaseURL != "" {
		providerCfg.BaseURL = cfg.SkyBaseURL
	}
	providerCfg.Timeout = cfg.ProviderTimeout
	provider := providers.NewSkyScannerProvider(providerCfg)

	rateLimiter := ratelimit.NewUpstreamLimiterWithDefaults()
	rateLimiter.SetHostLimit(provider.Name(), 5, 10)

	searcher := search.NewSearcher(provider, search.Config{
		RateLimiter: rateLimiter,
		Logger:      log,
	})

	var flightCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		flightCache = redisCache
		log.WithFields(logrus.Fields{
			"host": cfg.RedisHost + ":" + cfg.RedisPort,
			"ttl":  cfg.RedisTTL,
		}).Info("Redis cache enabled")
	} else {
		flightCache = cache.NewNoOpCache()
		log.Info("Cache disabled")
	}

	sessions := session.NewStore()

	searchHandler := handler.NewSearchHandler(searcher, flightCache)
	sessionHandler := handler.NewSessionHandler(sessions, searcher)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.POST("/sessions", sessionHandler.Create)
	api.GET("/sessions/:id", sessionHandler.Get)
	api.PATCH("/sessions/:id/criteria", sessionHandler.UpdateCriteria)
	api.POST("/sessions/:id/swap", sessionHandler.Swap)
	api.POST("/sessions/:id/search", sessionHandler.Search)
	api.DELETE("/sessions/:id", sessionHandler.Delete)
	e.GET("/health", handler.HealthHandler)

	log.WithField("port", cfg.Port).Info("Starting flight search server")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

func loadConfig() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", false),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisTTL:        getEnvDuration("REDIS_TTL", 5*time.Minute),
		SkyAPIKey:       getEnv("SKY_API_KEY", ""),
		SkyAPIHost:      getEnv("SKY_API_HOST", ""),
		SkyBaseURL:      getEnv("SKY_BASE_URL", ""),
		ProviderTimeout: getEnvDuration("PROVIDER_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
