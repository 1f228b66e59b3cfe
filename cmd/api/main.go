package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mindcare/internal/bootstrap"
	"mindcare/internal/config"
	apihttp "mindcare/internal/http"
	"mindcare/internal/llm"
	"mindcare/internal/rag"
	"mindcare/internal/service"
	"mindcare/internal/stress"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	c := bootstrap.LoadCorpus(ctx, cfg, logger)
	entries := c.Entries()
	engine := rag.NewEngine(entries)
	estimator := stress.NewEstimator(stress.BuildTiers(entries))

	var llmClient llm.LLMClient
	if cfg.LLMEnabled() {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Warn("llm api key not configured, using corpus responses only")
	}

	var (
		limiter      service.ChatRateLimiter
		sessionStore service.SessionStore
		history      service.HistoryStore
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory stores", zap.Error(err))
		} else {
			limiter = service.NewRedisChatRateLimiter(redisClient, cfg.ChatRateWindow(), cfg.ChatRateLimit)
			sessionStore = service.NewRedisSessionStore(redisClient)
			history = service.NewRedisHistoryStore(redisClient, 0, cfg.HistoryTTL())
		}
		cancel()
	}
	if history == nil {
		history = service.NewMemoryHistoryStore(0)
	}

	jwtSvc := service.NewJWTServiceWithStore(cfg.JWTSecret, cfg.SessionTTL(), sessionStore)
	composer := service.NewResponseComposer(llmClient, logger, nil)
	chatSvc := service.NewChatService(engine, estimator, composer, history, logger, cfg.MatchTopK)
	monitor := service.NewStressMonitor(history)

	chatHandler := apihttp.NewChatHandler(logger, jwtSvc, chatSvc, monitor, c.Len())
	router := apihttp.NewRouter(logger, jwtSvc, limiter, chatHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("corpus_entries", c.Len()),
		zap.Bool("llm_enabled", llmClient != nil),
		zap.Bool("redis_enabled", limiter != nil),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
