package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "talent-search/docs" // Swagger docs
	"talent-search/internal/api"
	"talent-search/internal/config"
	"talent-search/internal/logger"
	"talent-search/internal/search"
	"talent-search/internal/storage"
)

// @title Talent Search API
// @version 1.0
// @description Recruitment search backend: free-text candidate queries over Postgres with weighted re-ranking

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("Connecting to database...", map[string]interface{}{
		"host": cfg.Database.Postgres.Host,
	})

	db, err := storage.NewDB(cfg.Database.Postgres.DSN())
	if err != nil {
		log.Error("db open failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	log.Info("Database connected successfully!", nil)

	var redisClient *redis.Client
	if cfg.Database.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Database.Redis.Address,
			Password: cfg.Database.Redis.Password,
			DB:       cfg.Database.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, rate limiting disabled", map[string]interface{}{"error": err.Error()})
			redisClient = nil
		}
		cancel()
	}

	svc := search.NewService(db, search.NewVocabularyExtractor(), log, cfg.Search.QueryTimeoutDuration())
	apiSrv := api.NewAPI(svc, db, cfg, log)
	limiter := api.NewRateLimiter(redisClient, cfg.Search.RateLimit.Requests, cfg.Search.RateLimit.WindowDuration(), log)
	router := api.NewRouter(apiSrv, limiter)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("server shutdown", map[string]interface{}{"error": err.Error()})
		}
		close(idleConnsClosed)
	}()

	log.Info("API server listening", map[string]interface{}{"port": cfg.Server.Port})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	<-idleConnsClosed
}
