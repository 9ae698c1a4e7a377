package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-service/internal/application/services"
	"task-service/internal/config"
	"task-service/internal/db"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/events"
	"task-service/internal/interface/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	stores, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer stores.Close(context.Background())

	redisService := infrastructure.NewRedisService(ctx, infrastructure.RedisOptions{
		URL:      cfg.RedisURL,
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisService.Close()

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NatsURL != "" {
		natsPublisher, err := events.ConnectNats(cfg.NatsURL)
		if err != nil {
			log.Printf("events disabled: %v", err)
		} else {
			publisher = natsPublisher
		}
	}
	defer publisher.Close()

	loginLimiter := infrastructure.NewRateLimiter(cfg.LoginRateWindow, cfg.LoginRateMaxTries)
	defer loginLimiter.Stop()

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)

	userService := services.NewUserService(stores.Users, stores.Tasks, redisService, publisher, cfg.AdminInviteToken)
	authService := services.NewAuthService(stores.Users, userService, jwtService, redisService, cfg.ProfileCacheTTL, loginLimiter)
	taskService := services.NewTaskService(stores.Tasks, stores.Users, publisher)

	srv := rest.New(rest.Options{
		Users:          userService,
		Auth:           authService,
		Tasks:          taskService,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		StaticDir:      cfg.StaticDir,
		TrustedProxies: cfg.TrustedProxies,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped unexpectedly: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("failed to shut down server: %v", err)
	}
	log.Println("server stopped")
}
