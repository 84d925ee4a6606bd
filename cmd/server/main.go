package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"meeting-scheduler-api/internal/config"
	"meeting-scheduler-api/internal/handler"
	"meeting-scheduler-api/internal/mailer"
	"meeting-scheduler-api/internal/middleware"
	"meeting-scheduler-api/internal/store"
)

func newLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if strings.EqualFold(env, "production") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Env)

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Error("db ping failed", "error", err)
		os.Exit(1)
	}
	log.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		log.Warn("migration file not found, skipping", "error", err)
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Warn("migration warning", "error", err)
	} else {
		log.Info("migration applied")
	}

	st := store.New(pool)

	ml, err := mailer.New(cfg.Mail, log)
	if err != nil {
		log.Error("mailer init failed", "error", err)
		os.Exit(1)
	}
	if cfg.Mail.Configured() {
		log.Info("email service configured", "host", cfg.Mail.Host)
	} else {
		log.Warn("email service not configured, dispatch attempts will fail")
	}

	h := handler.New(st, ml, cfg.JWTSecret, cfg.Production(), log)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	rl := middleware.NewRateLimiter(5, 10)
	handler.Routes(r, h, cfg.JWTSecret, rl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server", "error", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")
	srv.Shutdown(context.Background())
}
