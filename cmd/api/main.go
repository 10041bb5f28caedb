package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/config"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/db"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/logger"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/menu"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/router"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "menu-api"})
	defer func() { _ = log.Sync() }()

	cfg.LogConfiguration(log)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── SOURCE ─────────────────────────
	source, closeSource, err := buildSource(ctx, cfg, log)
	if err != nil {
		log.Fatal("menu source init failed", zap.String("source", cfg.MenuSource), zap.Error(err))
	}
	defer closeSource()

	// ───────────────────────── SERVICE ─────────────────────────
	var rules []menu.CategoryRule
	if cfg.InferCategories {
		rules = menu.DefaultCategoryRules
	}
	menuService := menu.NewService(source, rules, log)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.LoadTimeout)
	if err := menuService.Load(loadCtx); err != nil {
		log.Warn("serving an empty menu", zap.Error(err))
	}
	cancel()

	// ───────────────────────── HTTP ─────────────────────────
	menuHandler := menu.NewHandler(menuService, menu.ParseMode(cfg.DefaultMode))
	r := router.NewRouter(menuHandler, log, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildSource connects the configured menu backend. The returned func
// releases any connection it opened.
func buildSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (menu.Source, func(), error) {
	noop := func() {}

	switch cfg.MenuSource {
	case config.SourceFile:
		return menu.NewFileSource(cfg.MenuFile), noop, nil

	case config.SourcePostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, noop, err
		}
		return menu.NewPostgresSource(pool), pool.Close, nil

	case config.SourceMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.LoadTimeout, log)
		if err != nil {
			return nil, noop, err
		}
		disconnect := func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Warn("mongo disconnect failed", zap.Error(err))
			}
		}
		return menu.NewMongoSource(client, cfg.MongoDatabase, cfg.MongoCollection), disconnect, nil

	case config.SourceR2:
		client, err := storage.NewR2Client(ctx, storage.R2Config{
			Endpoint:  cfg.R2Endpoint,
			AccessKey: cfg.R2AccessKey,
			SecretKey: cfg.R2SecretKey,
			Bucket:    cfg.R2BucketName,
		})
		if err != nil {
			return nil, noop, err
		}
		return menu.NewR2Source(client, cfg.R2MenuKey), noop, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", menu.ErrUnknownSource, cfg.MenuSource)
	}
}
