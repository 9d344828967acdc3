package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zeetech/zeestore-backend/internal/auth"
	"github.com/zeetech/zeestore-backend/internal/config"
	"github.com/zeetech/zeestore-backend/internal/database"
	"github.com/zeetech/zeestore-backend/internal/handlers"
	"github.com/zeetech/zeestore-backend/internal/logger"
	"github.com/zeetech/zeestore-backend/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	db := client.Database(cfg.DBName)
	log.Info("MongoDB connected", zap.String("db", db.Name()))

	if err := database.EnsureUserIndexes(ctx, db, log); err != nil {
		log.Fatal("user index setup failed", zap.Error(err))
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	users := database.NewUserStore(db)

	if cfg.Admin.Enabled() {
		if err := bootstrapAdmin(ctx, users, hasher, cfg.Admin); err != nil {
			log.Error("admin bootstrap failed", zap.Error(err))
		} else {
			log.Info("admin account ensured", zap.String("email", cfg.Admin.Email))
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.GinzapWithConfig(log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Context:    middleware.RequestIDFields,
	}))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	handlers.RegisterRoutes(r, handlers.Deps{
		Users:     users,
		Products:  database.NewProductStore(db),
		Addresses: database.NewAddressStore(db),
		Hasher:    hasher,
		Ping:      database.HealthCheck(db),
		Runtime:   handlers.Runtime{Log: log, Timeout: cfg.RequestTimeout},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func bootstrapAdmin(ctx context.Context, users *database.UserStore, hasher *auth.Hasher, admin config.Admin) error {
	digest, err := hasher.Hash(admin.Password)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = users.EnsureAdmin(ctx, strings.ToLower(strings.TrimSpace(admin.Email)), digest)
	return err
}
