package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/products"
	"storefront/internal/server"
	"storefront/internal/shutdown"
	"storefront/internal/util"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(logger.Options{
		Service: "storefront",
		Prod:    cfg.IsProd(),
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})
	defer func() { _ = log.Sync() }()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		var err error
		secret, err = util.RandomToken(32)
		if err != nil {
			log.Fatal("generate jwt secret", zap.Error(err))
		}
		log.Warn("JWT_SECRET not set, using a random per-process secret")
	}
	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer: cfg.JWTIssuer,
		Secret: secret,
	})

	// Stores live for the life of the process
	userRepo := auth.NewUserRepo()
	prodRepo := products.NewRepo(products.Seed(time.Now().UTC()))
	cartRepo := cart.NewRepo(prodRepo)

	r := server.New(server.Deps{
		Log:         log,
		JWT:         jwtMgr,
		Users:       userRepo,
		Products:    prodRepo,
		Carts:       cartRepo,
		CORSOrigins: cfg.CORSOrigins,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil {
			log.Fatal("http server error", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", zap.Error(err))
	}
	log.Info("bye")
}
