package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dolapo001/SPAS/internal/api/routes"
	"github.com/Dolapo001/SPAS/internal/config"
	"github.com/Dolapo001/SPAS/internal/database"
	"github.com/Dolapo001/SPAS/internal/logger"
	"github.com/Dolapo001/SPAS/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	_ "github.com/Dolapo001/SPAS/docs" // registers the swagger document
)

const shutdownGrace = 60 * time.Second

//	@title			Project Allocation API
//	@version		1.0
//	@description	Partitions a department's unassigned students into supervised project groups, records each run, exports rosters as CSV and emails group members.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFile)
	metrics.Init()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.SMTPHost == "" {
		logrus.Warn("SMTP_HOST is empty, notification emails are logged instead of sent")
	}

	router, err := routes.SetupRoutes(db, cfg, routes.NewDialer(cfg))
	if err != nil {
		return fmt.Errorf("set up routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutting down server")
		// in-flight runs may still be sending notifications
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
