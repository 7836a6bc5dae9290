package main

import (
	"time"

	"go-erp/internal/app"
	"go-erp/internal/bootstrap"
	"go-erp/internal/config"
	"go-erp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(cfg, r, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.App.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	); err != nil {
		logger.Error("http server failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
