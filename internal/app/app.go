package app

import (
	"database/sql"
	"net/http"

	"go-erp/internal/config"
	"go-erp/internal/middleware"
	"go-erp/internal/shared/connection"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infra struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	redis  *redis.Client
}

func (i *infra) Close() {
	if i.redis != nil {
		_ = i.redis.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresOptions{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}, cfg.Database.MaxRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects the stores, migrates owned tables and registers every module on router.
// The returned func releases the connections.
func BuildApp(cfg *config.Config, router *gin.Engine, logger *zap.Logger) (func(), error) {
	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	in := &infra{gormDB: gormDB, sqlDB: sqlDB}

	if err := migrate(gormDB); err != nil {
		in.Close()
		return nil, err
	}

	in.redis, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		in.Close()
		return nil, err
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
	)
	router.GET("/healthz", func(c *gin.Context) { response.Success(c, http.StatusOK, gin.H{"status": "up"}, nil) })

	if err := registerModules(router, cfg, in.sqlDB, in.gormDB, in.redis, logger); err != nil {
		in.Close()
		return nil, err
	}

	logger.Info("modules registered", zap.String("env", cfg.App.Env))
	return in.Close, nil
}
