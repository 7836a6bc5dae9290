package app

import (
	"database/sql"
	"fmt"

	"go-erp/internal/attendance"
	"go-erp/internal/config"
	"go-erp/internal/employee"
	"go-erp/internal/holiday"
	"go-erp/internal/loan"
	"go-erp/internal/messaging/kafka"
	"go-erp/internal/middleware"
	"go-erp/internal/payroll"
	"go-erp/internal/rbac"
	"go-erp/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb, logger)
	holidayService := holiday.NewService(db, holidayRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, rosterSource{employees: employeeService}, holidayService, logger)
	loanService := loan.NewService(loanRepo, logger)

	sources, err := selectSources(upstream.Options{
		BaseURL:      cfg.Upstream.BaseURL,
		Timeout:      cfg.Upstream.Timeout,
		MaxRetries:   cfg.Upstream.MaxRetries,
		RetryBackoff: cfg.Upstream.RetryBackoff,
	}, localSources(employeeService, attendanceService, loanService), logger)
	if err != nil {
		return err
	}

	carryForward, err := parseCategories(cfg.Payroll.CarryForward)
	if err != nil {
		return err
	}
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo, sources, payroll.Options{
		CarryForward: carryForward,
		Drafts:       payroll.NewRedisDraftStore(rdb, cfg.Payroll.DraftTTL),
	}, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	holidayHandler := holiday.NewHandler(holidayService)
	loanHandler := loan.NewHandler(loanService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	auth := middleware.AuthMiddleware(cfg.JWT.Secret)
	api := router.Group("/api/v1")
	api.Use(
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
	)
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, auth)
		employee.RegisterRoutes(api, employeeHandler, rbacService, auth)
		holiday.RegisterRoutes(api, holidayHandler, rbacService, auth)
		loan.RegisterRoutes(api, loanHandler, rbacService, auth)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, auth, rdb)
	}

	return nil
}

func parseCategories(raw []string) ([]payroll.Category, error) {
	out := make([]payroll.Category, 0, len(raw))
	for _, r := range raw {
		c, err := payroll.ParseCategory(r)
		if err != nil {
			return nil, fmt.Errorf("carry forward category %q: %w", r, err)
		}
		out = append(out, c)
	}
	return out, nil
}
