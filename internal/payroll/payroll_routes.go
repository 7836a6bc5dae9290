package payroll

import (
	"go-erp/internal/domain"
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	reports := r.Group("/payroll-report")
	reports.Use(auth, middleware.ExtractUserID())
	{
		reports.GET("", middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead), handler.Fetch)
		reports.GET("/draft", middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionCalculate), handler.GetDraft)
		reports.POST("/calculate", middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionCalculate), handler.Calculate)
		if redisClient != nil {
			reports.POST(
				"",
				middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionWrite),
				middleware.Idempotency(redisClient),
				handler.Save,
			)
		} else {
			reports.POST("", middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionWrite), handler.Save)
		}
	}
}
