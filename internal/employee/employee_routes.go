package employee

import (
	"go-erp/internal/domain"
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, auth gin.HandlerFunc) {
	r.GET("/employee-roster",
		auth,
		middleware.RateLimitByUser(5, 20),
		middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
		handler.GetRoster,
	)
}
