package holiday

import (
	"go-erp/internal/domain"
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, auth gin.HandlerFunc) {
	holidays := r.Group("/holidays")
	holidays.Use(auth)
	{
		holidays.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionRead), h.Get)
		holidays.PUT("", middleware.RBACAuthorize(rbacService, domain.ResourceHoliday, domain.ActionWrite), h.Set)
	}
}
