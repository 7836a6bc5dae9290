package attendance

import (
	"go-erp/internal/domain"
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, auth gin.HandlerFunc) {
	attendances := r.Group("/attendances")
	attendances.Use(auth)
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead), h.List)
		attendances.POST("/check-in", middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionSelf), h.CheckIn)
		attendances.POST("/check-out", middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionSelf), h.CheckOut)
	}

	r.GET("/attendance-summary",
		auth,
		middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead),
		h.Summary,
	)
}
