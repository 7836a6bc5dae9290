package loan

import (
	"go-erp/internal/domain"
	"go-erp/internal/middleware"
	"go-erp/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, auth gin.HandlerFunc) {
	r.GET("/loan-ledger",
		auth,
		middleware.RBACAuthorize(rbacService, domain.ResourceLoan, domain.ActionRead),
		handler.GetLedger,
	)
}
