package middleware

import (
	"net/http"

	"go-erp/internal/domain"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can answer domain.EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		companyID := c.GetString("company_id")

		if companyID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:      role,
			CompanyID: companyID,
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.AbortWithError(c, ErrForbidden.WithDetails(gin.H{"required": resource + ":" + action}))
			return
		}
		c.Next()
	}
}
