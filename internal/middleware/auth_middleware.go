package middleware

import (
	"errors"
	"fmt"
	"strings"

	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware validates HS256 tokens issued by the login service.
// Tokens come from the Authorization header or the access_token cookie.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.AbortWithError(c, ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = ErrTokenExpired
			}
			response.AbortWithError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortWithError(c, ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		companyID, _ := claims["company_id"].(string)
		if userID == "" || companyID == "" {
			response.AbortWithError(c, ErrInvalidToken.WithDetails("user_id and company_id claims are required"))
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		// attendance is keyed by email, so the email doubles as employee id
		employeeID, _ := claims["employee_id"].(string)
		if employeeID == "" {
			employeeID = email
		}

		c.Set("user_id", userID)
		c.Set("company_id", companyID)
		c.Set("email", email)
		c.Set("employee_id", employeeID)
		c.Set("role", strings.ToUpper(role))

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userID)
		ctx = contextutil.WithAuthToken(ctx, tokenString)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", userID), zap.String("company_id", companyID))
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
