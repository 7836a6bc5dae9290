package middleware

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken = apperror.New("INVALID_TOKEN", "Invalid or malformed token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
	ErrForbidden    = apperror.New(apperror.CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrRateLimited  = apperror.New(apperror.CodeTooManyRequests, "Too many requests, slow down", http.StatusTooManyRequests)
	ErrInProgress   = apperror.New("PROCESSING", "A request with this Idempotency-Key is still being processed", http.StatusConflict)
)
