package employeeerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrRosterUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"employee roster is unavailable",
		http.StatusServiceUnavailable,
	)
)
