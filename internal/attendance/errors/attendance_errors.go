package attendanceerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee email is missing from the session",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"an attendance session is already open for today",
		http.StatusConflict,
	)
	ErrNoOpenSession = apperror.New(
		apperror.CodeInvalidState,
		"no open attendance session to check out from",
		http.StatusConflict,
	)
)
