package holidayerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrInvalidDay = apperror.New(
		apperror.CodeInvalidInput,
		"holiday day is outside the selected month",
		http.StatusBadRequest,
	)
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeConflict,
		"holidays for this month were changed by another request",
		http.StatusConflict,
	)
)
