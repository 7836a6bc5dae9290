package loanerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrLedgerUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"loan ledger is unavailable",
		http.StatusServiceUnavailable,
	)
)
