package payrollerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll category, expected one of: ESI/PF, No ESI/PF, Casual Labour",
		http.StatusBadRequest,
	)
	ErrRecordsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"records are required, send an empty list to save a report without employees",
		http.StatusBadRequest,
	)
	ErrInvalidRecord = apperror.New(
		apperror.CodeInvalidInput,
		"every record needs an employee_id",
		http.StatusBadRequest,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeInvalidInput,
		"an employee appears more than once in the report",
		http.StatusBadRequest,
	)
	ErrStaleSelection = apperror.New(
		apperror.CodeConflict,
		"the selected period changed while the calculation was running, result discarded",
		http.StatusConflict,
	)
	ErrDraftNotFound = apperror.New(
		apperror.CodeNotFound,
		"no calculated payroll draft for this category",
		http.StatusNotFound,
	)
	ErrSaveFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"payroll report could not be saved, the calculated report is still available for retry",
		http.StatusServiceUnavailable,
	)
	ErrFetchFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"payroll report could not be loaded",
		http.StatusServiceUnavailable,
	)
)
