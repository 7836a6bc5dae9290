package holiday

import (
	"net/http"

	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/period"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := period.Parse(c.Query("month"), c.Query("year"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	days, err := h.service.GetDays(c.Request.Context(), c.GetString("company_id"), p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, HolidaysResponse{Month: p.Month, Year: p.Year, Days: days}, nil)
}

func (h *Handler) Set(c *gin.Context) {
	var req SetHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SetDays(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
