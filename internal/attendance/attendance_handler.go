package attendance

import (
	"net/http"
	"strconv"

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

func (h *Handler) CheckIn(c *gin.Context) {
	resp, err := h.service.CheckIn(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	resp, err := h.service.CheckOut(c.Request.Context(), c.GetString("company_id"), c.GetString("employee_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	p, err := period.Parse(c.Query("month"), c.Query("year"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), c.GetString("company_id"), p)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Summary(c *gin.Context) {
	p, err := period.Parse(c.Query("month"), c.Query("year"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.MonthlySummary(c.Request.Context(), c.GetString("company_id"), p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
