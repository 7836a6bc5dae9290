package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"go-erp/internal/middleware"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/period"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("user_id_validated")
	if actorID == "" {
		actorID = c.GetString("user_id")
	}
	return actorID
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDraft(c *gin.Context) {
	resp, err := h.service.GetDraft(c.Request.Context(), c.GetString("company_id"), getActorID(c), c.Query("category"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Fetch(c *gin.Context) {
	p, err := period.Parse(c.Query("month"), c.Query("year"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	items, err := h.service.Fetch(c.Request.Context(), c.GetString("company_id"), c.Query("category"), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Save(c *gin.Context) {
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)

	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Save(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyTTL).Err()
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}
