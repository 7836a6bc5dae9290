package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-erp/internal/middleware"
	"go-erp/internal/payroll"
	payrollerrors "go-erp/internal/payroll/errors"
	"go-erp/internal/shared/period"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	calculateFn func(ctx context.Context, companyID, actorID string, req payroll.CalculateRequest) (payroll.CalculateResponse, error)
	getDraftFn  func(ctx context.Context, companyID, actorID, category string) (payroll.CalculateResponse, error)
	saveFn      func(ctx context.Context, companyID, actorID string, req payroll.SaveReportRequest) (payroll.SaveReportResponse, error)
	fetchFn     func(ctx context.Context, companyID, category string, p period.Period) ([]payroll.PayrollLineItem, error)
}

func (f *fakeService) Calculate(ctx context.Context, companyID, actorID string, req payroll.CalculateRequest) (payroll.CalculateResponse, error) {
	return f.calculateFn(ctx, companyID, actorID, req)
}
func (f *fakeService) GetDraft(ctx context.Context, companyID, actorID, category string) (payroll.CalculateResponse, error) {
	return f.getDraftFn(ctx, companyID, actorID, category)
}
func (f *fakeService) Save(ctx context.Context, companyID, actorID string, req payroll.SaveReportRequest) (payroll.SaveReportResponse, error) {
	return f.saveFn(ctx, companyID, actorID, req)
}
func (f *fakeService) Fetch(ctx context.Context, companyID, category string, p period.Period) ([]payroll.PayrollLineItem, error) {
	return f.fetchFn(ctx, companyID, category, p)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	c.Set("company_id", "company-1")
	c.Set("user_id", "user-1")
	c.Set("user_id_validated", "user-1")
	return c, w
}

func TestHandler_Calculate(t *testing.T) {
	svc := &fakeService{
		calculateFn: func(_ context.Context, cid, actor string, req payroll.CalculateRequest) (payroll.CalculateResponse, error) {
			assert.Equal(t, "company-1", cid)
			assert.Equal(t, "user-1", actor)
			assert.Equal(t, "ESI/PF", req.Category)
			assert.Equal(t, 3, req.Month)
			require.Len(t, req.Inputs, 1)
			assert.Equal(t, 2.0, req.Inputs[0].Grace)
			return payroll.CalculateResponse{Category: req.Category, Month: 3, Year: 2024, Records: []payroll.PayrollLineItem{}, Warnings: []string{}}, nil
		},
	}
	h := payroll.NewHandler(svc)

	c, w := newTestContext(http.MethodPost, "/payroll-report/calculate",
		`{"category":"ESI/PF","month":3,"year":2024,"inputs":[{"employee_id":"a@x.io","grace":2}]}`)
	h.Calculate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), `"records":[]`)
}

func TestHandler_Calculate_Errors(t *testing.T) {
	t.Run("bind failure", func(t *testing.T) {
		h := payroll.NewHandler(&fakeService{})
		c, w := newTestContext(http.MethodPost, "/payroll-report/calculate", `{"month":3,"year":2024}`)
		h.Calculate(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})

	t.Run("stale selection is a conflict", func(t *testing.T) {
		h := payroll.NewHandler(&fakeService{
			calculateFn: func(context.Context, string, string, payroll.CalculateRequest) (payroll.CalculateResponse, error) {
				return payroll.CalculateResponse{}, payrollerrors.ErrStaleSelection
			},
		})
		c, w := newTestContext(http.MethodPost, "/payroll-report/calculate", `{"category":"ESI/PF","month":3,"year":2024}`)
		h.Calculate(c)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestHandler_Fetch(t *testing.T) {
	t.Run("empty report is an empty list", func(t *testing.T) {
		h := payroll.NewHandler(&fakeService{
			fetchFn: func(_ context.Context, _ string, category string, p period.Period) ([]payroll.PayrollLineItem, error) {
				assert.Equal(t, "No ESI/PF", category)
				assert.Equal(t, period.New(5, 2024), p)
				return []payroll.PayrollLineItem{}, nil
			},
		})
		c, w := newTestContext(http.MethodGet, "/payroll-report?category=No+ESI%2FPF&month=5&year=2024", "")
		h.Fetch(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":[]}`, w.Body.String())
	})

	t.Run("missing period is rejected", func(t *testing.T) {
		h := payroll.NewHandler(&fakeService{
			fetchFn: func(context.Context, string, string, period.Period) ([]payroll.PayrollLineItem, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		})
		c, w := newTestContext(http.MethodGet, "/payroll-report?category=esi-pf", "")
		h.Fetch(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "month and year must be selected")
	})
}

func TestHandler_GetDraft_NotFound(t *testing.T) {
	h := payroll.NewHandler(&fakeService{
		getDraftFn: func(_ context.Context, _, _, category string) (payroll.CalculateResponse, error) {
			assert.Equal(t, "esi-pf", category)
			return payroll.CalculateResponse{}, payrollerrors.ErrDraftNotFound
		},
	})
	c, w := newTestContext(http.MethodGet, "/payroll-report/draft?category=esi-pf", "")
	h.GetDraft(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Save(t *testing.T) {
	t.Run("stores the response for idempotent replay", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		resp := payroll.SaveReportResponse{Success: true, Message: "ESI/PF payroll report for 2024-03 saved"}
		payload, _ := json.Marshal(resp)

		mock.ExpectSet("idemp:k", payload, 24*time.Hour).SetVal("OK")
		mock.ExpectDel("idemp:k:lock").SetVal(1)

		h := payroll.NewHandlerWithRedis(&fakeService{
			saveFn: func(_ context.Context, _, _ string, req payroll.SaveReportRequest) (payroll.SaveReportResponse, error) {
				assert.Len(t, req.Records, 1)
				return resp, nil
			},
		}, rdb)

		c, w := newTestContext(http.MethodPost, "/payroll-report",
			`{"category":"ESI/PF","month":3,"year":2024,"records":[{"employee_id":"a@x.io","category":"ESI/PF","net_salary":100}]}`)
		c.Set(middleware.IdempotencyCacheKey, "idemp:k")
		c.Set(middleware.IdempotencyLockKey, "idemp:k:lock")
		h.Save(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("persistence failure", func(t *testing.T) {
		h := payroll.NewHandler(&fakeService{
			saveFn: func(context.Context, string, string, payroll.SaveReportRequest) (payroll.SaveReportResponse, error) {
				return payroll.SaveReportResponse{}, payrollerrors.ErrSaveFailed
			},
		})
		c, w := newTestContext(http.MethodPost, "/payroll-report", `{"category":"ESI/PF","month":3,"year":2024,"records":[]}`)
		h.Save(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "still available for retry")
	})
}
