package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-erp/internal/attendance"
	attendanceerrors "go-erp/internal/attendance/errors"
	"go-erp/internal/shared/period"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	checkInFn  func(ctx context.Context, companyID, employeeID string) (attendance.AttendanceResponse, error)
	checkOutFn func(ctx context.Context, companyID, employeeID string) (attendance.AttendanceResponse, error)
	listFn     func(ctx context.Context, companyID string, p period.Period) ([]attendance.AttendanceResponse, error)
	summaryFn  func(ctx context.Context, companyID string, p period.Period) ([]attendance.MonthlySummary, error)
}

func (f *fakeService) CheckIn(ctx context.Context, companyID, employeeID string) (attendance.AttendanceResponse, error) {
	return f.checkInFn(ctx, companyID, employeeID)
}
func (f *fakeService) CheckOut(ctx context.Context, companyID, employeeID string) (attendance.AttendanceResponse, error) {
	return f.checkOutFn(ctx, companyID, employeeID)
}
func (f *fakeService) List(ctx context.Context, companyID string, p period.Period) ([]attendance.AttendanceResponse, error) {
	return f.listFn(ctx, companyID, p)
}
func (f *fakeService) MonthlySummary(ctx context.Context, companyID string, p period.Period) ([]attendance.MonthlySummary, error) {
	return f.summaryFn(ctx, companyID, p)
}

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	c.Set("company_id", "company-1")
	c.Set("employee_id", "a@x.io")
	return c, w
}

func TestHandler_CheckIn(t *testing.T) {
	svc := &fakeService{
		checkInFn: func(_ context.Context, cid, eid string) (attendance.AttendanceResponse, error) {
			assert.Equal(t, "company-1", cid)
			assert.Equal(t, "a@x.io", eid)
			return attendance.AttendanceResponse{ID: "att-1", EmployeeID: eid, Status: attendance.StatusOpen}, nil
		},
	}
	c, w := newTestContext(http.MethodPost, "/attendances/check-in")

	attendance.NewHandler(svc).CheckIn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"open"`)
}

func TestHandler_CheckOut_NoSession(t *testing.T) {
	svc := &fakeService{
		checkOutFn: func(context.Context, string, string) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrNoOpenSession
		},
	}
	c, w := newTestContext(http.MethodPost, "/attendances/check-out")

	attendance.NewHandler(svc).CheckOut(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INVALID_STATE"`)
}

func TestHandler_List(t *testing.T) {
	svc := &fakeService{
		listFn: func(_ context.Context, _ string, p period.Period) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, period.New(3, 2024), p)
			return []attendance.AttendanceResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
		},
	}

	t.Run("paginates", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/attendances?month=3&year=2024&page=2&page_size=2")

		attendance.NewHandler(svc).List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"3"`)
		assert.NotContains(t, w.Body.String(), `"id":"1"`)
		assert.Contains(t, w.Body.String(), `"total":3`)
	})

	t.Run("requires a period", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/attendances")

		attendance.NewHandler(svc).List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Summary(t *testing.T) {
	svc := &fakeService{
		summaryFn: func(context.Context, string, period.Period) ([]attendance.MonthlySummary, error) {
			return []attendance.MonthlySummary{{EmployeeID: "a@x.io", Present: 29.5, Absent: 1.5, TotalDays: 31}}, nil
		},
	}
	c, w := newTestContext(http.MethodGet, "/attendance-summary?month=3&year=2024")

	attendance.NewHandler(svc).Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":[{"employee_id":"a@x.io","present":29.5,"absent":1.5,"total_days":31}]}`, w.Body.String())
}
