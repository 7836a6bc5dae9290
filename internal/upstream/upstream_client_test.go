package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go-erp/internal/payroll"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/period"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, retries int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL, Timeout: time.Second, MaxRetries: retries, RetryBackoff: time.Millisecond})
	require.NoError(t, err)
	return c
}

func TestClient_Roster(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, rosterPath, r.URL.Path)
		assert.Equal(t, "company-1", r.URL.Query().Get("company_id"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"data":[
			{"employeeId":"anita@x.io","name":"Anita","category":"ESI/PF","salary":30000},
			{"EmployeeID":"bala@x.io","full_name":"Bala","Category":"Casual Labour","basic_salary":"12000.50"},
			{"email":"chandra@x.io","Name":"Chandra","category":"No ESI/PF","salary":null},
			{"name":"ghost"}
		]}`))
	}, 0)

	ctx := contextutil.WithAuthToken(context.Background(), "tok")
	got, err := c.Roster(ctx, "company-1")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "anita@x.io", got[0].EmployeeID)
	require.NotNil(t, got[0].Salary)
	assert.Equal(t, 30000.0, *got[0].Salary)
	assert.Equal(t, payroll.RosterEntry{EmployeeID: "bala@x.io", Name: "Bala", Category: "Casual Labour", Salary: got[1].Salary}, got[1])
	assert.Equal(t, 12000.5, *got[1].Salary)
	assert.Nil(t, got[2].Salary)
	assert.Equal(t, "Chandra", got[2].Name)
}

func TestClient_Absences(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, attendancePath, r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("month"))
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		_, _ = w.Write([]byte(`[
			{"employee_id":"anita@x.io","present":28,"absent":3},
			{"email":"bala@x.io","Present":"30.5","leave":0.5},
			{"employeeId":"chandra@x.io"}
		]`))
	}, 0)

	got, err := c.Absences(context.Background(), "company-1", period.New(1, 2024))

	require.NoError(t, err)
	assert.Equal(t, []payroll.AbsenceEntry{
		{EmployeeID: "anita@x.io", Present: 28, Absent: 3},
		{EmployeeID: "bala@x.io", Present: 30.5, Absent: 0.5},
		{EmployeeID: "chandra@x.io"},
	}, got)
}

func TestClient_Loans(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"employee_id":"anita@x.io","Amount":500},{"email":"bala@x.io","loan":"250"}]}`))
	}, 0)

	got, err := c.Loans(context.Background(), "company-1")

	require.NoError(t, err)
	assert.Equal(t, []payroll.LoanEntry{{EmployeeID: "anita@x.io", Amount: 500}, {EmployeeID: "bala@x.io", Amount: 250}}, got)
}

func TestClient_Retry(t *testing.T) {
	t.Run("5xx is retried", func(t *testing.T) {
		var calls int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}, 2)

		got, err := c.Loans(context.Background(), "company-1")

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		var calls int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}, 1)

		_, err := c.Loans(context.Background(), "company-1")

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("4xx is not retried", func(t *testing.T) {
		var calls int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusForbidden)
		}, 3)

		_, err := c.Roster(context.Background(), "company-1")

		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("transport error is retried", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		c, err := NewClient(Options{BaseURL: url, Timeout: time.Second, MaxRetries: 1, RetryBackoff: time.Millisecond})
		require.NoError(t, err)

		_, err = c.Loans(context.Background(), "company-1")

		assert.ErrorContains(t, err, "failed after 2 attempts")
	})
}

func TestClient_EnvelopeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error":{"code":"INTERNAL_ERROR"}}`))
	}, 0)

	_, err := c.Roster(context.Background(), "company-1")

	assert.ErrorIs(t, err, ErrRejected)
}

func TestDecodeRecords(t *testing.T) {
	rows, err := decodeRecords([]byte(`{"ok":true,"data":null}`))
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = decodeRecords([]byte(`"hello"`))
	assert.ErrorIs(t, err, ErrShape)

	_, err = decodeRecords([]byte(`{"ok":true,"data":{"employee_id":"a"}}`))
	assert.ErrorIs(t, err, ErrShape)

	_, err = decodeRecords(nil)
	assert.ErrorIs(t, err, ErrShape)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Options{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
