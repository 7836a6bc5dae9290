// Package upstream reads the payroll inputs from a remote HR service instead of the local modules.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-erp/internal/payroll"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/period"

	"go.uber.org/zap"
)

const (
	rosterPath     = "/employee-roster"
	attendancePath = "/attendance-summary"
	loanPath       = "/loan-ledger"

	maxBodyBytes = 8 << 20
)

type Options struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	HTTPClient   *http.Client
}

// Client implements payroll.RosterSource, payroll.AttendanceSource and payroll.LoanSource.
type Client struct {
	baseURL    string
	http       *http.Client
	maxRetries int
	backoff    time.Duration
	logger     *zap.Logger
}

var (
	_ payroll.RosterSource     = (*Client)(nil)
	_ payroll.AttendanceSource = (*Client)(nil)
	_ payroll.LoanSource       = (*Client)(nil)
)

func NewClient(opts Options, logger ...*zap.Logger) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, ErrNotConfigured
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("upstream: invalid base url: %w", err)
	}

	l := zap.L().Named("upstream.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upstream.client")
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	retries := opts.MaxRetries
	if retries < 0 {
		retries = 0
	}

	return &Client{
		baseURL:    opts.BaseURL,
		http:       hc,
		maxRetries: retries,
		backoff:    opts.RetryBackoff,
		logger:     l,
	}, nil
}

func (c *Client) Roster(ctx context.Context, companyID string) ([]payroll.RosterEntry, error) {
	rows, err := c.fetch(ctx, rosterPath, companyID, nil)
	if err != nil {
		return nil, err
	}

	out := make([]payroll.RosterEntry, 0, len(rows))
	for _, r := range rows {
		id := r.str(employeeKeys)
		if id == "" {
			continue
		}
		entry := payroll.RosterEntry{
			EmployeeID: id,
			Name:       r.str(nameKeys),
			Category:   r.str(categoryKeys),
		}
		if v, ok := r.num(salaryKeys); ok {
			entry.Salary = &v
		}
		out = append(out, entry)
	}
	return out, nil
}

func (c *Client) Absences(ctx context.Context, companyID string, p period.Period) ([]payroll.AbsenceEntry, error) {
	q := url.Values{}
	q.Set("month", strconv.Itoa(p.Month))
	q.Set("year", strconv.Itoa(p.Year))

	rows, err := c.fetch(ctx, attendancePath, companyID, q)
	if err != nil {
		return nil, err
	}

	out := make([]payroll.AbsenceEntry, 0, len(rows))
	for _, r := range rows {
		id := r.str(employeeKeys)
		if id == "" {
			continue
		}
		present, _ := r.num(presentKeys)
		absent, _ := r.num(absentKeys)
		out = append(out, payroll.AbsenceEntry{EmployeeID: id, Present: present, Absent: absent})
	}
	return out, nil
}

func (c *Client) Loans(ctx context.Context, companyID string) ([]payroll.LoanEntry, error) {
	rows, err := c.fetch(ctx, loanPath, companyID, nil)
	if err != nil {
		return nil, err
	}

	out := make([]payroll.LoanEntry, 0, len(rows))
	for _, r := range rows {
		id := r.str(employeeKeys)
		if id == "" {
			continue
		}
		amount, _ := r.num(amountKeys)
		out = append(out, payroll.LoanEntry{EmployeeID: id, Amount: amount})
	}
	return out, nil
}

// fetch retries transport errors and 5xx answers, waiting backoff*attempt between tries.
func (c *Client) fetch(ctx context.Context, path, companyID string, query url.Values) ([]record, error) {
	log := contextutil.GetLogger(ctx, c.logger)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff * time.Duration(attempt)
			log.Warn("retrying upstream request",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait),
				zap.Error(lastErr),
			)
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
		}

		body, err := c.do(ctx, path, companyID, query)
		if err == nil {
			return decodeRecords(body)
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Retryable() {
			return nil, err
		}
	}

	return nil, fmt.Errorf("upstream: %s failed after %d attempts: %w", path, c.maxRetries+1, lastErr)
}

func (c *Client) do(ctx context.Context, path, companyID string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("company_id", companyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Company-ID", companyID)
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}
	if token := contextutil.GetAuthToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode}
	}
	return body, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
