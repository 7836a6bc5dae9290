package app

import (
	"go-erp/internal/attendance"
	"go-erp/internal/employee"
	"go-erp/internal/holiday"
	"go-erp/internal/loan"
	"go-erp/internal/payroll"

	"gorm.io/gorm"
)

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type VARCHAR(64) NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type VARCHAR(64) NOT NULL,
	topic VARCHAR(128) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_pending ON outbox_events (status, next_retry_at, created_at);
`

// migrate creates the tables this service owns. employees and loan_balances are
// projections filled by the HR service; they are created only so local runs work.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&attendance.AttendanceRecord{},
		&holiday.Holiday{},
		&payroll.PayrollReport{},
		&payroll.PayrollReportItem{},
		&employee.Employee{},
		&loan.LoanBalance{},
	); err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}
