package events

import "time"

const (
	PayrollReportSavedTopic = "erp.payroll.report.saved.v1"
	PayrollReportSavedType  = "payroll_report_saved"
)

type PayrollReportSavedEvent struct {
	EventType   string    `json:"event_type"`
	ReportID    string    `json:"report_id"`
	CompanyID   string    `json:"company_id"`
	Category    string    `json:"category"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	RecordCount int       `json:"record_count"`
	TotalNet    float64   `json:"total_net"`
	SavedBy     string    `json:"saved_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
