package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// AttendanceRecord is one check-in session. Employees are identified by email.
type AttendanceRecord struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index;uniqueIndex:uq_attendance_open_session,where:status = 'open'"`
	EmployeeID     string     `gorm:"column:employee_id;type:varchar(160);not null;index;uniqueIndex:uq_attendance_open_session,where:status = 'open'"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index;uniqueIndex:uq_attendance_open_session,where:status = 'open'"`
	CheckIn        time.Time  `gorm:"column:check_in;type:timestamptz;not null"`
	CheckOut       *time.Time `gorm:"column:check_out;type:timestamptz"`
	Duration       *string    `gorm:"column:duration;type:varchar(20)"`
	Hours          *float64   `gorm:"column:hours;type:numeric(6,2)"`
	Status         string     `gorm:"column:status;type:varchar(10);not null;default:open"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
