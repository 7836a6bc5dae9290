package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is the payroll projection of an employee. Rows are owned by the HR service
// and only read here.
type Employee struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID uuid.UUID           `gorm:"column:company_id;type:uuid;not null;index"`
	Email     string              `gorm:"column:email;type:varchar(160);not null;uniqueIndex:uq_employee_email"`
	FullName  string              `gorm:"column:full_name;type:varchar(160)"`
	Category  string              `gorm:"column:category;type:varchar(32)"`
	Salary    decimal.NullDecimal `gorm:"column:salary;type:numeric(14,2)"`
	CreatedAt time.Time           `gorm:"column:created_at"`
	UpdatedAt time.Time           `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
