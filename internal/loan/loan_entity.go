package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanBalance is the instalment due this cycle for one employee loan. An employee may hold several.
type LoanBalance struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID  uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID string          `gorm:"column:employee_id;type:varchar(160);not null;index"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(14,2);not null"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (LoanBalance) TableName() string {
	return "loan_balances"
}
