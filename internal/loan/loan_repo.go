package loan

import (
	"context"

	"go-erp/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	FindLedger(ctx context.Context, companyID string) ([]LoanBalance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindLedger(ctx context.Context, companyID string) ([]LoanBalance, error) {
	var rows []LoanBalance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("employee_id ASC").
		Find(&rows).Error
	return rows, err
}
