package employee

import (
	"context"

	"go-erp/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindRoster(ctx context.Context, companyID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindRoster(ctx context.Context, companyID string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("email <> ''").
		Order("email ASC").
		Find(&rows).Error
	return rows, err
}
