package holiday

import (
	"context"
	"database/sql"

	"go-erp/internal/shared/period"
	"go-erp/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindDays(ctx context.Context, companyID string, p period.Period) ([]int, error)
	ReplaceDays(ctx context.Context, companyID string, p period.Period, rows []Holiday) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindDays(ctx context.Context, companyID string, p period.Period) ([]int, error) {
	var days []int
	err := r.conn(ctx).
		Model(&Holiday{}).
		Scopes(tenant.Scope(companyID), tenant.Month(p)).
		Order("day ASC").
		Pluck("day", &days).Error
	return days, err
}

func (r *repository) ReplaceDays(ctx context.Context, companyID string, p period.Period, rows []Holiday) error {
	db := r.conn(ctx)
	if err := db.Scopes(tenant.Scope(companyID), tenant.Month(p)).
		Delete(&Holiday{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&rows).Error
}
