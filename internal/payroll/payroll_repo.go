package payroll

import (
	"context"
	"database/sql"

	"go-erp/internal/shared/period"
	"go-erp/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ReplaceReport(ctx context.Context, report *PayrollReport) error
	FindReport(ctx context.Context, companyID string, category Category, p period.Period) (*PayrollReport, error)
	FindReportsBetween(ctx context.Context, companyID string, category Category, from, to period.Period) ([]PayrollReport, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// ReplaceReport drops any report with the same key and inserts the new header with its items.
func (r *repository) ReplaceReport(ctx context.Context, report *PayrollReport) error {
	db := r.conn(ctx)

	stale := db.Session(&gorm.Session{NewDB: true}).
		Model(&PayrollReport{}).
		Select("id").
		Scopes(reportKey(report.CompanyID.String(), report.Category, period.New(report.Month, report.Year)))

	if err := db.Where("report_id IN (?)", stale).Delete(&PayrollReportItem{}).Error; err != nil {
		return err
	}
	if err := db.Scopes(reportKey(report.CompanyID.String(), report.Category, period.New(report.Month, report.Year))).
		Delete(&PayrollReport{}).Error; err != nil {
		return err
	}

	return db.Create(report).Error
}

func (r *repository) FindReport(ctx context.Context, companyID string, category Category, p period.Period) (*PayrollReport, error) {
	var report PayrollReport
	err := r.conn(ctx).
		Scopes(reportKey(companyID, string(category), p)).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *repository) FindReportsBetween(ctx context.Context, companyID string, category Category, from, to period.Period) ([]PayrollReport, error) {
	var reports []PayrollReport
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), tenant.MonthsBetween(from, to)).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("category = ?", string(category)).
		Order("year DESC, month DESC").
		Find(&reports).Error
	return reports, err
}

// reportKey matches the one report a company may hold per category and month.
func reportKey(companyID, category string, p period.Period) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return tenant.Month(p)(tenant.Scope(companyID)(db)).Where("category = ?", category)
	}
}
