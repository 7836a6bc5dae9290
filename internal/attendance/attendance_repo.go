package attendance

import (
	"context"
	"database/sql"

	"go-erp/internal/shared/period"
	"go-erp/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *AttendanceRecord) error
	FindLatestOpenSession(ctx context.Context, companyID, employeeID string) (*AttendanceRecord, error)
	Update(ctx context.Context, rec *AttendanceRecord) error
	FindByPeriod(ctx context.Context, companyID string, p period.Period) ([]AttendanceRecord, error)
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

func (r *repository) Create(ctx context.Context, rec *AttendanceRecord) error {
	return r.conn(ctx).Create(rec).Error
}

// FindLatestOpenSession locks the row when called inside a transaction.
func (r *repository) FindLatestOpenSession(ctx context.Context, companyID, employeeID string) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	q := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND status = ?", employeeID, StatusOpen).
		Order("check_in DESC")
	if r.tx != nil {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Update(ctx context.Context, rec *AttendanceRecord) error {
	return r.conn(ctx).Save(rec).Error
}

func (r *repository) FindByPeriod(ctx context.Context, companyID string, p period.Period) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("attendance_date >= ? AND attendance_date < ?", p.Start(), p.End()).
		Order("attendance_date ASC, employee_id ASC, check_in ASC").
		Find(&rows).Error
	return rows, err
}
