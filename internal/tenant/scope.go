// Package tenant holds the gorm scopes every company owned table is queried through.
package tenant

import (
	"go-erp/internal/shared/period"

	"gorm.io/gorm"
)

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// Month matches tables keyed by year and month columns.
func Month(p period.Period) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("year = ? AND month = ?", p.Year, p.Month)
	}
}

// MonthsBetween matches year/month keyed rows from from to to, both inclusive.
func MonthsBetween(from, to period.Period) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(year * 100 + month) BETWEEN ? AND ?", from.Year*100+from.Month, to.Year*100+to.Month)
	}
}
