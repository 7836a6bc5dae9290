package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday marks one day of a month as paid off for every employee of the company.
type Holiday struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_holiday_day"`
	Year      int       `gorm:"column:year;not null;uniqueIndex:uq_holiday_day"`
	Month     int       `gorm:"column:month;not null;uniqueIndex:uq_holiday_day"`
	Day       int       `gorm:"column:day;not null;uniqueIndex:uq_holiday_day"`
	Name      string    `gorm:"column:name;type:varchar(120)"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
