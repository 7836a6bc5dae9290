package payroll

import (
	"strings"

	payrollerrors "go-erp/internal/payroll/errors"
)

type Category string

const (
	CategoryESIPF        Category = "ESI/PF"
	CategoryNoESIPF      Category = "No ESI/PF"
	CategoryCasualLabour Category = "Casual Labour"
)

var Categories = []Category{CategoryESIPF, CategoryNoESIPF, CategoryCasualLabour}

// ParseCategory accepts the display names and their slugs (esi-pf, no-esi-pf, casual-labour),
// ignoring case, spaces, dashes, underscores and slashes.
func ParseCategory(raw string) (Category, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "", "/", "").Replace(strings.ToLower(raw))
	switch key {
	case "esipf":
		return CategoryESIPF, nil
	case "noesipf":
		return CategoryNoESIPF, nil
	case "casuallabour", "casuallabor", "casual":
		return CategoryCasualLabour, nil
	default:
		return "", payrollerrors.ErrInvalidCategory
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryESIPF, CategoryNoESIPF, CategoryCasualLabour:
		return true
	}
	return false
}

// WorkingDaysBasis is the day count the baseline salary is divided by.
func (c Category) WorkingDaysBasis() int {
	switch c {
	case CategoryESIPF, CategoryCasualLabour:
		return 30
	case CategoryNoESIPF:
		return 32
	}
	return 0
}

// Slug is the url/cache friendly form of the category.
func (c Category) Slug() string {
	switch c {
	case CategoryESIPF:
		return "esi-pf"
	case CategoryNoESIPF:
		return "no-esi-pf"
	case CategoryCasualLabour:
		return "casual-labour"
	}
	return "unknown"
}
