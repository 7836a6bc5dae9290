package rbac

import (
	"testing"

	"go-erp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	e, err := NewEnforcer()
	require.NoError(t, err)
	return NewService(e)
}

func TestRBACService_Enforce(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin wildcard", domain.RoleAdmin, domain.ResourcePayroll, domain.ActionWrite, true},
		{"admin any resource", domain.RoleAdmin, "anything", "delete", true},
		{"hr saves payroll", domain.RoleHR, domain.ResourcePayroll, domain.ActionWrite, true},
		{"hr calculates payroll", domain.RoleHR, domain.ResourcePayroll, domain.ActionCalculate, true},
		{"hr edits holidays", domain.RoleHR, domain.ResourceHoliday, domain.ActionWrite, true},
		{"employee checks in", domain.RoleEmployee, domain.ResourceAttendance, domain.ActionSelf, true},
		{"employee reads holidays", domain.RoleEmployee, domain.ResourceHoliday, domain.ActionRead, true},
		{"employee cannot read payroll", domain.RoleEmployee, domain.ResourcePayroll, domain.ActionRead, false},
		{"employee cannot edit holidays", domain.RoleEmployee, domain.ResourceHoliday, domain.ActionWrite, false},
		{"role is case insensitive", "hr", domain.ResourceLoan, domain.ActionRead, true},
		{"unknown role", "GUEST", domain.ResourceHoliday, domain.ActionRead, false},
		{"empty role", "", domain.ResourceHoliday, domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := service.Enforce(domain.EnforceRequest{
				Role:      tt.role,
				CompanyID: "company-1",
				Resource:  tt.resource,
				Action:    tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}
