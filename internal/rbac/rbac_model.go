package rbac

import (
	"go-erp/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// ModelText grants a role a resource/action pair. "*" in a policy matches anything.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// DefaultPolicies is the role matrix every company starts with.
var DefaultPolicies = [][]string{
	{domain.RoleAdmin, "*", "*"},

	{domain.RoleHR, domain.ResourcePayroll, domain.ActionRead},
	{domain.RoleHR, domain.ResourcePayroll, domain.ActionCalculate},
	{domain.RoleHR, domain.ResourcePayroll, domain.ActionWrite},
	{domain.RoleHR, domain.ResourceAttendance, domain.ActionRead},
	{domain.RoleHR, domain.ResourceAttendance, domain.ActionSelf},
	{domain.RoleHR, domain.ResourceHoliday, domain.ActionRead},
	{domain.RoleHR, domain.ResourceHoliday, domain.ActionWrite},
	{domain.RoleHR, domain.ResourceEmployee, domain.ActionRead},
	{domain.RoleHR, domain.ResourceLoan, domain.ActionRead},

	{domain.RoleEmployee, domain.ResourceAttendance, domain.ActionSelf},
	{domain.RoleEmployee, domain.ResourceHoliday, domain.ActionRead},
}

// NewEnforcer builds an in-memory enforcer loaded with DefaultPolicies.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(DefaultPolicies); err != nil {
		return nil, err
	}
	return e, nil
}
