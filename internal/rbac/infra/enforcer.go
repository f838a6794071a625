package infra

import (
	"siap-cuti/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies is the fixed role -> capability table.
var DefaultPolicies = [][]string{
	{domain.RoleMember, domain.ResourceLeave, domain.ActionCreate},
	{domain.RoleMember, domain.ResourceLeave, domain.ActionReadOwn},
	{domain.RoleMember, domain.ResourceBalance, domain.ActionReadOwn},
	{domain.RoleMember, domain.ResourceProfile, domain.ActionUpdate},

	{domain.RoleAdmin, domain.ResourceLeave, domain.ActionReadOwn},
	{domain.RoleAdmin, domain.ResourceLeave, domain.ActionReadAll},
	{domain.RoleAdmin, domain.ResourceLeave, domain.ActionApprove},
	{domain.RoleAdmin, domain.ResourceBalance, domain.ActionReadOwn},
	{domain.RoleAdmin, domain.ResourceReport, domain.ActionRead},
	{domain.RoleAdmin, domain.ResourceProfile, domain.ActionUpdate},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
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
