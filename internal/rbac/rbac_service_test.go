package rbac_test

import (
	"testing"

	"siap-cuti/internal/domain"
	"siap-cuti/internal/rbac"
	"siap-cuti/internal/rbac/infra"
	"siap-cuti/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	return rbac.NewService(enforcer)
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{domain.RoleAdmin, domain.ResourceLeave, domain.ActionApprove, true},
		{domain.RoleAdmin, domain.ResourceReport, domain.ActionRead, true},
		{domain.RoleAdmin, domain.ResourceLeave, domain.ActionCreate, false},
		{domain.RoleMember, domain.ResourceLeave, domain.ActionCreate, true},
		{domain.RoleMember, domain.ResourceLeave, domain.ActionApprove, false},
		{domain.RoleMember, domain.ResourceReport, domain.ActionRead, false},
		{"", domain.ResourceLeave, domain.ActionReadOwn, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+":"+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})

			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRBACService_Authorize(t *testing.T) {
	svc := newService(t)

	err := svc.Authorize(domain.Actor{UserID: "u1", Role: domain.RoleMember}, domain.ResourceLeave, domain.ActionApprove)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	err = svc.Authorize(domain.Actor{UserID: "u2", Role: domain.RoleAdmin}, domain.ResourceLeave, domain.ActionApprove)
	assert.NoError(t, err)
}
