package roles

import (
	"clinic-portal-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionService(t *testing.T) {
	svc, err := NewPermissionService()
	require.NoError(t, err)

	t.Run("workflow is reserved to doctors", func(t *testing.T) {
		assert.True(t, svc.Has(constvars.RoleDoctor, constvars.PermissionWorkflowRun))
		for _, role := range []string{constvars.RolePatient, constvars.RoleStaff, constvars.RoleManager, constvars.RoleAdmin} {
			assert.False(t, svc.Has(role, constvars.PermissionWorkflowRun), role)
		}
	})

	t.Run("patients book but never manage", func(t *testing.T) {
		assert.True(t, svc.Has(constvars.RolePatient, constvars.PermissionAppointmentsBook))
		assert.False(t, svc.Has(constvars.RolePatient, constvars.PermissionAppointmentsManage))
		assert.False(t, svc.Has(constvars.RolePatient, constvars.PermissionReferencesManage))
	})

	t.Run("manager extends staff", func(t *testing.T) {
		for _, permission := range svc.Allowed(constvars.RoleStaff) {
			assert.True(t, svc.Has(constvars.RoleManager, permission), permission)
		}
		assert.True(t, svc.Has(constvars.RoleManager, constvars.PermissionAccountsManage))
		assert.False(t, svc.Has(constvars.RoleStaff, constvars.PermissionAccountsManage))
	})

	t.Run("admin has every permission but the workflow", func(t *testing.T) {
		assert.Equal(t, svc.Allowed(constvars.RoleManager), svc.Allowed(constvars.RoleAdmin))
		assert.Len(t, svc.Allowed(constvars.RoleAdmin), 13)
		assert.True(t, svc.Has(constvars.RoleAdmin, constvars.PermissionAccountsManage))
		assert.True(t, svc.Has(constvars.RoleAdmin, constvars.PermissionAppointmentsBook))
	})

	t.Run("unknown role has nothing", func(t *testing.T) {
		assert.Empty(t, svc.Allowed("Visitor"))
		assert.False(t, svc.Has("Visitor", constvars.PermissionReferencesRead))
	})

	t.Run("allowed permissions are sorted", func(t *testing.T) {
		allowed := svc.Allowed(constvars.RoleDoctor)
		assert.IsIncreasing(t, allowed)
	})
}

func TestRBACPolicyMatchesPermissionConstants(t *testing.T) {
	enforcer, err := NewEnforcer()
	require.NoError(t, err)

	known := map[string]bool{
		constvars.PermissionAppointmentsBook:   true,
		constvars.PermissionAppointmentsRead:   true,
		constvars.PermissionAppointmentsManage: true,
		constvars.PermissionDoctorsSearch:      true,
		constvars.PermissionWorkflowRun:        true,
		constvars.PermissionRegimensRead:       true,
		constvars.PermissionRegimensManage:     true,
		constvars.PermissionTreatmentsRead:     true,
		constvars.PermissionTestResultsRead:    true,
		constvars.PermissionReferencesRead:     true,
		constvars.PermissionReferencesManage:   true,
		constvars.PermissionAccountsManage:     true,
		constvars.PermissionSchedulesRead:      true,
		constvars.PermissionSchedulesManage:    true,
	}

	policies, err := enforcer.GetPolicy()
	require.NoError(t, err)
	require.NotEmpty(t, policies)
	for _, policy := range policies {
		assert.True(t, known[policy[1]], policy[1])
	}

	ok, err := enforcer.Enforce(constvars.RoleAdmin, constvars.PermissionSchedulesRead)
	require.NoError(t, err)
	assert.True(t, ok)
}
