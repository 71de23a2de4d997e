package roles

import (
	"clinic-portal-service/internal/app/contracts"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

//go:embed rbac_model.conf
var rbacModel string

// Admin inherits Manager, Manager inherits Staff. workflow:run stays with Doctor.
//
//go:embed rbac_policy.csv
var rbacPolicy string

var (
	permissionServiceInstance contracts.PermissionService
	permissionServiceErr      error
	oncePermissionService     sync.Once
)

type permissionService struct {
	enforcer *casbin.Enforcer
}

func NewPermissionService() (contracts.PermissionService, error) {
	oncePermissionService.Do(func() {
		enforcer, err := NewEnforcer()
		if err != nil {
			permissionServiceErr = err
			return
		}
		permissionServiceInstance = &permissionService{enforcer: enforcer}
	})
	return permissionServiceInstance, permissionServiceErr
}

// NewEnforcer builds the role enforcer from the embedded model and policy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(rbacPolicy))
	if err != nil {
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}
	return enforcer, nil
}

// Allowed returns the sorted permissions of role, empty for unknown roles.
func (s *permissionService) Allowed(role string) []string {
	policies, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return []string{}
	}
	seen := make(map[string]struct{}, len(policies))
	permissions := make([]string, 0, len(policies))
	for _, policy := range policies {
		if len(policy) < 2 {
			continue
		}
		if _, ok := seen[policy[1]]; ok {
			continue
		}
		seen[policy[1]] = struct{}{}
		permissions = append(permissions, policy[1])
	}
	sort.Strings(permissions)
	return permissions
}

func (s *permissionService) Has(role, permission string) bool {
	ok, err := s.enforcer.Enforce(role, permission)
	return err == nil && ok
}
