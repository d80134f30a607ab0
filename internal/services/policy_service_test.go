package services

import (
	"errors"
	"testing"

	"github.com/realtorcrm/authsvc/internal/mocks"
)

func TestPolicyServiceImpl_AddPolicy(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	var saved bool
	enforcer.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := NewPolicyService(enforcer)

	if err := svc.AddPolicy("role_Realtor", "/api/realtor/*", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved {
		t.Error("expected policy to be persisted after add")
	}
}

func TestPolicyServiceImpl_AddPolicy_DuplicateSkipsSave(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		return false, nil
	}
	enforcer.SavePolicyFunc = func() error {
		t.Error("save must not run when nothing was added")
		return nil
	}

	svc := NewPolicyService(enforcer)

	if err := svc.AddPolicy("role_Realtor", "/api/realtor/*", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPolicyServiceImpl_RemovePolicy(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	var saved bool
	enforcer.SavePolicyFunc = func() error {
		saved = true
		return nil
	}

	svc := NewPolicyService(enforcer)

	if err := svc.RemovePolicy("role_Realtor", "/api/realtor/*", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved {
		t.Error("expected policy store to be persisted after remove")
	}
}

func TestPolicyServiceImpl_CheckPermission(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.EnforceFunc = func(rvals ...interface{}) (bool, error) {
		return rvals[0] == "role_Organization", nil
	}

	svc := NewPolicyService(enforcer)

	allowed, err := svc.CheckPermission("role_Organization", "/admin/policies", "GET")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("expected organization role to be allowed")
	}

	allowed, err = svc.CheckPermission("role_Client", "/admin/policies", "GET")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Error("expected client role to be denied")
	}
}

func TestPolicyServiceImpl_AddPolicy_EnforcerError(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.AddPolicyFunc = func(params ...interface{}) (bool, error) {
		return false, errors.New("adapter unavailable")
	}

	svc := NewPolicyService(enforcer)

	if err := svc.AddPolicy("role_Realtor", "/api/realtor/*", "GET"); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestPolicyServiceImpl_GetPolicies(t *testing.T) {
	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.GetPolicyFunc = func() ([][]string, error) {
		return [][]string{{"role_Realtor", "/api/realtor/*", "GET"}}, nil
	}

	svc := NewPolicyService(enforcer)

	policies := svc.GetPolicies()
	if len(policies) != 1 {
		t.Fatalf("expected one policy, got %d", len(policies))
	}
	if policies[0][0] != "role_Realtor" {
		t.Errorf("unexpected policy subject %s", policies[0][0])
	}
}
