package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realtorcrm/authsvc/domain"
)

func authedSnapshot(role domain.Role) Snapshot {
	return Snapshot{
		Token: "jwt-token",
		User:  &User{ID: 1, Email: "u@example.com", UserType: role},
	}
}

func TestEvaluateRoute(t *testing.T) {
	realtorOnly := []domain.Role{domain.RoleRealtor}

	tests := []struct {
		name     string
		snap     Snapshot
		allowed  []domain.Role
		path     string
		expected Decision
	}{
		{
			name:     "unauthenticated redirects to login with next",
			snap:     Snapshot{},
			allowed:  realtorOnly,
			path:     "/realtor/leads",
			expected: Decision{RedirectTo: "/login?next=%2Frealtor%2Fleads"},
		},
		{
			name:     "wrong role redirects to dashboard",
			snap:     authedSnapshot(domain.RoleClient),
			allowed:  realtorOnly,
			path:     "/realtor/leads",
			expected: Decision{RedirectTo: PathDashboard},
		},
		{
			name:     "matching role allowed",
			snap:     authedSnapshot(domain.RoleRealtor),
			allowed:  realtorOnly,
			path:     "/realtor/leads",
			expected: Decision{Allow: true},
		},
		{
			name:     "role among several allowed",
			snap:     authedSnapshot(domain.RoleOrganization),
			allowed:  []domain.Role{domain.RoleRealtor, domain.RoleOrganization},
			path:     "/realtor/leads",
			expected: Decision{Allow: true},
		},
		{
			name:     "authenticated without role is permitted",
			snap:     Snapshot{Token: "jwt-token"},
			allowed:  realtorOnly,
			path:     "/realtor/leads",
			expected: Decision{Allow: true},
		},
		{
			name:     "no role restriction allows any session",
			snap:     authedSnapshot(domain.RoleClient),
			allowed:  nil,
			path:     "/dashboard",
			expected: Decision{Allow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRoute(tt.snap, tt.allowed, tt.path)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateGuest(t *testing.T) {
	assert.Equal(t, Decision{Allow: true}, EvaluateGuest(Snapshot{}))
	assert.Equal(t, Decision{RedirectTo: PathHome}, EvaluateGuest(authedSnapshot(domain.RoleClient)))
}

func TestEvaluateVerificationEntry(t *testing.T) {
	assert.Equal(t, Decision{RedirectTo: PathSignupOptions}, EvaluateVerificationEntry(domain.VerificationState{}))

	pending := domain.VerificationState{Contact: "u@example.com", Method: domain.ChannelEmail}
	assert.Equal(t, Decision{Allow: true}, EvaluateVerificationEntry(pending))
}
