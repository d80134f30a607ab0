package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtorcrm/authsvc/domain"
)

func TestSessionStore_SetCredentialsOverwrites(t *testing.T) {
	store := NewSessionStore()
	assert.False(t, store.IsAuthenticated())

	store.SetCredentials("token-1", &User{ID: 1, UserType: domain.RoleClient})
	store.SetCredentials("token-2", &User{ID: 2, UserType: domain.RoleRealtor})

	snap := store.Snapshot()
	assert.Equal(t, "token-2", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, uint(2), snap.User.ID)
	assert.Equal(t, domain.RoleRealtor, snap.UserType())
}

func TestSessionStore_ClearSession(t *testing.T) {
	store := NewSessionStore()
	store.SetCredentials("token", &User{ID: 1})

	store.ClearSession()

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated())
	assert.Nil(t, snap.User)
	assert.Equal(t, domain.Role(""), store.UserType())
}

func TestSessionStore_SnapshotIsACopy(t *testing.T) {
	store := NewSessionStore()
	store.SetCredentials("token", &User{ID: 1, Email: "a@example.com"})

	snap := store.Snapshot()
	snap.User.Email = "mutated@example.com"

	assert.Equal(t, "a@example.com", store.CurrentUser().Email)
}

func TestSessionStore_SubscribersNotifiedOnEveryMutation(t *testing.T) {
	store := NewSessionStore()

	var seen []Snapshot
	unsubscribe := store.Subscribe(func(s Snapshot) {
		seen = append(seen, s)
	})

	store.SetCredentials("token", &User{ID: 1})
	store.ClearSession()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].IsAuthenticated())
	assert.False(t, seen[1].IsAuthenticated())

	unsubscribe()
	store.SetCredentials("token-3", nil)
	assert.Len(t, seen, 2)
}
