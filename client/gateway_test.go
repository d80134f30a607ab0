package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtorcrm/authsvc/domain"
)

func newTestGateway(t *testing.T, handler http.Handler) (*Gateway, *SessionStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := NewSessionStore()
	return NewGateway(srv.URL, srv.Client(), store), store
}

func TestGateway_SendsBearerTokenWhenAuthenticated(t *testing.T) {
	var auth string
	gw, store := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, true, "", map[string]interface{}{
			"auth": map[string]interface{}{"id": 1, "email": "u@example.com"},
		})
	}))
	store.SetCredentials("jwt-token", &User{ID: 1})

	user, err := gw.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", auth)
	require.NotNil(t, user)
	assert.Equal(t, "u@example.com", user.Email)
}

func TestGateway_UnauthorizedClearsSession(t *testing.T) {
	gw, store := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Token expired", nil)
	}))
	store.SetCredentials("stale-token", &User{ID: 1})

	_, err := gw.CurrentUser(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.KindAuth, domain.KindOf(err))
	assert.False(t, store.IsAuthenticated())

	var tagged *domain.Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, "Token expired", tagged.Message)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGateway_ServerFailureIsNetworkError(t *testing.T) {
	gw, store := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, false, "User already exists", nil)
	}))

	_, err := gw.Signup(context.Background(), &domain.SignupDraft{})

	require.Error(t, err)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
	assert.False(t, store.IsAuthenticated())

	var tagged *domain.Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, "User already exists", tagged.Message)
}

func TestGateway_SuccessFalseWithOKStatusIsFailure(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, false, "Could not send code", nil)
	}))

	err := gw.RequestVerificationCode(context.Background(), "u@example.com")

	require.Error(t, err)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestGateway_TransportErrorIsNetworkError(t *testing.T) {
	store := NewSessionStore()
	gw := NewGateway("http://127.0.0.1:1", nil, store)

	err := gw.Logout(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))

	var tagged *domain.Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, genericNetworkError, tagged.Message)
}

func TestGateway_CheckEmailExists(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/check-user-email-exists", r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "", map[string]interface{}{"exists": true})
	}))

	exists, err := gw.CheckEmailExists(context.Background(), "u@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
}
