package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/realtorcrm/authsvc/domain"
)

const genericNetworkError = "Something went wrong. Please try again."

// Gateway is the typed HTTP client for the auth service. Every call takes
// a context so in-flight requests can be aborted when the initiating flow
// step goes away. A 401 response clears the injected session store.
type Gateway struct {
	baseURL string
	httpc   *http.Client
	store   *SessionStore
}

// NewGateway creates a gateway against baseURL. httpc may be nil, in
// which case a client with a sane timeout is used.
func NewGateway(baseURL string, httpc *http.Client, store *SessionStore) *Gateway {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Gateway{baseURL: baseURL, httpc: httpc, store: store}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewNetworkError(genericNetworkError, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return domain.NewNetworkError(genericNetworkError, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if snap := g.store.Snapshot(); snap.Token != "" {
		req.Header.Set("Authorization", "Bearer "+snap.Token)
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		return domain.NewNetworkError(genericNetworkError, err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode == http.StatusUnauthorized {
		// The server no longer honours our credential.
		g.store.ClearSession()
		msg := env.Message
		if msg == "" {
			msg = "Your session has expired. Please log in again."
		}
		return domain.NewAuthError(msg, domain.ErrUnauthorized)
	}

	if decodeErr != nil {
		return domain.NewNetworkError(genericNetworkError, decodeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = genericNetworkError
		}
		return domain.NewNetworkError(msg, fmt.Errorf("api: status %d", resp.StatusCode))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return domain.NewNetworkError(genericNetworkError, err)
		}
	}
	return nil
}

func (g *Gateway) post(ctx context.Context, path string, body, out interface{}) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

// SignupData is the response payload of a signup request.
type SignupData struct {
	UserID             uint   `json:"user_id"`
	UserRef            string `json:"user_ref"`
	VerificationMethod string `json:"verification_method"`
}

// Signup submits a registration draft.
func (g *Gateway) Signup(ctx context.Context, draft *domain.SignupDraft) (*SignupData, error) {
	var data SignupData
	if err := g.post(ctx, "/api/auth/signup", draft, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifySignupData is the response payload of a verification request.
type VerifySignupData struct {
	User     *User       `json:"user"`
	UserType domain.Role `json:"user_type"`
	Token    string      `json:"token"`
}

// VerifySignup submits a one-time code for the given contact.
func (g *Gateway) VerifySignup(ctx context.Context, contact, code string) (*VerifySignupData, error) {
	body := map[string]string{"email": contact, "code": code}
	var data VerifySignupData
	if err := g.post(ctx, "/api/auth/verify-signup", body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// RequestVerificationCode asks for a fresh code for the given contact.
func (g *Gateway) RequestVerificationCode(ctx context.Context, contact string) error {
	return g.post(ctx, "/api/auth/request-verification-code", map[string]string{"email": contact}, nil)
}

// LoginData is the response payload of a login request.
type LoginData struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         *User  `json:"user"`
}

// Login authenticates with email and password.
func (g *Gateway) Login(ctx context.Context, email, password string) (*LoginData, error) {
	body := map[string]string{"email": email, "password": password}
	var data LoginData
	if err := g.post(ctx, "/api/auth/login", body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Logout tears down the server-side session.
func (g *Gateway) Logout(ctx context.Context) error {
	return g.post(ctx, "/api/auth/logout", nil, nil)
}

// CurrentUser fetches the authenticated profile.
func (g *Gateway) CurrentUser(ctx context.Context) (*User, error) {
	var data struct {
		Auth *User `json:"auth"`
	}
	if err := g.do(ctx, http.MethodGet, "/api/auth/current-user", nil, &data); err != nil {
		return nil, err
	}
	return data.Auth, nil
}

// CheckEmailExists reports whether an account exists for email.
func (g *Gateway) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var data struct {
		Exists bool `json:"exists"`
	}
	if err := g.post(ctx, "/api/auth/check-user-email-exists", map[string]string{"email": email}, &data); err != nil {
		return false, err
	}
	return data.Exists, nil
}

// ForgotPassword starts the reset sequence.
func (g *Gateway) ForgotPassword(ctx context.Context, email string) error {
	return g.post(ctx, "/api/auth/forgot-password", map[string]string{"email": email}, nil)
}

// VerifyForgotPassword verifies the reset code.
func (g *Gateway) VerifyForgotPassword(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return g.post(ctx, "/api/auth/verify-forgot-password", body, nil)
}

// ResetPassword sets a new password after a verified reset code.
func (g *Gateway) ResetPassword(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return g.post(ctx, "/api/auth/reset-password", body, nil)
}

// AccountSetup merges profile fields for the authenticated user.
func (g *Gateway) AccountSetup(ctx context.Context, params domain.AccountSetupParams) (*User, error) {
	var data struct {
		Auth *User `json:"auth"`
	}
	if err := g.post(ctx, "/api/auth/account-setup", params, &data); err != nil {
		return nil, err
	}
	return data.Auth, nil
}

// Checkout marks the user's plan as paid.
func (g *Gateway) Checkout(ctx context.Context, userID uint, userType domain.Role) error {
	body := map[string]interface{}{"user_id": userID, "user_type": string(userType)}
	return g.post(ctx, "/api/auth/checkout", body, nil)
}

// LeadSignup submits a lead payload to a realtor's capture endpoint.
func (g *Gateway) LeadSignup(ctx context.Context, realtorID uint, payload map[string]interface{}) error {
	return g.post(ctx, fmt.Sprintf("/api/auth/lead-signup/%d", realtorID), payload, nil)
}
