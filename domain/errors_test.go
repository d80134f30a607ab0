package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestTaggedError_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "validation error",
			err:  NewValidationError("missing fields", map[string]string{"first_name": "required"}),
			want: KindValidation,
		},
		{
			name: "network error",
			err:  NewNetworkError("request failed", errors.New("connection refused")),
			want: KindNetwork,
		},
		{
			name: "auth error",
			err:  NewAuthError("session expired", ErrSessionExpired),
			want: KindAuth,
		},
		{
			name: "wrapped tagged error keeps its kind",
			err:  fmt.Errorf("submit: %w", NewAuthError("unauthorized", ErrUnauthorized)),
			want: KindAuth,
		},
		{
			name: "plain error reports as network failure",
			err:  errors.New("something broke"),
			want: KindNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTaggedError_Unwrap(t *testing.T) {
	err := NewAuthError("session expired", ErrSessionExpired)
	if !errors.Is(err, ErrSessionExpired) {
		t.Error("expected tagged error to unwrap to its cause")
	}
}

func TestTaggedError_Details(t *testing.T) {
	err := NewValidationError("invalid form", map[string]string{
		"password": "passwords do not match",
	})

	var tagged *Error
	if !errors.As(err, &tagged) {
		t.Fatal("expected *Error")
	}
	if tagged.Details["password"] != "passwords do not match" {
		t.Errorf("unexpected details: %v", tagged.Details)
	}
	if tagged.Error() != "invalid form" {
		t.Errorf("Error() = %q", tagged.Error())
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUserNotFound, ErrInvalidCredentials, ErrUserAlreadyExists,
		ErrUserInactive, ErrUserNotVerified, ErrMissingUserType,
		ErrOTPExpired, ErrOTPInvalid, ErrOTPMaxAttempts, ErrOTPNotFound,
		ErrTokenInvalid, ErrTokenExpired, ErrSessionNotFound, ErrSessionExpired,
	}
	seen := make(map[string]bool)
	for _, err := range sentinels {
		if seen[err.Error()] {
			t.Errorf("duplicate sentinel message %q", err.Error())
		}
		seen[err.Error()] = true
	}
}
