package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.Verify(hash, "secret123") {
		t.Error("expected correct password to verify")
	}
	if svc.Verify(hash, "wrongpassword") {
		t.Error("expected wrong password to be rejected")
	}
}

func TestPasswordServiceImpl_ConfiguredCost(t *testing.T) {
	svc := NewPasswordService(6)

	hash, err := svc.Hash("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != 6 {
		t.Errorf("expected cost 6, got %d", cost)
	}
}

func TestPasswordServiceImpl_InvalidCostFallsBack(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{name: "zero cost", cost: 0},
		{name: "negative cost", cost: -1},
		{name: "above maximum", cost: bcrypt.MaxCost + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPasswordService(tt.cost)

			hash, err := svc.Hash("secret123")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			cost, err := bcrypt.Cost([]byte(hash))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cost != bcrypt.DefaultCost {
				t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
			}
			if !strings.HasPrefix(hash, "$2") {
				t.Errorf("expected bcrypt hash, got %q", hash)
			}
		})
	}
}
