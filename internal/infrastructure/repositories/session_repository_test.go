package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/realtorcrm/authsvc/domain"
)

func createSessionRepoForTest(t *testing.T) (domain.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRepository(client, time.Hour), mr
}

func createSession(id string, userID uint, expiresAt time.Time) *domain.Session {
	return &domain.Session{
		ID:        id,
		UserID:    userID,
		UserType:  domain.RoleClient,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	repo, _ := createSessionRepoForTest(t)
	ctx := context.Background()

	session := createSession("sess-1", 42, time.Now().Add(time.Hour))
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", found.UserID)
	}
	if found.UserType != domain.RoleClient {
		t.Errorf("expected user type Client, got %s", found.UserType)
	}
}

func TestSessionRepositoryImpl_FindMissing(t *testing.T) {
	repo, _ := createSessionRepoForTest(t)

	_, err := repo.FindByID(context.Background(), "does-not-exist")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepositoryImpl_ExpiredSessionIsRemoved(t *testing.T) {
	repo, mr := createSessionRepoForTest(t)
	ctx := context.Background()

	session := createSession("sess-old", 1, time.Now().Add(-time.Minute))
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.FindByID(ctx, "sess-old")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// The stale record is cleaned up on read.
	if mr.Exists("session:sess-old") {
		t.Error("expected expired session key to be deleted")
	}
}

func TestSessionRepositoryImpl_Delete(t *testing.T) {
	repo, _ := createSessionRepoForTest(t)
	ctx := context.Background()

	session := createSession("sess-2", 7, time.Now().Add(time.Hour))
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, "sess-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, "sess-2"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
