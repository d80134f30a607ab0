package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/realtorcrm/authsvc/domain"
)

func createUserRepoForTest(t *testing.T) domain.UserRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&DBUser{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewUserRepository(db)
}

func seedUser(t *testing.T, repo domain.UserRepository) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:        "jane@example.com",
		Phone:        "+15551234567",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: "hashed_secret",
		UserType:     domain.RoleClient,
		UserRef:      "ref-0001",
		IsActive:     true,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected ID to be assigned on create")
	}
	return user
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := createUserRepoForTest(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	byEmail, err := repo.FindByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("expected ID %d, got %d", user.ID, byEmail.ID)
	}
	if byEmail.UserType != domain.RoleClient {
		t.Errorf("expected user type Client, got %s", byEmail.UserType)
	}

	byPhone, err := repo.FindByPhone(ctx, "+15551234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byPhone.ID != user.ID {
		t.Errorf("expected ID %d, got %d", user.ID, byPhone.ID)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.Email != "jane@example.com" {
		t.Errorf("expected email jane@example.com, got %s", byID.Email)
	}
}

func TestUserRepositoryImpl_FindByContact(t *testing.T) {
	repo := createUserRepoForTest(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	// Either contact column matches.
	byEmail, err := repo.FindByContact(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("expected ID %d, got %d", user.ID, byEmail.ID)
	}

	byPhone, err := repo.FindByContact(ctx, "+15551234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byPhone.ID != user.ID {
		t.Errorf("expected ID %d, got %d", user.ID, byPhone.ID)
	}

	if _, err := repo.FindByContact(ctx, "unknown@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_NotFound(t *testing.T) {
	repo := createUserRepoForTest(t)

	if _, err := repo.FindByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_MarkVerified(t *testing.T) {
	repo := createUserRepoForTest(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	if err := repo.MarkVerified(ctx, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.Verified {
		t.Error("expected user to be verified")
	}
	if reloaded.PaymentVerification {
		t.Error("payment verification must be untouched")
	}
}

func TestUserRepositoryImpl_MarkPaymentVerified(t *testing.T) {
	repo := createUserRepoForTest(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	if err := repo.MarkPaymentVerified(ctx, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.PaymentVerification {
		t.Error("expected payment verification to be set")
	}
}

func TestUserRepositoryImpl_UpdatePassword(t *testing.T) {
	repo := createUserRepoForTest(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	if err := repo.UpdatePassword(ctx, user.ID, "hashed_newsecret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.PasswordHash != "hashed_newsecret" {
		t.Errorf("expected updated hash, got %s", reloaded.PasswordHash)
	}
}

func TestUserRepositoryImpl_Update(t *testing.T) {
	repo := createUserRepoForTest(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	user.FirstName = "Janet"
	user.Phone = "+15559876543"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.FirstName != "Janet" {
		t.Errorf("expected first name Janet, got %s", reloaded.FirstName)
	}
	if reloaded.Phone != "+15559876543" {
		t.Errorf("expected phone updated, got %s", reloaded.Phone)
	}
}
