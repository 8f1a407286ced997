package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("Hash should not equal the plaintext")
	}

	if err := CheckPassword(hash, "s3cret-password"); err != nil {
		t.Errorf("Expected matching password, got %v", err)
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("s3cret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	err = CheckPassword(hash, "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "whatever")
	if err == nil {
		t.Fatal("Expected error for malformed hash")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("Malformed hash should not be reported as a credential mismatch")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	// bcrypt clamps costs below MinCost to DefaultCost, so only an
	// out-of-range high cost fails.
	if _, err := HashPassword("s3cret-password", bcrypt.MaxCost+1); err == nil {
		t.Error("Expected error for cost above bcrypt.MaxCost")
	}
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	if p := FromContext(ctx); p != nil {
		t.Fatalf("Expected no principal on a bare context, got %+v", p)
	}

	want := &Principal{UserID: "user-1", Email: "admin@example.com", IsAdmin: true}
	ctx = WithPrincipal(ctx, want)

	got := FromContext(ctx)
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
