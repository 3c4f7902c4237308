package auth

import "testing"

func TestHashPassword(t *testing.T) {
	t.Parallel()

	password := "correct horse battery"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if hash == password {
		t.Error("hash must not equal plaintext password")
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	t.Parallel()

	password := "correct horse battery"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash1 == hash2 {
		t.Error("same password must produce different hashes due to salt")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	if err := CheckPassword(hash, "secret-password"); err != nil {
		t.Errorf("correct password should match, got %v", err)
	}
	if err := CheckPassword(hash, "wrong-password"); err == nil {
		t.Error("expected error for wrong password")
	}
	if err := CheckPassword("not-a-bcrypt-hash", "secret-password"); err == nil {
		t.Error("expected error for invalid hash")
	}
}
