package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestParseDurationEnv(t *testing.T) {
	t.Parallel()

	got, err := ParseDurationEnv("90")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 90*time.Second {
		t.Fatalf("bare number: got %v want 90s", got)
	}

	got, err = ParseDurationEnv("'2m'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2*time.Minute {
		t.Fatalf("quoted: got %v want 2m", got)
	}

	if _, err := ParseDurationEnv("  "); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestIsPGUniqueViolation(t *testing.T) {
	t.Parallel()

	if !IsPGUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected true for code 23505")
	}
	if IsPGUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("expected false for other pg codes")
	}
	if IsPGUniqueViolation(errors.New("plain error")) {
		t.Fatal("expected false for non-pg errors")
	}
}
