package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atul-mandavkar/inotebook-backend/internal/auth"
	dom "github.com/atul-mandavkar/inotebook-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type fakeUserRepo struct {
	byEmail map[string]dom.User
	byID    map[int64]dom.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]dom.User{}, byID: map[int64]dom.User{}}
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, name, email, passwordHash string) (dom.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return dom.User{}, errors.New("duplicate key value violates unique constraint")
	}
	f.nextID++
	u := dom.User{ID: f.nextID, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.byEmail[email] = u
	f.byID[u.ID] = u
	return u, nil
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "longenoughpassword")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.PasswordHash == "longenoughpassword" {
		t.Fatal("stored hash equals plaintext password")
	}
	if err := auth.CheckPassword(u.PasswordHash, "longenoughpassword"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "longenoughpassword"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	_, err := svc.Register(context.Background(), "Other Alice", "alice@example.com", "anotherpassword")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.byID))
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.Register(context.Background(), "Alice Smith", "  Alice@Example.com ", "longenoughpassword"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, ok := repo.byEmail["alice@example.com"]; !ok {
		t.Fatal("expected email stored lowercased and trimmed")
	}
}

func TestValidateCredentials_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	reg, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "longenoughpassword")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, err := svc.ValidateCredentials(context.Background(), "alice@example.com", "longenoughpassword")
	if err != nil {
		t.Fatalf("ValidateCredentials error: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("user mismatch: got %d want %d", u.ID, reg.ID)
	}
}

func TestValidateCredentials_CollapsedFailures(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.Register(context.Background(), "Alice Smith", "alice@example.com", "longenoughpassword"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errWrongPass := svc.ValidateCredentials(context.Background(), "alice@example.com", "wrong-password")
	_, errNoUser := svc.ValidateCredentials(context.Background(), "nobody@example.com", "longenoughpassword")

	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	// Same error value means callers cannot tell the two causes apart.
	if errWrongPass != errNoUser {
		t.Fatalf("failure causes must be indistinguishable: %v vs %v", errWrongPass, errNoUser)
	}
}

func TestGetByID_MissingUserSurfaces(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), 99)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected store error to pass through, got %v", err)
	}
}
