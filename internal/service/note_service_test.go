package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atul-mandavkar/inotebook-backend/internal/cache"
	dom "github.com/atul-mandavkar/inotebook-backend/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

type fakeNoteRepo struct {
	notes  map[int64]dom.Note
	nextID int64
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[int64]dom.Note{}}
}

func (f *fakeNoteRepo) Create(_ context.Context, n dom.Note) (dom.Note, error) {
	f.nextID++
	n.ID = f.nextID
	n.CreatedAt = time.Now()
	f.notes[n.ID] = n
	return n, nil
}

func (f *fakeNoteRepo) GetByID(_ context.Context, id int64) (dom.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return dom.Note{}, pgx.ErrNoRows
	}
	return n, nil
}

func (f *fakeNoteRepo) ListByOwner(_ context.Context, userID int64) ([]dom.Note, error) {
	var list []dom.Note
	for id := f.nextID; id >= 1; id-- {
		if n, ok := f.notes[id]; ok && n.UserID == userID {
			list = append(list, n)
		}
	}
	return list, nil
}

func (f *fakeNoteRepo) Update(_ context.Context, id, userID int64, patch dom.Note) (dom.Note, error) {
	n, ok := f.notes[id]
	if !ok || n.UserID != userID {
		return dom.Note{}, pgx.ErrNoRows
	}
	n.Title = patch.Title
	n.Description = patch.Description
	n.Tag = patch.Tag
	f.notes[id] = n
	return n, nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id, userID int64) (dom.Note, error) {
	n, ok := f.notes[id]
	if !ok || n.UserID != userID {
		return dom.Note{}, pgx.ErrNoRows
	}
	delete(f.notes, id)
	return n, nil
}

func strPtr(s string) *string { return &s }

func TestCreate_StampsOwnerAndDefaultTag(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	n, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if n.UserID != 1 {
		t.Fatalf("owner mismatch: got %d want 1", n.UserID)
	}
	if n.Tag != "General" {
		t.Fatalf("expected default tag General, got %q", n.Tag)
	}
	if n.ID == 0 || n.CreatedAt.IsZero() {
		t.Fatal("expected generated id and timestamp")
	}
}

func TestList_FiltersByOwner(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewNoteService(repo, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "home"); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), 2, "Intruder note", "This belongs to user 2", ""); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	list, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 notes for user 1, got %d", len(list))
	}
	for _, n := range list {
		if n.UserID != 1 {
			t.Fatalf("cross-owner note leaked into list: %+v", n)
		}
	}
}

func TestUpdate_NonOwnerForbiddenAndUnchanged(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewNoteService(repo, nil)

	created, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "home")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = svc.Update(context.Background(), 2, created.ID, strPtr("Hijacked"), nil, nil)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	stored := repo.notes[created.ID]
	if stored.Title != "Groceries" || stored.UserID != 1 {
		t.Fatalf("note changed by non-owner: %+v", stored)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	created, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "home")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, created.ID, strPtr("Errands"), nil, nil)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "Errands" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Description != "Buy milk and eggs" || updated.Tag != "home" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.UserID != 1 || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("owner or created-at changed: %+v", updated)
	}
}

func TestUpdate_MissingNote(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	_, err := svc.Update(context.Background(), 1, 999, strPtr("Anything at all"), nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_ReturnsDeletedRecord(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewNoteService(repo, nil)

	created, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "home")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if deleted.ID != created.ID || deleted.Title != "Groceries" {
		t.Fatalf("deleted record mismatch: %+v", deleted)
	}
	if _, ok := repo.notes[created.ID]; ok {
		t.Fatal("note still in store after delete")
	}

	_, err = svc.Delete(context.Background(), 1, created.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_EmptyTagKeepsCurrent(t *testing.T) {
	t.Parallel()

	svc := NewNoteService(newFakeNoteRepo(), nil)

	created, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "home")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, created.ID, strPtr("Errands list"), nil, strPtr(""))
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Tag != "home" {
		t.Fatalf("empty tag must keep the current one, got %q", updated.Tag)
	}
}

func TestList_ServesCacheUntilInvalidatedByWrite(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := newFakeNoteRepo()
	svc := NewNoteService(repo, cache.NewNoteCache(rdb, time.Minute))

	if _, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "home"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	list, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 note, got %d", len(list))
	}

	// A row slipped into the store behind the service's back stays invisible:
	// the list is now served from cache.
	if _, err := repo.Create(context.Background(), dom.Note{UserID: 1, Title: "Stowaway", Description: "Written past the cache"}); err != nil {
		t.Fatalf("repo Create error: %v", err)
	}
	list, err = svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected cached list of 1, got %d", len(list))
	}

	// A write through the service invalidates, so the next list is fresh.
	if _, err := svc.Create(context.Background(), 1, "Call plumber", "Kitchen sink drips", ""); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	list, err = svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected fresh list of 3 after invalidation, got %d", len(list))
	}
}

func TestDelete_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	repo := newFakeNoteRepo()
	svc := NewNoteService(repo, nil)

	created, err := svc.Create(context.Background(), 1, "Groceries", "Buy milk and eggs", "home")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = svc.Delete(context.Background(), 2, created.ID)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, ok := repo.notes[created.ID]; !ok {
		t.Fatal("note deleted by non-owner")
	}
}
