package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	dom "github.com/atul-mandavkar/inotebook-backend/internal/domain"
	"github.com/atul-mandavkar/inotebook-backend/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/atul-mandavkar/inotebook-backend/internal/cache"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrNotOwner means the caller is authenticated but the note belongs to
	// someone else.
	ErrNotOwner = errors.New("not allowed")
)

const defaultTag = "General"

// NoteService owns the note lifecycle and enforces that only a note's owner
// may read it in a list, update it or delete it.
type NoteService struct {
	repo  repo.NoteRepo
	cache *cache.NoteCache
	sf    singleflight.Group
}

// NewNoteService creates a NoteService. If c is nil, caching is disabled.
func NewNoteService(r repo.NoteRepo, c *cache.NoteCache) *NoteService {
	return &NoteService{repo: r, cache: c}
}

// Create stores a new note owned by userID.
func (s *NoteService) Create(ctx context.Context, userID int64, title, desc, tag string) (dom.Note, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = defaultTag
	}

	n, err := s.repo.Create(ctx, dom.Note{
		UserID:      userID,
		Title:       title,
		Description: desc,
		Tag:         tag,
	})
	if err != nil {
		return dom.Note{}, err
	}
	s.invalidateCache(ctx, userID)
	return n, nil
}

// List returns the caller's notes, never anyone else's: the query itself is
// filtered by owner.
func (s *NoteService) List(ctx context.Context, userID int64) ([]dom.Note, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByOwner(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Note), nil
	}
	return s.repo.ListByOwner(ctx, userID)
}

// Update changes title/description/tag of a note owned by userID. nil fields
// keep their current value. The lookup and the ownership check are separate
// steps so a missing note and someone else's note get distinct outcomes; the
// final write is still owner-scoped, so a note deleted in between surfaces
// as ErrNotFound.
func (s *NoteService) Update(ctx context.Context, userID, id int64, title, desc, tag *string) (dom.Note, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	if existing.UserID != userID {
		return dom.Note{}, ErrNotOwner
	}

	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if tag != nil {
		// An empty tag on update keeps the current one; only create falls
		// back to the default.
		if t := strings.TrimSpace(*tag); t != "" {
			patch.Tag = t
		}
	}

	n, err := s.repo.Update(ctx, id, userID, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	s.invalidateCache(ctx, userID)
	return n, nil
}

// Delete removes a note owned by userID and returns the deleted record.
func (s *NoteService) Delete(ctx context.Context, userID, id int64) (dom.Note, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	if existing.UserID != userID {
		return dom.Note{}, ErrNotOwner
	}

	n, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Note{}, ErrNotFound
		}
		return dom.Note{}, err
	}
	s.invalidateCache(ctx, userID)
	return n, nil
}

func (s *NoteService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
