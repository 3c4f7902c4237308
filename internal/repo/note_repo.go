package repo

import (
	"context"

	dom "github.com/atul-mandavkar/inotebook-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NoteRepo provides note persistence. Update and Delete are owner-scoped at
// the query level: the row must match both id and user_id, so a concurrent
// delete cannot be overwritten by a stale caller.
type NoteRepo interface {
	Create(ctx context.Context, n dom.Note) (dom.Note, error)
	GetByID(ctx context.Context, id int64) (dom.Note, error)
	ListByOwner(ctx context.Context, userID int64) ([]dom.Note, error)
	Update(ctx context.Context, id, userID int64, patch dom.Note) (dom.Note, error)
	Delete(ctx context.Context, id, userID int64) (dom.Note, error)
}

// PGNoteRepo implements NoteRepo with Postgres.
type PGNoteRepo struct {
	db *pgxpool.Pool
}

// NewPGNoteRepo returns a new PGNoteRepo.
func NewPGNoteRepo(db *pgxpool.Pool) *PGNoteRepo {
	return &PGNoteRepo{db: db}
}

func (r *PGNoteRepo) Create(ctx context.Context, n dom.Note) (dom.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, description, tag)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, tag, created_at`
	var out dom.Note
	err := r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Description, n.Tag).Scan(
		&out.ID, &out.UserID, &out.Title, &out.Description, &out.Tag, &out.CreatedAt,
	)
	return out, err
}

func (r *PGNoteRepo) GetByID(ctx context.Context, id int64) (dom.Note, error) {
	query := `
		SELECT id, user_id, title, description, tag, created_at
		FROM notes WHERE id = $1`
	var n dom.Note
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag, &n.CreatedAt,
	)
	return n, err
}

func (r *PGNoteRepo) ListByOwner(ctx context.Context, userID int64) ([]dom.Note, error) {
	query := `
		SELECT id, user_id, title, description, tag, created_at
		FROM notes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Note
	for rows.Next() {
		var n dom.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNoteRepo) Update(ctx context.Context, id, userID int64, patch dom.Note) (dom.Note, error) {
	query := `
		UPDATE notes SET title = $3, description = $4, tag = $5
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, tag, created_at`
	var n dom.Note
	err := r.db.QueryRow(ctx, query, id, userID, patch.Title, patch.Description, patch.Tag).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag, &n.CreatedAt,
	)
	return n, err
}

func (r *PGNoteRepo) Delete(ctx context.Context, id, userID int64) (dom.Note, error) {
	query := `
		DELETE FROM notes
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, tag, created_at`
	var n dom.Note
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Description, &n.Tag, &n.CreatedAt,
	)
	return n, err
}
