package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"dreamjournal-be/internal/apperrors"
	"dreamjournal-be/internal/entities"
)

const dreamColumns = `id, user_id, title, content, date, mood, tags, is_lucid, is_favorite, created_at, updated_at`

// DreamRepository defines the interface for dream database operations.
// Every read and write that targets a single dream filters by both the dream
// id and the owning user id.
type DreamRepository interface {
	Create(dream *entities.Dream) (*entities.Dream, error)
	FindByUser(userID, search string) ([]*entities.Dream, error)
	FindByID(id, userID string) (*entities.Dream, error)
	Update(dream *entities.Dream) (*entities.Dream, error)
	Delete(id, userID string) error
}

type dreamRepository struct {
	db *sql.DB
}

// NewDreamRepository creates a new dream repository
func NewDreamRepository(db *sql.DB) DreamRepository {
	return &dreamRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDream(row rowScanner) (*entities.Dream, error) {
	var dream entities.Dream
	err := row.Scan(
		&dream.ID,
		&dream.UserID,
		&dream.Title,
		&dream.Content,
		&dream.Date,
		&dream.Mood,
		pq.Array(&dream.Tags),
		&dream.IsLucid,
		&dream.IsFavorite,
		&dream.CreatedAt,
		&dream.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dream.Tags == nil {
		dream.Tags = []string{}
	}
	return &dream, nil
}

// Create inserts a new dream for its owner
func (r *dreamRepository) Create(dream *entities.Dream) (*entities.Dream, error) {
	query := `
		INSERT INTO dreams (user_id, title, content, date, mood, tags, is_lucid, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + dreamColumns

	created, err := scanDream(r.db.QueryRow(
		query,
		dream.UserID,
		dream.Title,
		dream.Content,
		dream.Date.UTC(),
		dream.Mood,
		pq.Array(dream.Tags),
		dream.IsLucid,
		dream.IsFavorite,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create dream: %w", err)
	}

	return created, nil
}

// FindByUser retrieves all dreams for a user ordered by occurrence date,
// newest first. A non-empty search narrows the result with the text index;
// no ranking is applied.
func (r *dreamRepository) FindByUser(userID, search string) ([]*entities.Dream, error) {
	query := `
		SELECT ` + dreamColumns + `
		FROM dreams
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if search != "" {
		query += ` AND to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', $2)`
		args = append(args, search)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get dreams: %w", err)
	}
	defer rows.Close()

	dreams := []*entities.Dream{}
	for rows.Next() {
		dream, err := scanDream(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dream: %w", err)
		}
		dreams = append(dreams, dream)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dreams: %w", err)
	}

	return dreams, nil
}

// FindByID retrieves a single dream owned by the given user. An id that
// exists under another owner is indistinguishable from one that does not
// exist at all.
func (r *dreamRepository) FindByID(id, userID string) (*entities.Dream, error) {
	query := `
		SELECT ` + dreamColumns + `
		FROM dreams
		WHERE id = $1 AND user_id = $2
	`

	dream, err := scanDream(r.db.QueryRow(query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find dream: %w", err)
	}

	return dream, nil
}

// Update persists the allow-listed dream fields, scoped to the owner
func (r *dreamRepository) Update(dream *entities.Dream) (*entities.Dream, error) {
	query := `
		UPDATE dreams
		SET title = $1, content = $2, date = $3, mood = $4, tags = $5,
		    is_lucid = $6, is_favorite = $7, updated_at = (NOW() AT TIME ZONE 'UTC')
		WHERE id = $8 AND user_id = $9
		RETURNING ` + dreamColumns

	updated, err := scanDream(r.db.QueryRow(
		query,
		dream.Title,
		dream.Content,
		dream.Date.UTC(),
		dream.Mood,
		pq.Array(dream.Tags),
		dream.IsLucid,
		dream.IsFavorite,
		dream.ID,
		dream.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update dream: %w", err)
	}

	return updated, nil
}

// Delete permanently removes a dream owned by the given user
func (r *dreamRepository) Delete(id, userID string) error {
	query := `DELETE FROM dreams WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete dream: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
