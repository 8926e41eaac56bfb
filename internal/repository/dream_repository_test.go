package repository

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamjournal-be/internal/apperrors"
	"dreamjournal-be/internal/entities"
)

var dreamCols = []string{
	"id", "user_id", "title", "content", "date", "mood",
	"tags", "is_lucid", "is_favorite", "created_at", "updated_at",
}

func dreamRow(id, userID, title string, date time.Time) []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{
		id, userID, title, "content", date, "neutral",
		[]byte("{}"), false, false, now, now,
	}
}

func TestFindByUser_NewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDreamRepository(db)

	rows := sqlmock.NewRows(dreamCols).
		AddRow(dreamRow("d3", "u1", "march", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))...).
		AddRow(dreamRow("d2", "u1", "february", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))...).
		AddRow(dreamRow("d1", "u1", "january", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))...)

	mock.ExpectQuery(`SELECT (.+) FROM dreams\s+WHERE user_id = \$1\s+ORDER BY date DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	dreams, err := repo.FindByUser("u1", "")
	require.NoError(t, err)
	require.Len(t, dreams, 3)
	assert.Equal(t, "march", dreams[0].Title)
	assert.Equal(t, "january", dreams[2].Title)
	assert.NotNil(t, dreams[0].Tags)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUser_SearchFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDreamRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM dreams\s+WHERE user_id = \$1\s+AND to_tsvector(.+)plainto_tsquery(.+)ORDER BY date DESC`).
		WithArgs("u1", "falling").
		WillReturnRows(sqlmock.NewRows(dreamCols))

	dreams, err := repo.FindByUser("u1", "falling")
	require.NoError(t, err)
	assert.Empty(t, dreams)
	assert.NotNil(t, dreams)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_FiltersByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDreamRepository(db)

	// Another user's id produces no rows, which must read as NotFound
	mock.ExpectQuery(`SELECT (.+) FROM dreams\s+WHERE id = \$1 AND user_id = \$2`).
		WithArgs("d1", "intruder").
		WillReturnRows(sqlmock.NewRows(dreamCols))

	_, err = repo.FindByID("d1", "intruder")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFoundWhenUnowned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDreamRepository(db)

	mock.ExpectQuery(`UPDATE dreams\s+SET (.+)WHERE id = \$8 AND user_id = \$9`).
		WillReturnRows(sqlmock.NewRows(dreamCols))

	dream := &entities.Dream{
		ID: "d1", UserID: "intruder",
		Title: "t", Content: "c",
		Date: time.Now().UTC(), Mood: entities.MoodNeutral, Tags: []string{},
	}
	_, err = repo.Update(dream)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDreamRepository(db)

	mock.ExpectExec(`DELETE FROM dreams WHERE id = \$1 AND user_id = \$2`).
		WithArgs("d1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete("d1", "u1"))

	mock.ExpectExec(`DELETE FROM dreams WHERE id = \$1 AND user_id = \$2`).
		WithArgs("d1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete("d1", "u2"), apperrors.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
