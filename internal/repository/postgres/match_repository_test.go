package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/faithbliss/backend/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "postgres"), mock
}

func TestMatchCreate_NormalizesPair(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMatchRepository(db)

	now := time.Now()
	// IDs are given in reverse order; the row must store the smaller first.
	match := &domain.Match{
		ID:      "match-1",
		User1ID: "user-b",
		User2ID: "user-a",
	}

	mock.ExpectQuery("INSERT INTO matches").
		WithArgs("match-1", "user-a", "user-b", string(domain.MatchStatusMatched)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := repo.Create(context.Background(), match)
	require.NoError(t, err)

	assert.Equal(t, "user-a", match.User1ID)
	assert.Equal(t, "user-b", match.User2ID)
	assert.Equal(t, now, match.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchCreate_DuplicatePairReturnsAlreadyExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMatchRepository(db)

	match := &domain.Match{ID: "match-1", User1ID: "user-a", User2ID: "user-b"}

	mock.ExpectQuery("INSERT INTO matches").
		WithArgs("match-1", "user-a", "user-b", string(domain.MatchStatusMatched)).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.Create(context.Background(), match)
	assert.ErrorIs(t, err, domain.ErrMatchAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchGetByUsers_NormalizesLookup(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMatchRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user1_id", "user2_id", "status", "created_at", "updated_at"}).
		AddRow("match-1", "user-a", "user-b", string(domain.MatchStatusMatched), now, now)

	query := regexp.QuoteMeta(`SELECT id, user1_id, user2_id, status, created_at, updated_at FROM matches WHERE user1_id = $1 AND user2_id = $2`)
	mock.ExpectQuery(query).
		WithArgs("user-a", "user-b").
		WillReturnRows(rows)

	// Looked up in reverse order; the query still uses the normalized pair.
	match, err := repo.GetByUsers(context.Background(), "user-b", "user-a")
	require.NoError(t, err)
	assert.Equal(t, "match-1", match.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchGetByUsers_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMatchRepository(db)

	query := regexp.QuoteMeta(`SELECT id, user1_id, user2_id, status, created_at, updated_at FROM matches WHERE user1_id = $1 AND user2_id = $2`)
	mock.ExpectQuery(query).
		WithArgs("user-a", "user-b").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsers(context.Background(), "user-a", "user-b")
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchTouch_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMatchRepository(db)

	mock.ExpectExec("UPDATE matches SET updated_at").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Touch(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchUserMatches_ReturnsBothSides(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMatchRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user1_id", "user2_id", "status", "created_at", "updated_at"}).
		AddRow("match-1", "user-a", "user-b", string(domain.MatchStatusMatched), now, now).
		AddRow("match-2", "user-a", "user-c", string(domain.MatchStatusMatched), now, now)

	mock.ExpectQuery("SELECT (.+) FROM matches").
		WithArgs("user-a").
		WillReturnRows(rows)

	matches, err := repo.UserMatches(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "match-2", matches[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
