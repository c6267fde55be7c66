package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/faithbliss/backend/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeCreate_GeneratesID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	like := &domain.Like{LikerID: "user-a", LikedID: "user-b"}

	mock.ExpectQuery("INSERT INTO user_likes").
		WithArgs(sqlmock.AnyArg(), "user-a", "user-b").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	err := repo.Create(context.Background(), like)
	require.NoError(t, err)
	assert.NotEmpty(t, like.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeCreate_DuplicateReturnsAlreadyLiked(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	like := &domain.Like{ID: "like-1", LikerID: "user-a", LikedID: "user-b"}

	mock.ExpectQuery("INSERT INTO user_likes").
		WithArgs("like-1", "user-a", "user-b").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.Create(context.Background(), like)
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeGetByUsers_AbsentReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	query := regexp.QuoteMeta(`SELECT id, liker_id, liked_id, created_at FROM user_likes WHERE liker_id = $1 AND liked_id = $2`)
	mock.ExpectQuery(query).
		WithArgs("user-a", "user-b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "liker_id", "liked_id", "created_at"}))

	like, err := repo.GetByUsers(context.Background(), "user-a", "user-b")
	require.NoError(t, err)
	assert.Nil(t, like)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeLikedUserIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	rows := sqlmock.NewRows([]string{"liked_id"}).
		AddRow("user-b").
		AddRow("user-c")

	mock.ExpectQuery("SELECT liked_id FROM user_likes").
		WithArgs("user-a").
		WillReturnRows(rows)

	ids, err := repo.LikedUserIDs(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-b", "user-c"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
