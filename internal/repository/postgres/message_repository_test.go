package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/faithbliss/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCreate_ReturnsServerFields(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessageRepository(db)

	now := time.Now()
	msg := &domain.Message{
		ID:         "msg-1",
		MatchID:    "match-1",
		SenderID:   "user-a",
		ReceiverID: "user-b",
		Content:    "hello",
	}

	mock.ExpectQuery("INSERT INTO messages").
		WithArgs("msg-1", "match-1", "user-a", "user-b", "hello").
		WillReturnRows(sqlmock.NewRows([]string{"is_read", "created_at"}).AddRow(false, now))

	err := repo.Create(context.Background(), msg)
	require.NoError(t, err)
	assert.False(t, msg.IsRead)
	assert.Equal(t, now, msg.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageMarkRead_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec("UPDATE messages SET is_read = true").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageMarkRead_UpdatesRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec("UPDATE messages SET is_read = true").
		WithArgs("msg-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkRead(context.Background(), "msg-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageUnreadCount_CountsOnlyUnreadForReceiver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessageRepository(db)

	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = false`)
	mock.ExpectQuery(query).
		WithArgs("user-b").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.UnreadCount(context.Background(), "user-b")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageUnreadCountByMatch_ScopesToMatchAndReceiver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessageRepository(db)

	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM messages WHERE match_id = $1 AND receiver_id = $2 AND is_read = false`)
	mock.ExpectQuery(query).
		WithArgs("match-1", "user-b").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.UnreadCountByMatch(context.Background(), "match-1", "user-b")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageLastMessage_NoRowsMeansNoConversationYet(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM messages WHERE match_id").
		WithArgs("match-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_id", "sender_id", "receiver_id", "content", "is_read", "created_at"}))

	msg, err := repo.LastMessage(context.Background(), "match-1")
	require.NoError(t, err)
	assert.Nil(t, msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageMatchMessages_AscendingPage(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessageRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "match_id", "sender_id", "receiver_id", "content", "is_read", "created_at"}).
		AddRow("msg-1", "match-1", "user-a", "user-b", "hi", true, now.Add(-time.Minute)).
		AddRow("msg-2", "match-1", "user-b", "user-a", "hey", false, now)

	mock.ExpectQuery("SELECT (.+) FROM messages WHERE match_id (.+) ORDER BY created_at ASC, id ASC").
		WithArgs("match-1", 50, 0).
		WillReturnRows(rows)

	messages, err := repo.MatchMessages(context.Background(), "match-1", 50, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-1", messages[0].ID)
	assert.False(t, messages[1].IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}
