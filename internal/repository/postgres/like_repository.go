package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	if like.ID == "" {
		like.ID = uuid.New().String()
	}
	query := `
		INSERT INTO user_likes (id, liker_id, liked_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, like.ID, like.LikerID, like.LikedID).
		Scan(&like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (r *likeRepository) GetByUsers(ctx context.Context, likerID, likedID string) (*domain.Like, error) {
	var like domain.Like
	query := `SELECT id, liker_id, liked_id, created_at FROM user_likes WHERE liker_id = $1 AND liked_id = $2`
	err := r.db.GetContext(ctx, &like, query, likerID, likedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) LikedUserIDs(ctx context.Context, likerID string) ([]string, error) {
	var ids []string
	query := `SELECT liked_id FROM user_likes WHERE liker_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, likerID)
	return ids, err
}

func (r *likeRepository) LikesReceived(ctx context.Context, likedID string, limit, offset int) ([]*domain.Like, error) {
	var likes []*domain.Like
	query := `
		SELECT id, liker_id, liked_id, created_at FROM user_likes
		WHERE liked_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &likes, query, likedID, limit, offset)
	return likes, err
}
