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

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	if match.Status == "" {
		match.Status = domain.MatchStatusMatched
	}
	user1ID, user2ID := domain.NormalizePair(match.User1ID, match.User2ID)

	query := `
		INSERT INTO matches (id, user1_id, user2_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, match.ID, user1ID, user2ID, match.Status).
		Scan(&match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// Two simultaneous mutual likes raced; the constraint on the
			// normalized pair makes the loser fail loudly.
			return domain.ErrMatchAlreadyExists
		}
		return err
	}

	match.User1ID = user1ID
	match.User2ID = user2ID
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT id, user1_id, user2_id, status, created_at, updated_at FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Match, error) {
	user1ID, user2ID = domain.NormalizePair(user1ID, user2ID)

	var match domain.Match
	query := `SELECT id, user1_id, user2_id, status, created_at, updated_at FROM matches WHERE user1_id = $1 AND user2_id = $2`
	err := r.db.GetContext(ctx, &match, query, user1ID, user2ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) UserMatches(ctx context.Context, userID string) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT id, user1_id, user2_id, status, created_at, updated_at FROM matches
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY updated_at DESC
	`
	err := r.db.SelectContext(ctx, &matches, query, userID)
	return matches, err
}

func (r *matchRepository) Touch(ctx context.Context, id string) error {
	query := `UPDATE matches SET updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
