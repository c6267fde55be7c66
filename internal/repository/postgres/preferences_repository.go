package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type preferencesRepository struct {
	db *sqlx.DB
}

func NewPreferencesRepository(db *sqlx.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (r *preferencesRepository) Create(ctx context.Context, prefs *domain.Preferences) error {
	query := `
		INSERT INTO user_preferences (
			user_id, preferred_gender, preferred_denomination, min_age, max_age,
			max_distance, preferred_faith_journey, preferred_church_attendance,
			preferred_relationship_goals
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		prefs.UserID, nullableEnum(prefs.PreferredGender),
		pq.Array(enumsToStrings(prefs.PreferredDenomination)),
		prefs.MinAge, prefs.MaxAge, prefs.MaxDistance,
		pq.Array(enumsToStrings(prefs.PreferredFaithJourney)),
		pq.Array(enumsToStrings(prefs.PreferredChurchAttendance)),
		pq.Array(enumsToStrings(prefs.PreferredRelationshipGoal)),
	).Scan(&prefs.CreatedAt, &prefs.UpdatedAt)
}

func (r *preferencesRepository) GetByUserID(ctx context.Context, userID string) (*domain.Preferences, error) {
	query := `
		SELECT user_id, preferred_gender, preferred_denomination, min_age, max_age,
		       max_distance, preferred_faith_journey, preferred_church_attendance,
		       preferred_relationship_goals, created_at, updated_at
		FROM user_preferences WHERE user_id = $1
	`
	var (
		prefs            domain.Preferences
		preferredGender  sql.NullString
		denominations    pq.StringArray
		faithJourneys    pq.StringArray
		churchAttendance pq.StringArray
		goals            pq.StringArray
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.UserID, &preferredGender, &denominations,
		&prefs.MinAge, &prefs.MaxAge, &prefs.MaxDistance,
		&faithJourneys, &churchAttendance, &goals,
		&prefs.CreatedAt, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, err
	}

	if preferredGender.Valid {
		g := domain.Gender(preferredGender.String)
		prefs.PreferredGender = &g
	}
	prefs.PreferredDenomination = stringsToEnums[domain.Denomination](denominations)
	prefs.PreferredFaithJourney = stringsToEnums[domain.FaithJourney](faithJourneys)
	prefs.PreferredChurchAttendance = stringsToEnums[domain.ChurchAttendance](churchAttendance)
	prefs.PreferredRelationshipGoal = stringsToEnums[domain.RelationshipGoal](goals)
	return &prefs, nil
}

func (r *preferencesRepository) Update(ctx context.Context, prefs *domain.Preferences) error {
	query := `
		UPDATE user_preferences
		SET preferred_gender = $1, preferred_denomination = $2, min_age = $3,
		    max_age = $4, max_distance = $5, preferred_faith_journey = $6,
		    preferred_church_attendance = $7, preferred_relationship_goals = $8,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $9
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		nullableEnum(prefs.PreferredGender),
		pq.Array(enumsToStrings(prefs.PreferredDenomination)),
		prefs.MinAge, prefs.MaxAge, prefs.MaxDistance,
		pq.Array(enumsToStrings(prefs.PreferredFaithJourney)),
		pq.Array(enumsToStrings(prefs.PreferredChurchAttendance)),
		pq.Array(enumsToStrings(prefs.PreferredRelationshipGoal)),
		prefs.UserID,
	).Scan(&prefs.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrPreferencesNotFound
	}
	return err
}
